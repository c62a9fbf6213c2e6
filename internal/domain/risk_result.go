package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RiskResult is the derived risk row synthesized for every client so
// the portal's "every client has a risk result" invariant holds. It is
// created alongside its Client and never independently.
type RiskResult struct {
	ClientID    string            `gorm:"size:40;primaryKey"`
	RiskScore   float64           `gorm:"not null"`
	RuleHits    datatypes.JSONMap `gorm:"not null"`
	ModelReason string            `gorm:"type:text;not null"`
	LastUpdated time.Time         `gorm:"not null"`
}

func (RiskResult) TableName() string { return "risk_result" }
