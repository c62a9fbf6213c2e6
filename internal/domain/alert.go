package domain

import "time"

// Alert is one migrated alert, optionally linked to a Case.
type Alert struct {
	AlertID     string    `gorm:"size:40;primaryKey"`
	ClientID    string    `gorm:"size:40;not null;index"`
	CaseID      *string   `gorm:"size:40"`
	Severity    string    `gorm:"size:16;not null"`
	Status      string    `gorm:"size:16;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	Description string    `gorm:"type:text;not null"`
}

func (Alert) TableName() string { return "alert" }
