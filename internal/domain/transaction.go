package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction is one migrated transaction row.
type Transaction struct {
	TxID           string            `gorm:"size:32;primaryKey"`
	ClientID       string            `gorm:"size:40;not null;index"`
	CounterpartyID string            `gorm:"size:24;not null"`
	TxType         string            `gorm:"size:16;not null"`
	Direction      string            `gorm:"size:16;not null"`
	Amount         float64           `gorm:"not null"`
	Currency       string            `gorm:"size:8;not null"`
	Channel        string            `gorm:"size:24;not null"`
	Country        string            `gorm:"size:64;not null"`
	Timestamp      time.Time         `gorm:"not null"`
	TypologyTags   datatypes.JSONMap `gorm:"not null"`
}

func (Transaction) TableName() string { return "transaction" }
