package domain

import "time"

// Client is one migrated client profile in the portal store. Field
// lengths mirror the portal schema contract; the transformers truncate
// to them before a row ever reaches the store.
type Client struct {
	ClientID        string    `gorm:"size:40;primaryKey"`
	FullName        string    `gorm:"size:120;not null"`
	DOB             time.Time `gorm:"not null"`
	Gender          string    `gorm:"size:16;not null"`
	Country         string    `gorm:"size:64;not null"`
	City            string    `gorm:"size:64;not null"`
	Segment         string    `gorm:"size:40;not null"`
	Occupation      string    `gorm:"size:80;not null"`
	AnnualIncome    float64   `gorm:"not null"`
	AccountOpenDate time.Time `gorm:"not null"`
	PEPFlag         int       `gorm:"not null"`
	SanctionsFlag   int       `gorm:"not null"`
	ProfileText     string    `gorm:"type:text;not null"`
	RiskRating      string    `gorm:"size:16;not null"`
}

func (Client) TableName() string { return "client" }
