package domain

import "time"

// AddressHistory is one interval of a client's address record.
type AddressHistory struct {
	ClientID    string     `gorm:"size:40;primaryKey"`
	FromDate    time.Time  `gorm:"primaryKey"`
	AddressLine string     `gorm:"size:160;not null"`
	City        string     `gorm:"size:64;not null"`
	Country     string     `gorm:"size:64;not null"`
	ToDate      *time.Time `gorm:""`
}

func (AddressHistory) TableName() string { return "client_address_history" }
