package domain

import "time"

// PhoneHistory is one interval of a client's phone record.
type PhoneHistory struct {
	ClientID string     `gorm:"size:40;primaryKey"`
	FromDate time.Time  `gorm:"primaryKey"`
	Phone    string     `gorm:"size:40;not null"`
	ToDate   *time.Time `gorm:""`
}

func (PhoneHistory) TableName() string { return "client_phone_history" }
