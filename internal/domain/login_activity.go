package domain

import "time"

// LoginActivity is one migrated login event from the source ip_log.
type LoginActivity struct {
	LoginID    string    `gorm:"size:40;primaryKey"`
	ClientID   string    `gorm:"size:40;not null;index"`
	IPAddress  string    `gorm:"size:64;not null"`
	IPCountry  string    `gorm:"size:8;not null"`
	Status     string    `gorm:"size:16;not null"`
	Channel    string    `gorm:"size:24;not null"`
	LoggedInAt time.Time `gorm:"not null"`
}

func (LoginActivity) TableName() string { return "login_activity" }
