package domain

import "time"

// Case is one migrated investigation case.
type Case struct {
	CaseID   string     `gorm:"size:40;primaryKey"`
	ClientID string     `gorm:"size:40;not null;index"`
	Status   string     `gorm:"size:20;not null"`
	OpenedAt time.Time  `gorm:"not null"`
	ClosedAt *time.Time `gorm:""`
	Title    string     `gorm:"size:180;not null"`
}

func (Case) TableName() string { return "case" }
