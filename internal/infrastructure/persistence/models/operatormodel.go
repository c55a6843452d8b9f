package models

import (
	"time"
)

// OperatorModel represents the database persistence model for bus operators.
type OperatorModel struct {
	ID                 uint    `gorm:"primarykey"`
	Name               string  `gorm:"uniqueIndex;not null;size:100"`
	TrustScore         float64 `gorm:"not null;default:100"`
	ComplaintCount     int     `gorm:"not null;default:0"`
	AvgRefundTimeHours int     `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (OperatorModel) TableName() string {
	return "operators"
}
