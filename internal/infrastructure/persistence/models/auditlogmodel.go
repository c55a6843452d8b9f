package models

import (
	"time"
)

// AuditLogModel represents the database persistence model for the
// append-only admin action trail.
type AuditLogModel struct {
	ID            uint    `gorm:"primarykey"`
	Action        string  `gorm:"not null;size:40;index"`
	TargetID      string  `gorm:"not null;size:60;index"`
	Details       string  `gorm:"not null;size:500"`
	Justification *string `gorm:"size:500"`
	PerformedBy   uint    `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
