package models

import (
	"time"
)

// SLAConfigModel represents the database persistence model for per-type SLA
// thresholds and penalties.
type SLAConfigModel struct {
	ID             uint    `gorm:"primarykey"`
	Type           string  `gorm:"uniqueIndex;not null;size:40"`
	ThresholdHours float64 `gorm:"not null"`
	Penalty        float64 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SLAConfigModel) TableName() string {
	return "sla_configs"
}

// TrustScoreLogModel represents the database persistence model for trust
// score adjustments. The unique SourceID index is what makes SLA penalties
// at-most-once: a second insert for the same refund or complaint collides
// and is discarded.
type TrustScoreLogModel struct {
	ID         uint    `gorm:"primarykey"`
	OperatorID uint    `gorm:"not null;index"`
	OldScore   float64 `gorm:"not null"`
	NewScore   float64 `gorm:"not null"`
	Reason     string  `gorm:"not null;size:255"`
	SourceID   string  `gorm:"uniqueIndex;not null;size:60"`
	CreatedAt  time.Time `gorm:"index"`
}

func (TrustScoreLogModel) TableName() string {
	return "trust_score_logs"
}
