package models

import (
	"time"

	"gorm.io/datatypes"
)

// TicketModel represents the database persistence model for partner bookings.
// CancellationPolicy stores the partner's policy document verbatim; it is
// locked at booking time and round-tripped byte for byte.
type TicketModel struct {
	ID                 uint   `gorm:"primarykey"`
	PNR                string `gorm:"uniqueIndex;not null;size:20"`
	OperatorID         uint   `gorm:"not null;index"`
	UserID             *uint  `gorm:"index"`
	Status             string `gorm:"not null;default:BOOKED;size:20"`
	Amount             float64
	RefundAmount       *float64
	RefundDeadline     *time.Time
	CancellationPolicy datatypes.JSON `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

// RefundModel represents the database persistence model for refunds.
type RefundModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    uint   `gorm:"not null;index"`
	Status      string `gorm:"not null;default:INITIATED;size:20;index"`
	Amount      float64
	ProcessedAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (RefundModel) TableName() string {
	return "refunds"
}
