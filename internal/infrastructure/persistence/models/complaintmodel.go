package models

import (
	"time"
)

// ComplaintModel represents the database persistence model for complaints.
type ComplaintModel struct {
	ID         uint   `gorm:"primarykey"`
	PNR        string `gorm:"not null;size:20;index"`
	OperatorID uint   `gorm:"not null;index"`
	UserID     *uint  `gorm:"index"`
	Reason     string `gorm:"not null;size:200"`
	Status     string `gorm:"not null;default:PENDING;size:20;index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

// MessageModel represents the database persistence model for complaint
// thread messages. Rows are append-only; only the read flag changes.
type MessageModel struct {
	ID          uint   `gorm:"primarykey"`
	ComplaintID uint   `gorm:"not null;index"`
	SenderID    uint   `gorm:"not null;index"`
	Content     string `gorm:"not null;type:text"`
	Read        bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (MessageModel) TableName() string {
	return "messages"
}
