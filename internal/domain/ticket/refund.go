package ticket

import (
	"fmt"
	"time"
)

type RefundStatus string

const (
	RefundInitiated RefundStatus = "INITIATED"
	RefundCompleted RefundStatus = "COMPLETED"
)

func (s RefundStatus) String() string {
	return string(s)
}

func (s RefundStatus) IsValid() bool {
	return s == RefundInitiated || s == RefundCompleted
}

// Refund tracks the processing of a cancelled ticket's payout. processedAt
// is set exactly once, on the INITIATED -> COMPLETED transition.
type Refund struct {
	id          uint
	ticketID    uint
	status      RefundStatus
	amount      float64
	processedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRefund(ticketID uint, amount float64) (*Refund, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("refund amount cannot be negative")
	}

	now := time.Now()
	return &Refund{
		ticketID:  ticketID,
		status:    RefundInitiated,
		amount:    amount,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRefund(
	id uint,
	ticketID uint,
	status RefundStatus,
	amount float64,
	processedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Refund, error) {
	if id == 0 {
		return nil, fmt.Errorf("refund ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid refund status: %s", status)
	}

	return &Refund{
		id:          id,
		ticketID:    ticketID,
		status:      status,
		amount:      amount,
		processedAt: processedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Refund) ID() uint {
	return r.id
}

func (r *Refund) TicketID() uint {
	return r.ticketID
}

func (r *Refund) Status() RefundStatus {
	return r.status
}

func (r *Refund) Amount() float64 {
	return r.amount
}

func (r *Refund) ProcessedAt() *time.Time {
	return r.processedAt
}

func (r *Refund) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Refund) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Refund) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("refund ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("refund ID cannot be zero")
	}
	r.id = id
	return nil
}

// Complete marks the refund processed at the given time.
func (r *Refund) Complete(processedAt time.Time) error {
	if r.status == RefundCompleted {
		return fmt.Errorf("refund is already completed")
	}
	if processedAt.Before(r.createdAt) {
		return fmt.Errorf("processed time cannot precede refund creation")
	}

	r.status = RefundCompleted
	r.processedAt = &processedAt
	r.updatedAt = time.Now()
	return nil
}

// ProcessingHours returns how long the refund has been (or was) in flight:
// processedAt minus createdAt for completed refunds, now minus createdAt
// otherwise.
func (r *Refund) ProcessingHours(now time.Time) float64 {
	end := now
	if r.processedAt != nil {
		end = *r.processedAt
	}
	return end.Sub(r.createdAt).Hours()
}
