package ticket

import (
	"fmt"
	"time"
)

type TicketStatus string

const (
	StatusBooked    TicketStatus = "BOOKED"
	StatusCancelled TicketStatus = "CANCELLED"
)

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return s == StatusBooked || s == StatusCancelled
}

// Ticket is a booking sourced from a partner platform. The PNR and the
// cancellation policy are fixed at creation; cancellation is the only state
// transition.
type Ticket struct {
	id             uint
	pnr            string
	operatorID     uint
	userID         *uint
	status         TicketStatus
	amount         float64
	refundAmount   *float64
	refundDeadline *time.Time
	policyRaw      []byte
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(pnr string, operatorID uint, userID *uint, amount float64, policyRaw []byte) (*Ticket, error) {
	if pnr == "" {
		return nil, fmt.Errorf("pnr is required")
	}
	if len(pnr) > 20 {
		return nil, fmt.Errorf("pnr exceeds maximum length of 20 characters")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("ticket amount cannot be negative")
	}
	// Reject malformed policies at booking time so the document is always
	// resolvable once locked.
	if _, err := ParseCancellationPolicy(policyRaw); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Ticket{
		pnr:        pnr,
		operatorID: operatorID,
		userID:     userID,
		status:     StatusBooked,
		amount:     amount,
		policyRaw:  policyRaw,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	id uint,
	pnr string,
	operatorID uint,
	userID *uint,
	status TicketStatus,
	amount float64,
	refundAmount *float64,
	refundDeadline *time.Time,
	policyRaw []byte,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if pnr == "" {
		return nil, fmt.Errorf("pnr is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}

	return &Ticket{
		id:             id,
		pnr:            pnr,
		operatorID:     operatorID,
		userID:         userID,
		status:         status,
		amount:         amount,
		refundAmount:   refundAmount,
		refundDeadline: refundDeadline,
		policyRaw:      policyRaw,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) PNR() string {
	return t.pnr
}

func (t *Ticket) OperatorID() uint {
	return t.operatorID
}

func (t *Ticket) UserID() *uint {
	return t.userID
}

func (t *Ticket) Status() TicketStatus {
	return t.status
}

func (t *Ticket) Amount() float64 {
	return t.amount
}

func (t *Ticket) RefundAmount() *float64 {
	return t.refundAmount
}

func (t *Ticket) RefundDeadline() *time.Time {
	return t.refundDeadline
}

// PolicyRaw returns the locked policy document exactly as stored.
func (t *Ticket) PolicyRaw() []byte {
	raw := make([]byte, len(t.policyRaw))
	copy(raw, t.policyRaw)
	return raw
}

// Policy parses the locked policy document.
func (t *Ticket) Policy() (*CancellationPolicy, error) {
	return ParseCancellationPolicy(t.policyRaw)
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Cancel transitions the ticket to CANCELLED, recording the refund amount
// owed per the locked policy and the deadline by which the operator must
// process the refund. The amount, deadline and policy are immutable after
// this call.
func (t *Ticket) Cancel(refundAmount float64, refundDeadline time.Time) error {
	if t.status == StatusCancelled {
		return fmt.Errorf("ticket %s is already cancelled", t.pnr)
	}
	if refundAmount < 0 {
		return fmt.Errorf("refund amount cannot be negative")
	}

	t.status = StatusCancelled
	t.refundAmount = &refundAmount
	t.refundDeadline = &refundDeadline
	t.updatedAt = time.Now()
	return nil
}
