package complaint

import (
	"fmt"
	"time"
)

type ComplaintStatus string

const (
	StatusPending   ComplaintStatus = "PENDING"
	StatusOpen      ComplaintStatus = "OPEN"
	StatusResolved  ComplaintStatus = "RESOLVED"
	StatusEscalated ComplaintStatus = "ESCALATED"
)

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusOpen, StatusResolved, StatusEscalated:
		return true
	}
	return false
}

func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved
}

// CanTransitionTo reports whether a status change is allowed. Resolution is
// terminal; everything else can move forward or be resolved.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	if !next.IsValid() || s == next {
		return false
	}
	switch s {
	case StatusPending:
		return next == StatusOpen || next == StatusResolved || next == StatusEscalated
	case StatusOpen:
		return next == StatusResolved || next == StatusEscalated
	case StatusEscalated:
		return next == StatusResolved
	case StatusResolved:
		return false
	}
	return false
}

// Complaint is a passenger grievance against an operator, referenced by the
// booking PNR.
type Complaint struct {
	id         uint
	pnr        string
	operatorID uint
	userID     *uint
	reason     string
	status     ComplaintStatus
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComplaint(pnr string, operatorID uint, userID *uint, reason string) (*Complaint, error) {
	if pnr == "" {
		return nil, fmt.Errorf("pnr is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if reason == "" {
		return nil, fmt.Errorf("reason is required")
	}
	if len(reason) > 200 {
		return nil, fmt.Errorf("reason exceeds maximum length of 200 characters")
	}

	now := time.Now()
	return &Complaint{
		pnr:        pnr,
		operatorID: operatorID,
		userID:     userID,
		reason:     reason,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	pnr string,
	operatorID uint,
	userID *uint,
	reason string,
	status ComplaintStatus,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid complaint status: %s", status)
	}

	return &Complaint{
		id:         id,
		pnr:        pnr,
		operatorID: operatorID,
		userID:     userID,
		reason:     reason,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) PNR() string {
	return c.pnr
}

func (c *Complaint) OperatorID() uint {
	return c.operatorID
}

func (c *Complaint) UserID() *uint {
	return c.userID
}

func (c *Complaint) Reason() string {
	return c.reason
}

func (c *Complaint) Status() ComplaintStatus {
	return c.status
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// ChangeStatus applies a status transition.
func (c *Complaint) ChangeStatus(next ComplaintStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid complaint status: %s", next)
	}
	if c.status == next {
		return nil
	}
	if !c.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition complaint from %s to %s", c.status, next)
	}

	c.status = next
	c.updatedAt = time.Now()
	return nil
}
