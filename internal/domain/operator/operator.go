package operator

import (
	"fmt"
	"time"
)

// InitialTrustScore is the score every operator starts from. The score only
// moves through logged adjustments and is bounded to [0, 100].
const InitialTrustScore = 100.0

// Operator represents a transport provider tracked by the platform.
type Operator struct {
	id                  uint
	name                string
	trustScore          float64
	complaintCount      int
	avgRefundTimeHours  int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewOperator(name string) (*Operator, error) {
	if name == "" {
		return nil, fmt.Errorf("operator name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("operator name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Operator{
		name:       name,
		trustScore: InitialTrustScore,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructOperator(
	id uint,
	name string,
	trustScore float64,
	complaintCount int,
	avgRefundTimeHours int,
	createdAt, updatedAt time.Time,
) (*Operator, error) {
	if id == 0 {
		return nil, fmt.Errorf("operator ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("operator name is required")
	}

	return &Operator{
		id:                 id,
		name:               name,
		trustScore:         trustScore,
		complaintCount:     complaintCount,
		avgRefundTimeHours: avgRefundTimeHours,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (o *Operator) ID() uint {
	return o.id
}

func (o *Operator) Name() string {
	return o.name
}

func (o *Operator) TrustScore() float64 {
	return o.trustScore
}

func (o *Operator) ComplaintCount() int {
	return o.complaintCount
}

func (o *Operator) AvgRefundTimeHours() int {
	return o.avgRefundTimeHours
}

func (o *Operator) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Operator) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Operator) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("operator ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("operator ID cannot be zero")
	}
	o.id = id
	return nil
}

// ApplyPenalty lowers the trust score by penalty, flooring at zero.
// Returns the score before and after the adjustment; persisting the paired
// trust score log entry is the caller's responsibility.
func (o *Operator) ApplyPenalty(penalty float64) (oldScore, newScore float64, err error) {
	if penalty < 0 {
		return 0, 0, fmt.Errorf("penalty cannot be negative")
	}

	oldScore = o.trustScore
	newScore = oldScore - penalty
	if newScore < 0 {
		newScore = 0
	}

	o.trustScore = newScore
	o.updatedAt = time.Now()
	return oldScore, newScore, nil
}

// RecordComplaint increments the complaint counter. Complaints and trust
// score penalties are independent signals; this is never called implicitly
// by ApplyPenalty.
func (o *Operator) RecordComplaint() {
	o.complaintCount++
	o.updatedAt = time.Now()
}
