package audit

import (
	"fmt"
	"time"
)

// Administrative actions recorded in the audit trail.
const (
	ActionUpdateComplaintStatus = "UPDATE_COMPLAINT_STATUS"
	ActionResolveComplaint      = "RESOLVE_COMPLAINT"
	ActionEscalateComplaint     = "ESCALATE_COMPLAINT"
	ActionCompleteRefund        = "COMPLETE_REFUND"
	ActionRunSLASweep           = "RUN_SLA_SWEEP"
)

// AuditLog is an immutable record of an administrative action. Entries are
// only ever inserted, never updated or deleted.
type AuditLog struct {
	id            uint
	action        string
	targetID      string
	details       string
	justification *string
	performedBy   uint
	createdAt     time.Time
}

func NewAuditLog(action, targetID, details string, justification *string, performedBy uint) (*AuditLog, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if targetID == "" {
		return nil, fmt.Errorf("target ID is required")
	}
	if performedBy == 0 {
		return nil, fmt.Errorf("performer ID is required")
	}

	return &AuditLog{
		action:        action,
		targetID:      targetID,
		details:       details,
		justification: justification,
		performedBy:   performedBy,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructAuditLog(id uint, action, targetID, details string, justification *string, performedBy uint, createdAt time.Time) (*AuditLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit log ID cannot be zero")
	}

	return &AuditLog{
		id:            id,
		action:        action,
		targetID:      targetID,
		details:       details,
		justification: justification,
		performedBy:   performedBy,
		createdAt:     createdAt,
	}, nil
}

func (a *AuditLog) ID() uint {
	return a.id
}

func (a *AuditLog) Action() string {
	return a.action
}

func (a *AuditLog) TargetID() string {
	return a.targetID
}

func (a *AuditLog) Details() string {
	return a.details
}

func (a *AuditLog) Justification() *string {
	return a.justification
}

func (a *AuditLog) PerformedBy() uint {
	return a.performedBy
}

func (a *AuditLog) CreatedAt() time.Time {
	return a.createdAt
}

func (a *AuditLog) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("audit log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit log ID cannot be zero")
	}
	a.id = id
	return nil
}
