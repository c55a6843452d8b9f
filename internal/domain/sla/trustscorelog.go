package sla

import (
	"fmt"
	"time"

	"openfare/internal/shared/errors"
)

// TrustScoreLog records a single trust score change applied to an
// operator. SourceID ties the entry to the violating entity so the
// same violation is never penalized twice.
type TrustScoreLog struct {
	id         uint
	operatorID uint
	oldScore   float64
	newScore   float64
	reason     string
	sourceID   string
	createdAt  time.Time
}

// RefundSourceID builds the idempotency key for a refund timeout violation.
func RefundSourceID(refundID uint) string {
	return fmt.Sprintf("refund:%d", refundID)
}

// ComplaintSourceID builds the idempotency key for a complaint response violation.
func ComplaintSourceID(complaintID uint) string {
	return fmt.Sprintf("complaint:%d", complaintID)
}

func NewViolationLog(operatorID uint, oldScore, newScore float64, reason, sourceID string) (*TrustScoreLog, error) {
	if operatorID == 0 {
		return nil, errors.NewValidationError("operator ID is required")
	}
	if reason == "" {
		return nil, errors.NewValidationError("reason is required")
	}
	if sourceID == "" {
		return nil, errors.NewValidationError("source ID is required")
	}
	return &TrustScoreLog{
		operatorID: operatorID,
		oldScore:   oldScore,
		newScore:   newScore,
		reason:     reason,
		sourceID:   sourceID,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructTrustScoreLog(
	id uint,
	operatorID uint,
	oldScore float64,
	newScore float64,
	reason string,
	sourceID string,
	createdAt time.Time,
) *TrustScoreLog {
	return &TrustScoreLog{
		id:         id,
		operatorID: operatorID,
		oldScore:   oldScore,
		newScore:   newScore,
		reason:     reason,
		sourceID:   sourceID,
		createdAt:  createdAt,
	}
}

func (l *TrustScoreLog) ID() uint             { return l.id }
func (l *TrustScoreLog) OperatorID() uint     { return l.operatorID }
func (l *TrustScoreLog) OldScore() float64    { return l.oldScore }
func (l *TrustScoreLog) NewScore() float64    { return l.newScore }
func (l *TrustScoreLog) Reason() string       { return l.reason }
func (l *TrustScoreLog) SourceID() string     { return l.sourceID }
func (l *TrustScoreLog) CreatedAt() time.Time { return l.createdAt }

func (l *TrustScoreLog) SetID(id uint) {
	if l.id == 0 {
		l.id = id
	}
}
