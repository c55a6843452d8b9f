package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
)

const standardPolicy = `{"0-12h": "100% Refund", "12-24h": "50% Refund", ">24h": "No Refund"}`

type sweepFixture struct {
	slaConfigs *memSLAConfigRepo
	trustLogs  *memTrustLogRepo
	refunds    *memRefundRepo
	tickets    *memTicketRepo
	complaints *memComplaintRepo
	messages   *memMessageRepo
	operators  *memOperatorRepo
	uc         *RunSweepUseCase
}

func newSweepFixture(t *testing.T) *sweepFixture {
	t.Helper()
	refundCfg, err := sla.NewConfig(sla.SLATypeRefundTimeout, 48, 0.5)
	require.NoError(t, err)
	complaintCfg, err := sla.NewConfig(sla.SLATypeComplaintResponse, 24, 0.2)
	require.NoError(t, err)

	f := &sweepFixture{
		slaConfigs: &memSLAConfigRepo{configs: map[sla.SLAType]*sla.Config{
			sla.SLATypeRefundTimeout:     refundCfg,
			sla.SLATypeComplaintResponse: complaintCfg,
		}},
		trustLogs:  &memTrustLogRepo{},
		refunds:    &memRefundRepo{refunds: map[uint]*ticket.Refund{}},
		tickets:    &memTicketRepo{tickets: map[uint]*ticket.Ticket{}},
		complaints: &memComplaintRepo{complaints: map[uint]*complaint.Complaint{}},
		messages:   &memMessageRepo{firstAdminReply: map[uint]*time.Time{}},
		operators:  &memOperatorRepo{operators: map[uint]*operator.Operator{}},
	}
	f.uc = NewRunSweepUseCase(
		f.slaConfigs, f.trustLogs, f.refunds, f.tickets,
		f.complaints, f.messages, f.operators,
		passthroughTxManager{}, testLogger(),
	)
	return f
}

func (f *sweepFixture) addOperator(t *testing.T, id uint, score float64) *operator.Operator {
	t.Helper()
	op, err := operator.ReconstructOperator(id, "SwiftBus Travels", score, 0, 24, time.Now(), time.Now())
	require.NoError(t, err)
	f.operators.operators[id] = op
	return op
}

func (f *sweepFixture) addCancelledTicket(t *testing.T, id uint, pnr string, operatorID uint) *ticket.Ticket {
	t.Helper()
	amount := 425.0
	created := time.Now().Add(-100 * time.Hour)
	deadline := created.Add(48 * time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, pnr, operatorID, nil, ticket.StatusCancelled, 850,
		&amount, &deadline, []byte(standardPolicy), created, created,
	)
	require.NoError(t, err)
	f.tickets.tickets[id] = tk
	return tk
}

func (f *sweepFixture) addRefund(t *testing.T, id, ticketID uint, age time.Duration, processedAfter *time.Duration) *ticket.Refund {
	t.Helper()
	created := time.Now().Add(-age)
	status := ticket.RefundInitiated
	var processedAt *time.Time
	if processedAfter != nil {
		p := created.Add(*processedAfter)
		processedAt = &p
		status = ticket.RefundCompleted
	}
	r, err := ticket.ReconstructRefund(id, ticketID, status, 425, processedAt, created, created)
	require.NoError(t, err)
	f.refunds.refunds[id] = r
	return r
}

func (f *sweepFixture) addComplaint(t *testing.T, id uint, pnr string, operatorID uint, age time.Duration) *complaint.Complaint {
	t.Helper()
	created := time.Now().Add(-age)
	c, err := complaint.ReconstructComplaint(id, pnr, operatorID, nil, "Refund not received", complaint.StatusPending, created, created)
	require.NoError(t, err)
	f.complaints.complaints[id] = c
	return c
}

// TestRunSweep_RefundTimeoutPenalty verifies an overdue INITIATED refund is
// penalized once with the configured penalty.
func TestRunSweep_RefundTimeoutPenalty(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB110", 1)
	f.addRefund(t, 1, 1, 60*time.Hour, nil)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, sla.SLATypeRefundTimeout, v.Type)
	assert.Equal(t, "refund:1", v.SourceID)
	assert.Equal(t, "RB110", v.PNR)
	assert.False(t, v.AlreadyLogged)
	assert.Equal(t, 100.0, v.OldScore)
	assert.Equal(t, 99.5, v.NewScore)
	assert.Equal(t, 99.5, f.operators.operators[1].TrustScore())
	require.Len(t, f.trustLogs.logs, 1)
	assert.Equal(t, "Refund timeout SLA violation for PNR RB110", f.trustLogs.logs[0].Reason())
}

// TestRunSweep_Idempotent verifies a second sweep reports the violation but
// adds no log and applies no further penalty.
func TestRunSweep_Idempotent(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB110", 1)
	f.addRefund(t, 1, 1, 60*time.Hour, nil)

	_, err := f.uc.Execute(context.Background(), RunSweepCommand{})
	require.NoError(t, err)
	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.True(t, result.Violations[0].AlreadyLogged)
	assert.Equal(t, 0, result.Penalized)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, f.trustLogs.logs, 1)
	assert.Equal(t, 99.5, f.operators.operators[1].TrustScore())
}

// TestRunSweep_RetroactiveCompletedRefund verifies a refund completed after
// the threshold still counts as a violation.
func TestRunSweep_RetroactiveCompletedRefund(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB111", 1)
	took := 72 * time.Hour
	f.addRefund(t, 1, 1, 100*time.Hour, &took)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.InDelta(t, 72.0, result.Violations[0].ElapsedHours, 0.1)
	assert.Equal(t, 99.5, f.operators.operators[1].TrustScore())
}

// TestRunSweep_PromptRefundNotPenalized verifies a refund completed within
// the threshold is left alone.
func TestRunSweep_PromptRefundNotPenalized(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB112", 1)
	took := 10 * time.Hour
	f.addRefund(t, 1, 1, 100*time.Hour, &took)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 100.0, f.operators.operators[1].TrustScore())
}

// TestRunSweep_ScoreFloorsAtZero verifies penalties never push the score
// below zero.
func TestRunSweep_ScoreFloorsAtZero(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 0.3)
	f.addCancelledTicket(t, 1, "RB113", 1)
	f.addRefund(t, 1, 1, 60*time.Hour, nil)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, 0.0, result.Violations[0].NewScore)
	assert.Equal(t, 0.0, f.operators.operators[1].TrustScore())
}

// TestRunSweep_ComplaintCountBumpedOnlyWithComplaint verifies a refund
// violation bumps the operator complaint count only when a complaint exists
// for that PNR.
func TestRunSweep_ComplaintCountBumpedOnlyWithComplaint(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB110", 1)
	f.addRefund(t, 1, 1, 60*time.Hour, nil)
	f.addOperator(t, 2, 100)
	f.addCancelledTicket(t, 2, "RB111", 2)
	f.addRefund(t, 2, 2, 60*time.Hour, nil)
	// complaint only against RB110, fresh enough to stay out of the
	// complaint response sweep
	f.addComplaint(t, 1, "RB110", 1, time.Hour)

	_, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	assert.Equal(t, 1, f.operators.operators[1].ComplaintCount())
	assert.Equal(t, 0, f.operators.operators[2].ComplaintCount())
}

// TestRunSweep_ComplaintResponseViolation verifies an unanswered complaint
// older than the threshold is penalized.
func TestRunSweep_ComplaintResponseViolation(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	f.addComplaint(t, 5, "RB114", 1, 30*time.Hour)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, sla.SLATypeComplaintResponse, v.Type)
	assert.Equal(t, "complaint:5", v.SourceID)
	assert.Equal(t, 99.8, f.operators.operators[1].TrustScore())
}

// TestRunSweep_TimelyAdminReplyNotPenalized verifies a first admin reply
// inside the window clears the complaint.
func TestRunSweep_TimelyAdminReplyNotPenalized(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	c := f.addComplaint(t, 5, "RB114", 1, 30*time.Hour)
	reply := c.CreatedAt().Add(3 * time.Hour)
	f.messages.firstAdminReply[5] = &reply

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 100.0, f.operators.operators[1].TrustScore())
}

// TestRunSweep_LateAdminReplyStillViolation verifies a reply after the
// window is a retroactive violation measured to the reply time.
func TestRunSweep_LateAdminReplyStillViolation(t *testing.T) {
	f := newSweepFixture(t)
	f.addOperator(t, 1, 100)
	c := f.addComplaint(t, 5, "RB114", 1, 80*time.Hour)
	reply := c.CreatedAt().Add(30 * time.Hour)
	f.messages.firstAdminReply[5] = &reply

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.InDelta(t, 30.0, result.Violations[0].ElapsedHours, 0.1)
}

// TestRunSweep_MissingConfigSkipsType verifies a missing config row disables
// that type while the other still runs.
func TestRunSweep_MissingConfigSkipsType(t *testing.T) {
	f := newSweepFixture(t)
	delete(f.slaConfigs.configs, sla.SLATypeRefundTimeout)
	f.addOperator(t, 1, 100)
	f.addCancelledTicket(t, 1, "RB110", 1)
	f.addRefund(t, 1, 1, 60*time.Hour, nil)
	f.addComplaint(t, 5, "RB114", 1, 30*time.Hour)

	result, err := f.uc.Execute(context.Background(), RunSweepCommand{})

	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, sla.SLATypeComplaintResponse, result.Violations[0].Type)
}
