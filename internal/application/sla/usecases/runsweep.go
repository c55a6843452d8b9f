package usecases

import (
	"context"
	"fmt"
	"time"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// TransactionManager runs a function within a database transaction carried
// on the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RunSweepCommand struct {
	// Now anchors elapsed-time math; zero means the current clock.
	Now time.Time
}

// Violation is one detected SLA breach, whether freshly penalized in this
// sweep or already logged by an earlier one.
type Violation struct {
	Type          sla.SLAType
	SourceID      string
	PNR           string
	OperatorID    uint
	OperatorName  string
	ElapsedHours  float64
	Penalty       float64
	OldScore      float64
	NewScore      float64
	AlreadyLogged bool
}

type RunSweepResult struct {
	Violations []Violation
	Penalized  int
	Skipped    int
}

// RunSweepUseCase scans refunds and complaints for SLA breaches and applies
// trust score penalties at most once per violating entity. The source_id
// recorded with each TrustScoreLog is the idempotency key; re-running the
// sweep never penalizes the same refund or complaint twice.
type RunSweepUseCase struct {
	slaConfigRepo sla.ConfigRepository
	trustLogRepo  sla.TrustScoreLogRepository
	refundRepo    ticket.RefundRepository
	ticketRepo    ticket.TicketRepository
	complaintRepo complaint.ComplaintRepository
	messageRepo   complaint.MessageRepository
	operatorRepo  operator.Repository
	txManager     TransactionManager
	logger        logger.Interface
}

func NewRunSweepUseCase(
	slaConfigRepo sla.ConfigRepository,
	trustLogRepo sla.TrustScoreLogRepository,
	refundRepo ticket.RefundRepository,
	ticketRepo ticket.TicketRepository,
	complaintRepo complaint.ComplaintRepository,
	messageRepo complaint.MessageRepository,
	operatorRepo operator.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RunSweepUseCase {
	return &RunSweepUseCase{
		slaConfigRepo: slaConfigRepo,
		trustLogRepo:  trustLogRepo,
		refundRepo:    refundRepo,
		ticketRepo:    ticketRepo,
		complaintRepo: complaintRepo,
		messageRepo:   messageRepo,
		operatorRepo:  operatorRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *RunSweepUseCase) Execute(ctx context.Context, cmd RunSweepCommand) (*RunSweepResult, error) {
	now := cmd.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := &RunSweepResult{}

	if err := uc.sweepRefunds(ctx, now, result); err != nil {
		return nil, err
	}
	if err := uc.sweepComplaints(ctx, now, result); err != nil {
		return nil, err
	}

	uc.logger.Infow("SLA sweep finished",
		"violations", len(result.Violations),
		"penalized", result.Penalized,
		"already_logged", result.Skipped,
	)

	return result, nil
}

// loadConfig fetches the config row for a type. A missing row disables that
// type for this sweep instead of failing the whole run.
func (uc *RunSweepUseCase) loadConfig(ctx context.Context, slaType sla.SLAType) (*sla.Config, error) {
	cfg, err := uc.slaConfigRepo.GetByType(ctx, slaType)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("SLA type not configured, skipping", "sla_type", slaType)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load SLA config %s: %w", slaType, err)
	}
	return cfg, nil
}

func (uc *RunSweepUseCase) sweepRefunds(ctx context.Context, now time.Time, result *RunSweepResult) error {
	cfg, err := uc.loadConfig(ctx, sla.SLATypeRefundTimeout)
	if err != nil || cfg == nil {
		return err
	}

	refunds, err := uc.refundRepo.ListExceedingThreshold(ctx, cfg.Threshold(), now)
	if err != nil {
		return fmt.Errorf("failed to list overdue refunds: %w", err)
	}

	for _, r := range refunds {
		tk, err := uc.ticketRepo.GetByID(ctx, r.TicketID())
		if err != nil {
			uc.logger.Errorw("failed to load ticket for overdue refund", "error", err, "refund_id", r.ID())
			continue
		}

		violation := Violation{
			Type:         sla.SLATypeRefundTimeout,
			SourceID:     sla.RefundSourceID(r.ID()),
			PNR:          tk.PNR(),
			OperatorID:   tk.OperatorID(),
			ElapsedHours: r.ProcessingHours(now),
			Penalty:      cfg.Penalty(),
		}
		reason := fmt.Sprintf("Refund timeout SLA violation for PNR %s", tk.PNR())

		if err := uc.penalize(ctx, &violation, reason, cfg.Penalty(), tk.PNR(), true); err != nil {
			uc.logger.Errorw("failed to apply refund penalty", "error", err, "source_id", violation.SourceID)
			continue
		}
		uc.record(result, violation)
	}
	return nil
}

func (uc *RunSweepUseCase) sweepComplaints(ctx context.Context, now time.Time, result *RunSweepResult) error {
	cfg, err := uc.loadConfig(ctx, sla.SLATypeComplaintResponse)
	if err != nil || cfg == nil {
		return err
	}

	// Any complaint with a late first admin reply is necessarily older than
	// the threshold, replies cannot arrive before the complaint.
	candidates, err := uc.complaintRepo.ListOlderThan(ctx, now.Add(-cfg.Threshold()))
	if err != nil {
		return fmt.Errorf("failed to list stale complaints: %w", err)
	}

	for _, c := range candidates {
		firstReply, err := uc.messageRepo.FirstAdminReplyAt(ctx, c.ID())
		if err != nil {
			uc.logger.Errorw("failed to find first admin reply", "error", err, "complaint_id", c.ID())
			continue
		}

		end := now
		if firstReply != nil {
			end = *firstReply
		}
		elapsed := end.Sub(c.CreatedAt())
		if !cfg.Exceeded(elapsed) {
			continue
		}

		violation := Violation{
			Type:         sla.SLATypeComplaintResponse,
			SourceID:     sla.ComplaintSourceID(c.ID()),
			PNR:          c.PNR(),
			OperatorID:   c.OperatorID(),
			ElapsedHours: elapsed.Hours(),
			Penalty:      cfg.Penalty(),
		}
		reason := fmt.Sprintf("Complaint response SLA violation for PNR %s", c.PNR())

		if err := uc.penalize(ctx, &violation, reason, cfg.Penalty(), c.PNR(), false); err != nil {
			uc.logger.Errorw("failed to apply complaint penalty", "error", err, "source_id", violation.SourceID)
			continue
		}
		uc.record(result, violation)
	}
	return nil
}

// penalize applies a single violation inside one transaction: insert the
// trust score log keyed by source_id, then persist the operator's lowered
// score. A duplicate source_id means an earlier sweep already charged this
// violation; the operator is left untouched.
func (uc *RunSweepUseCase) penalize(
	ctx context.Context,
	violation *Violation,
	reason string,
	penalty float64,
	pnr string,
	bumpComplaintCount bool,
) error {
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		op, err := uc.operatorRepo.GetByID(txCtx, violation.OperatorID)
		if err != nil {
			return fmt.Errorf("failed to load operator: %w", err)
		}
		violation.OperatorName = op.Name()

		logged, err := uc.trustLogRepo.ExistsBySourceID(txCtx, violation.SourceID)
		if err != nil {
			return fmt.Errorf("failed to check trust score log: %w", err)
		}
		if logged {
			violation.AlreadyLogged = true
			return nil
		}

		oldScore, newScore, err := op.ApplyPenalty(penalty)
		if err != nil {
			return err
		}

		entry, err := sla.NewViolationLog(op.ID(), oldScore, newScore, reason, violation.SourceID)
		if err != nil {
			return err
		}

		// The unique source_id index is the real guard; a concurrent sweep
		// losing this race leaves the operator untouched.
		inserted, err := uc.trustLogRepo.SaveIfAbsent(txCtx, entry)
		if err != nil {
			return fmt.Errorf("failed to save trust score log: %w", err)
		}
		if !inserted {
			violation.AlreadyLogged = true
			return nil
		}

		violation.OldScore = oldScore
		violation.NewScore = newScore

		if bumpComplaintCount {
			hasComplaint, err := uc.complaintRepo.ExistsByPNR(txCtx, pnr)
			if err != nil {
				return fmt.Errorf("failed to check complaints for pnr: %w", err)
			}
			if hasComplaint {
				op.RecordComplaint()
			}
		}

		if err := uc.operatorRepo.Update(txCtx, op); err != nil {
			return fmt.Errorf("failed to update operator: %w", err)
		}
		return nil
	})
}

func (uc *RunSweepUseCase) record(result *RunSweepResult, violation Violation) {
	result.Violations = append(result.Violations, violation)
	if violation.AlreadyLogged {
		result.Skipped++
	} else {
		result.Penalized++
	}
}
