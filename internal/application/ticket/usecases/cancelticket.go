package usecases

import (
	"context"
	"fmt"
	"time"

	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// defaultRefundDeadlineHours is used when no REFUND_TIMEOUT SLA row is
// configured yet.
const defaultRefundDeadlineHours = 48.0

type CancelTicketCommand struct {
	PNR    string
	UserID uint
}

type CancelTicketResult struct {
	Ticket       *ticket.Ticket
	Refund       *ticket.Refund
	Bucket       ticket.PolicyBucket
	ElapsedHours float64
}

// CancelTicketUseCase cancels a booked ticket, resolving the refund amount
// from the policy locked at booking time and opening an INITIATED refund.
type CancelTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	refundRepo    ticket.RefundRepository
	slaConfigRepo sla.ConfigRepository
	txManager     TransactionManager
	logger        logger.Interface
}

func NewCancelTicketUseCase(
	ticketRepo ticket.TicketRepository,
	refundRepo ticket.RefundRepository,
	slaConfigRepo sla.ConfigRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		ticketRepo:    ticketRepo,
		refundRepo:    refundRepo,
		slaConfigRepo: slaConfigRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error) {
	tk, err := uc.ticketRepo.GetByPNR(ctx, cmd.PNR)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "pnr", cmd.PNR)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if tk.UserID() != nil && *tk.UserID() != cmd.UserID {
		return nil, errors.NewForbiddenError("ticket belongs to another account")
	}
	if tk.Status() == ticket.StatusCancelled {
		return nil, errors.NewConflictError("ticket is already cancelled")
	}

	policy, err := tk.Policy()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	elapsedHours := now.Sub(tk.CreatedAt()).Hours()
	refundAmount, bucket, err := policy.RefundAmount(tk.Amount(), elapsedHours)
	if err != nil {
		return nil, err
	}

	deadline := now.Add(uc.refundDeadlineWindow(ctx))
	if err := tk.Cancel(refundAmount, deadline); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	refund, err := ticket.NewRefund(tk.ID(), refundAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if err := uc.refundRepo.Save(txCtx, refund); err != nil {
			return fmt.Errorf("failed to save refund: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel ticket", "error", err, "pnr", cmd.PNR)
		return nil, err
	}

	uc.logger.Infow("ticket cancelled",
		"pnr", cmd.PNR,
		"refund_amount", refundAmount,
		"bucket", bucket.Label,
	)

	return &CancelTicketResult{
		Ticket:       tk,
		Refund:       refund,
		Bucket:       bucket,
		ElapsedHours: elapsedHours,
	}, nil
}

// refundDeadlineWindow derives the operator's processing window from the
// refund timeout SLA, falling back to the default when unconfigured.
func (uc *CancelTicketUseCase) refundDeadlineWindow(ctx context.Context) time.Duration {
	cfg, err := uc.slaConfigRepo.GetByType(ctx, sla.SLATypeRefundTimeout)
	if err != nil || cfg == nil {
		uc.logger.Warnw("refund timeout SLA not configured, using default deadline",
			"default_hours", defaultRefundDeadlineHours,
		)
		return time.Duration(defaultRefundDeadlineHours * float64(time.Hour))
	}
	return cfg.Threshold()
}
