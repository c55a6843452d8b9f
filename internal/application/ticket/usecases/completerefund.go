package usecases

import (
	"context"
	"fmt"
	"time"

	"openfare/internal/domain/audit"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type CompleteRefundCommand struct {
	RefundID uint
	AdminID  uint
}

type CompleteRefundResult struct {
	Refund *ticket.Refund
}

// CompleteRefundUseCase marks an initiated refund as processed and records
// the action in the audit trail.
type CompleteRefundUseCase struct {
	refundRepo ticket.RefundRepository
	ticketRepo ticket.TicketRepository
	auditRepo  audit.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCompleteRefundUseCase(
	refundRepo ticket.RefundRepository,
	ticketRepo ticket.TicketRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CompleteRefundUseCase {
	return &CompleteRefundUseCase{
		refundRepo: refundRepo,
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CompleteRefundUseCase) Execute(ctx context.Context, cmd CompleteRefundCommand) (*CompleteRefundResult, error) {
	refund, err := uc.refundRepo.GetByID(ctx, cmd.RefundID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("refund not found")
		}
		uc.logger.Errorw("failed to get refund", "error", err, "refund_id", cmd.RefundID)
		return nil, fmt.Errorf("failed to get refund: %w", err)
	}

	if refund.Status() == ticket.RefundCompleted {
		return nil, errors.NewConflictError("refund is already completed")
	}

	if err := refund.Complete(time.Now()); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	tk, err := uc.ticketRepo.GetByID(ctx, refund.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to get ticket for refund", "error", err, "ticket_id", refund.TicketID())
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	entry, err := audit.NewAuditLog(
		audit.ActionCompleteRefund,
		fmt.Sprintf("refund:%d", refund.ID()),
		fmt.Sprintf("refund of %.2f for PNR %s marked completed", refund.Amount(), tk.PNR()),
		nil,
		cmd.AdminID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build audit entry: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.refundRepo.Update(txCtx, refund); err != nil {
			return fmt.Errorf("failed to update refund: %w", err)
		}
		if err := uc.auditRepo.Save(txCtx, entry); err != nil {
			return fmt.Errorf("failed to save audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to complete refund", "error", err, "refund_id", cmd.RefundID)
		return nil, err
	}

	uc.logger.Infow("refund completed", "refund_id", refund.ID(), "pnr", tk.PNR(), "admin_id", cmd.AdminID)

	return &CompleteRefundResult{Refund: refund}, nil
}
