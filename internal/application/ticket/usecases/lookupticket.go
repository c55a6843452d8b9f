package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/operator"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type LookupTicketQuery struct {
	PNR string
}

type LookupTicketResult struct {
	Ticket   *ticket.Ticket
	Operator *operator.Operator
	Refunds  []*ticket.Refund
}

// LookupTicketUseCase resolves a booking by PNR for the public lookup page.
type LookupTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	refundRepo   ticket.RefundRepository
	operatorRepo operator.Repository
	logger       logger.Interface
}

func NewLookupTicketUseCase(
	ticketRepo ticket.TicketRepository,
	refundRepo ticket.RefundRepository,
	operatorRepo operator.Repository,
	logger logger.Interface,
) *LookupTicketUseCase {
	return &LookupTicketUseCase{
		ticketRepo:   ticketRepo,
		refundRepo:   refundRepo,
		operatorRepo: operatorRepo,
		logger:       logger,
	}
}

func (uc *LookupTicketUseCase) Execute(ctx context.Context, query LookupTicketQuery) (*LookupTicketResult, error) {
	if query.PNR == "" {
		return nil, errors.NewValidationError("pnr is required")
	}

	tk, err := uc.ticketRepo.GetByPNR(ctx, query.PNR)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "pnr", query.PNR)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	op, err := uc.operatorRepo.GetByID(ctx, tk.OperatorID())
	if err != nil {
		uc.logger.Errorw("failed to get operator", "error", err, "operator_id", tk.OperatorID())
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	refunds, err := uc.refundRepo.GetByTicketID(ctx, tk.ID())
	if err != nil {
		uc.logger.Errorw("failed to list refunds", "error", err, "ticket_id", tk.ID())
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}

	return &LookupTicketResult{Ticket: tk, Operator: op, Refunds: refunds}, nil
}
