package usecases

import (
	"context"
	"fmt"
	"sort"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/ticket"
	"openfare/internal/domain/user"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserID uint
}

// TicketWithDetails bundles a ticket with its operator and refund trail.
type TicketWithDetails struct {
	Ticket   *ticket.Ticket
	Operator *operator.Operator
	Refunds  []*ticket.Refund
}

// ComplaintWithOperator bundles a complaint with its operator.
type ComplaintWithOperator struct {
	Complaint *complaint.Complaint
	Operator  *operator.Operator
}

type GetDashboardResult struct {
	User       *user.User
	Tickets    []TicketWithDetails
	Complaints []ComplaintWithOperator
}

// GetDashboardUseCase assembles the passenger dashboard: profile, bookings
// with refund status, and filed complaints, all newest first.
type GetDashboardUseCase struct {
	userRepo      user.Repository
	ticketRepo    ticket.TicketRepository
	refundRepo    ticket.RefundRepository
	complaintRepo complaint.ComplaintRepository
	operatorRepo  operator.Repository
	logger        logger.Interface
}

func NewGetDashboardUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	refundRepo ticket.RefundRepository,
	complaintRepo complaint.ComplaintRepository,
	operatorRepo operator.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:      userRepo,
		ticketRepo:    ticketRepo,
		refundRepo:    refundRepo,
		complaintRepo: complaintRepo,
		operatorRepo:  operatorRepo,
		logger:        logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tickets, err := uc.ticketRepo.GetUserTickets(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user tickets", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	operators := map[uint]*operator.Operator{}
	lookupOperator := func(id uint) (*operator.Operator, error) {
		if op, ok := operators[id]; ok {
			return op, nil
		}
		op, err := uc.operatorRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		operators[id] = op
		return op, nil
	}

	ticketDetails := make([]TicketWithDetails, 0, len(tickets))
	for _, tk := range tickets {
		op, err := lookupOperator(tk.OperatorID())
		if err != nil {
			uc.logger.Errorw("failed to get operator", "error", err, "operator_id", tk.OperatorID())
			return nil, fmt.Errorf("failed to get operator: %w", err)
		}
		refunds, err := uc.refundRepo.GetByTicketID(ctx, tk.ID())
		if err != nil {
			uc.logger.Errorw("failed to list refunds", "error", err, "ticket_id", tk.ID())
			return nil, fmt.Errorf("failed to list refunds: %w", err)
		}
		ticketDetails = append(ticketDetails, TicketWithDetails{Ticket: tk, Operator: op, Refunds: refunds})
	}
	sort.SliceStable(ticketDetails, func(i, j int) bool {
		return ticketDetails[i].Ticket.CreatedAt().After(ticketDetails[j].Ticket.CreatedAt())
	})

	complaints, err := uc.complaintRepo.GetUserComplaints(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user complaints", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaintDetails := make([]ComplaintWithOperator, 0, len(complaints))
	for _, c := range complaints {
		op, err := lookupOperator(c.OperatorID())
		if err != nil {
			uc.logger.Errorw("failed to get operator", "error", err, "operator_id", c.OperatorID())
			return nil, fmt.Errorf("failed to get operator: %w", err)
		}
		complaintDetails = append(complaintDetails, ComplaintWithOperator{Complaint: c, Operator: op})
	}
	sort.SliceStable(complaintDetails, func(i, j int) bool {
		return complaintDetails[i].Complaint.CreatedAt().After(complaintDetails[j].Complaint.CreatedAt())
	})

	return &GetDashboardResult{
		User:       u,
		Tickets:    ticketDetails,
		Complaints: complaintDetails,
	}, nil
}
