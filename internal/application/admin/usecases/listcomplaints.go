package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type ListComplaintsQuery struct {
	Status     string
	Pagination utils.Pagination
}

// ComplaintListItem pairs a complaint with its operator for the admin queue.
type ComplaintListItem struct {
	Complaint *complaint.Complaint
	Operator  *operator.Operator
}

type ListComplaintsResult struct {
	Items []ComplaintListItem
	Total int64
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	operatorRepo  operator.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.ComplaintRepository,
	operatorRepo operator.Repository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		operatorRepo:  operatorRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter := complaint.ComplaintFilter{
		Page:     query.Pagination.Page,
		PageSize: query.Pagination.PageSize,
	}
	if query.Status != "" {
		status := complaint.ComplaintStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid complaint status: %s", query.Status))
		}
		filter.Status = &status
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	operators := map[uint]*operator.Operator{}
	items := make([]ComplaintListItem, 0, len(complaints))
	for _, c := range complaints {
		op, ok := operators[c.OperatorID()]
		if !ok {
			op, err = uc.operatorRepo.GetByID(ctx, c.OperatorID())
			if err != nil {
				uc.logger.Errorw("failed to get operator", "error", err, "operator_id", c.OperatorID())
				return nil, fmt.Errorf("failed to get operator: %w", err)
			}
			operators[c.OperatorID()] = op
		}
		items = append(items, ComplaintListItem{Complaint: c, Operator: op})
	}

	return &ListComplaintsResult{Items: items, Total: total}, nil
}
