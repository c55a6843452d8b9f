package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
}

type GetComplaintResult struct {
	Complaint *complaint.Complaint
	Operator  *operator.Operator
	Messages  []*complaint.Message
}

// GetComplaintUseCase loads a complaint with its operator and full message
// thread for the admin detail view.
type GetComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	messageRepo   complaint.MessageRepository
	operatorRepo  operator.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	messageRepo complaint.MessageRepository,
	operatorRepo operator.Repository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		messageRepo:   messageRepo,
		operatorRepo:  operatorRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*GetComplaintResult, error) {
	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", query.ComplaintID)
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	op, err := uc.operatorRepo.GetByID(ctx, c.OperatorID())
	if err != nil {
		uc.logger.Errorw("failed to get operator", "error", err, "operator_id", c.OperatorID())
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	messages, err := uc.messageRepo.GetByComplaintID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "complaint_id", c.ID())
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &GetComplaintResult{Complaint: c, Operator: op, Messages: messages}, nil
}
