package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/complaint"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type AddMessageCommand struct {
	ComplaintID uint
	AdminID     uint
	Content     string
}

type AddMessageResult struct {
	Message *complaint.Message
}

// AddMessageUseCase appends an admin reply to a complaint thread and marks
// the passenger's earlier messages as read.
type AddMessageUseCase struct {
	complaintRepo complaint.ComplaintRepository
	messageRepo   complaint.MessageRepository
	txManager     TransactionManager
	logger        logger.Interface
}

func NewAddMessageUseCase(
	complaintRepo complaint.ComplaintRepository,
	messageRepo complaint.MessageRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		complaintRepo: complaintRepo,
		messageRepo:   messageRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	content := utils.SanitizeText(cmd.Content)
	if content == "" {
		return nil, errors.NewValidationError("message content is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	msg, err := complaint.NewMessage(c.ID(), cmd.AdminID, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, msg); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}
		if err := uc.messageRepo.MarkRead(txCtx, c.ID(), cmd.AdminID); err != nil {
			return fmt.Errorf("failed to mark thread read: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add message", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.logger.Infow("admin reply added", "complaint_id", c.ID(), "admin_id", cmd.AdminID)

	return &AddMessageResult{Message: msg}, nil
}
