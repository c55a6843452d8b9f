package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type FileComplaintCommand struct {
	UserID      uint
	PNR         string
	Reason      string
	Description string
}

type FileComplaintResult struct {
	Complaint *complaint.Complaint
	Message   *complaint.Message
}

// FileComplaintUseCase files a passenger complaint against the booking's
// operator. The PNR must reference a known ticket; the description becomes
// the first message of the thread.
type FileComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	messageRepo   complaint.MessageRepository
	ticketRepo    ticket.TicketRepository
	txManager     TransactionManager
	logger        logger.Interface
}

func NewFileComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	messageRepo complaint.MessageRepository,
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *FileComplaintUseCase {
	return &FileComplaintUseCase{
		complaintRepo: complaintRepo,
		messageRepo:   messageRepo,
		ticketRepo:    ticketRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *FileComplaintUseCase) Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error) {
	reason := utils.SanitizeText(cmd.Reason)
	description := utils.SanitizeText(cmd.Description)
	if reason == "" {
		return nil, errors.NewValidationError("reason is required")
	}
	if description == "" {
		return nil, errors.NewValidationError("description is required")
	}

	tk, err := uc.ticketRepo.GetByPNR(ctx, cmd.PNR)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no ticket found for this PNR")
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "pnr", cmd.PNR)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	userID := cmd.UserID
	newComplaint, err := complaint.NewComplaint(cmd.PNR, tk.OperatorID(), &userID, reason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var firstMessage *complaint.Message
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Save(txCtx, newComplaint); err != nil {
			return fmt.Errorf("failed to save complaint: %w", err)
		}
		msg, err := complaint.NewMessage(newComplaint.ID(), cmd.UserID, description)
		if err != nil {
			return err
		}
		if err := uc.messageRepo.Save(txCtx, msg); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}
		firstMessage = msg
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to file complaint", "error", err, "pnr", cmd.PNR, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("complaint filed",
		"complaint_id", newComplaint.ID(),
		"pnr", cmd.PNR,
		"operator_id", tk.OperatorID(),
	)

	return &FileComplaintResult{Complaint: newComplaint, Message: firstMessage}, nil
}
