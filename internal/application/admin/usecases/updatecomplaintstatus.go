package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/audit"
	"openfare/internal/domain/complaint"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type UpdateComplaintStatusCommand struct {
	ComplaintID   uint
	Status        string
	Justification string
	AdminID       uint
}

type UpdateComplaintStatusResult struct {
	Complaint *complaint.Complaint
}

// UpdateComplaintStatusUseCase applies an admin status transition. Resolving
// or escalating requires a justification; every change lands in the audit
// trail.
type UpdateComplaintStatusUseCase struct {
	complaintRepo complaint.ComplaintRepository
	auditRepo     audit.Repository
	txManager     TransactionManager
	logger        logger.Interface
}

func NewUpdateComplaintStatusUseCase(
	complaintRepo complaint.ComplaintRepository,
	auditRepo audit.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateComplaintStatusUseCase {
	return &UpdateComplaintStatusUseCase{
		complaintRepo: complaintRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *UpdateComplaintStatusUseCase) Execute(ctx context.Context, cmd UpdateComplaintStatusCommand) (*UpdateComplaintStatusResult, error) {
	next := complaint.ComplaintStatus(cmd.Status)
	if !next.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid complaint status: %s", cmd.Status))
	}

	justification := utils.SanitizeText(cmd.Justification)
	requiresJustification := next == complaint.StatusResolved || next == complaint.StatusEscalated
	if requiresJustification && justification == "" {
		return nil, errors.NewValidationError(fmt.Sprintf("justification is required to mark a complaint %s", next))
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	previous := c.Status()
	if err := c.ChangeStatus(next); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	action := audit.ActionUpdateComplaintStatus
	switch next {
	case complaint.StatusResolved:
		action = audit.ActionResolveComplaint
	case complaint.StatusEscalated:
		action = audit.ActionEscalateComplaint
	}

	var justificationPtr *string
	if justification != "" {
		justificationPtr = &justification
	}
	entry, err := audit.NewAuditLog(
		action,
		fmt.Sprintf("complaint:%d", c.ID()),
		fmt.Sprintf("complaint for PNR %s moved %s -> %s", c.PNR(), previous, next),
		justificationPtr,
		cmd.AdminID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build audit entry: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return fmt.Errorf("failed to update complaint: %w", err)
		}
		if err := uc.auditRepo.Save(txCtx, entry); err != nil {
			return fmt.Errorf("failed to save audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update complaint status", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.logger.Infow("complaint status updated",
		"complaint_id", c.ID(),
		"from", previous,
		"to", next,
		"admin_id", cmd.AdminID,
	)

	return &UpdateComplaintStatusResult{Complaint: c}, nil
}
