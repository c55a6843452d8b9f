package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"openfare/internal/domain/complaint"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/db"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// ComplaintRepository implements the complaint repository interface backed
// by gorm.
type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
	logger logger.Interface
}

func NewComplaintRepository(db *gorm.DB, logger logger.Interface) complaint.ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
		logger: logger,
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map complaint entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create complaint", "pnr", c.PNR(), "error", err)
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set complaint ID: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map complaint entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update complaint", "id", c.ID(), "error", err)
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		r.logger.Errorw("failed to get complaint by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ComplaintRepository) GetUserComplaints(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	var complaintModels []*models.ComplaintModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		r.logger.Errorw("failed to list user complaints", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list user complaints: %w", err)
	}

	return r.mapper.ToEntities(complaintModels)
}

func (r *ComplaintRepository) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Where("pnr = ?", pnr).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check complaint existence", "pnr", pnr, "error", err)
		return false, fmt.Errorf("failed to check complaint existence: %w", err)
	}
	return count > 0, nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error) {
	var complaintModels []*models.ComplaintModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.ComplaintModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count complaints", "error", err)
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&complaintModels).Error; err != nil {
		r.logger.Errorw("failed to list complaints", "error", err)
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints, err := r.mapper.ToEntities(complaintModels)
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

func (r *ComplaintRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*complaint.Complaint, error) {
	var complaintModels []*models.ComplaintModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&complaintModels).Error; err != nil {
		r.logger.Errorw("failed to list complaints older than cutoff", "error", err)
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	return r.mapper.ToEntities(complaintModels)
}
