package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"openfare/internal/domain/audit"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/db"
	"openfare/internal/shared/logger"
)

// AuditLogRepository implements the audit log repository interface backed
// by gorm. The table is append-only; there is no update path.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

func NewAuditLogRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

func (r *AuditLogRepository) Save(ctx context.Context, log *audit.AuditLog) error {
	model, err := r.mapper.ToModel(log)
	if err != nil {
		return fmt.Errorf("failed to map audit log entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create audit log", "action", log.Action(), "error", err)
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	if err := log.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set audit log ID: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*audit.AuditLog, int64, error) {
	var logModels []*models.AuditLogModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.AuditLogModel{})
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count audit logs", "error", err)
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&logModels).Error; err != nil {
		r.logger.Errorw("failed to list audit logs", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	logs, err := r.mapper.ToEntities(logModels)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
