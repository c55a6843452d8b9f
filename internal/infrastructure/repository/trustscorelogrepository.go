package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openfare/internal/domain/sla"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/db"
	"openfare/internal/shared/logger"
)

// TrustScoreLogRepository implements the trust score log repository
// interface backed by gorm.
type TrustScoreLogRepository struct {
	db     *gorm.DB
	mapper mappers.TrustScoreLogMapper
	logger logger.Interface
}

func NewTrustScoreLogRepository(db *gorm.DB, logger logger.Interface) sla.TrustScoreLogRepository {
	return &TrustScoreLogRepository{
		db:     db,
		mapper: mappers.NewTrustScoreLogMapper(),
		logger: logger,
	}
}

// SaveIfAbsent inserts the log unless a row with the same source ID already
// exists. The unique source_id index turns a concurrent duplicate into a
// no-op insert instead of an error, and RowsAffected reports which happened.
func (r *TrustScoreLogRepository) SaveIfAbsent(ctx context.Context, log *sla.TrustScoreLog) (bool, error) {
	model := r.mapper.ToModel(log)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_id"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to insert trust score log", "source_id", log.SourceID(), "error", result.Error)
		return false, fmt.Errorf("failed to insert trust score log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	log.SetID(model.ID)
	return true, nil
}

func (r *TrustScoreLogRepository) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.TrustScoreLogModel{}).
		Where("source_id = ?", sourceID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check trust score log existence", "source_id", sourceID, "error", err)
		return false, fmt.Errorf("failed to check trust score log existence: %w", err)
	}
	return count > 0, nil
}

func (r *TrustScoreLogRepository) ListByOperator(ctx context.Context, operatorID uint) ([]*sla.TrustScoreLog, error) {
	var logModels []*models.TrustScoreLogModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("created_at DESC, id DESC").
		Find(&logModels).Error; err != nil {
		r.logger.Errorw("failed to list trust score logs", "operator_id", operatorID, "error", err)
		return nil, fmt.Errorf("failed to list trust score logs: %w", err)
	}

	return r.mapper.ToEntities(logModels), nil
}
