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
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// SLAConfigRepository implements the SLA config repository interface backed
// by gorm.
type SLAConfigRepository struct {
	db     *gorm.DB
	mapper mappers.SLAConfigMapper
	logger logger.Interface
}

func NewSLAConfigRepository(db *gorm.DB, logger logger.Interface) sla.ConfigRepository {
	return &SLAConfigRepository{
		db:     db,
		mapper: mappers.NewSLAConfigMapper(),
		logger: logger,
	}
}

func (r *SLAConfigRepository) GetByType(ctx context.Context, slaType sla.SLAType) (*sla.Config, error) {
	var model models.SLAConfigModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("type = ?", string(slaType)).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("SLA config not found")
		}
		r.logger.Errorw("failed to get SLA config", "type", slaType, "error", err)
		return nil, fmt.Errorf("failed to get SLA config: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Upsert inserts the config for its type or updates the threshold and
// penalty of the existing row.
func (r *SLAConfigRepository) Upsert(ctx context.Context, config *sla.Config) error {
	model := r.mapper.ToModel(config)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"threshold_hours", "penalty", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert SLA config", "type", config.Type(), "error", err)
		return fmt.Errorf("failed to upsert SLA config: %w", err)
	}

	config.SetID(model.ID)
	return nil
}

func (r *SLAConfigRepository) List(ctx context.Context) ([]*sla.Config, error) {
	var configModels []*models.SLAConfigModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Order("type ASC").Find(&configModels).Error; err != nil {
		r.logger.Errorw("failed to list SLA configs", "error", err)
		return nil, fmt.Errorf("failed to list SLA configs: %w", err)
	}

	return r.mapper.ToEntities(configModels), nil
}
