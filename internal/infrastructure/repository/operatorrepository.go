package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"openfare/internal/domain/operator"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/db"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// OperatorRepository implements the operator repository interface backed by gorm.
type OperatorRepository struct {
	db     *gorm.DB
	mapper mappers.OperatorMapper
	logger logger.Interface
}

func NewOperatorRepository(db *gorm.DB, logger logger.Interface) operator.Repository {
	return &OperatorRepository{
		db:     db,
		mapper: mappers.NewOperatorMapper(),
		logger: logger,
	}
}

func (r *OperatorRepository) Save(ctx context.Context, op *operator.Operator) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return fmt.Errorf("failed to map operator entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create operator", "name", op.Name(), "error", err)
		return fmt.Errorf("failed to create operator: %w", err)
	}

	if err := op.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set operator ID: %w", err)
	}
	return nil
}

func (r *OperatorRepository) Update(ctx context.Context, op *operator.Operator) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return fmt.Errorf("failed to map operator entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update operator", "id", op.ID(), "error", err)
		return fmt.Errorf("failed to update operator: %w", err)
	}
	return nil
}

func (r *OperatorRepository) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	var model models.OperatorModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("operator not found")
		}
		r.logger.Errorw("failed to get operator by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OperatorRepository) GetByName(ctx context.Context, name string) (*operator.Operator, error) {
	var model models.OperatorModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("operator not found")
		}
		r.logger.Errorw("failed to get operator by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List returns all operators ordered by trust score, best first.
func (r *OperatorRepository) List(ctx context.Context) ([]*operator.Operator, error) {
	var operatorModels []*models.OperatorModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Order("trust_score DESC, name ASC").
		Find(&operatorModels).Error; err != nil {
		r.logger.Errorw("failed to list operators", "error", err)
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}

	return r.mapper.ToEntities(operatorModels)
}
