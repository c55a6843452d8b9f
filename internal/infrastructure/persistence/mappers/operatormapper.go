package mappers

import (
	"openfare/internal/domain/operator"
	"openfare/internal/infrastructure/persistence/models"
)

// OperatorMapper handles the conversion between domain entities and persistence models
type OperatorMapper interface {
	ToEntity(model *models.OperatorModel) (*operator.Operator, error)
	ToModel(entity *operator.Operator) (*models.OperatorModel, error)
	ToEntities(models []*models.OperatorModel) ([]*operator.Operator, error)
}

type OperatorMapperImpl struct{}

func NewOperatorMapper() OperatorMapper {
	return &OperatorMapperImpl{}
}

func (m *OperatorMapperImpl) ToEntity(model *models.OperatorModel) (*operator.Operator, error) {
	if model == nil {
		return nil, nil
	}

	return operator.ReconstructOperator(
		model.ID,
		model.Name,
		model.TrustScore,
		model.ComplaintCount,
		model.AvgRefundTimeHours,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *OperatorMapperImpl) ToModel(entity *operator.Operator) (*models.OperatorModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.OperatorModel{
		ID:                 entity.ID(),
		Name:               entity.Name(),
		TrustScore:         entity.TrustScore(),
		ComplaintCount:     entity.ComplaintCount(),
		AvgRefundTimeHours: entity.AvgRefundTimeHours(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *OperatorMapperImpl) ToEntities(operatorModels []*models.OperatorModel) ([]*operator.Operator, error) {
	entities := make([]*operator.Operator, 0, len(operatorModels))
	for _, model := range operatorModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
