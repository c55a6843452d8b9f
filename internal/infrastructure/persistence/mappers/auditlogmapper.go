package mappers

import (
	"openfare/internal/domain/audit"
	"openfare/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between domain entities and persistence models
type AuditLogMapper interface {
	ToEntity(model *models.AuditLogModel) (*audit.AuditLog, error)
	ToModel(entity *audit.AuditLog) (*models.AuditLogModel, error)
	ToEntities(models []*models.AuditLogModel) ([]*audit.AuditLog, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToEntity(model *models.AuditLogModel) (*audit.AuditLog, error) {
	if model == nil {
		return nil, nil
	}

	return audit.ReconstructAuditLog(
		model.ID,
		model.Action,
		model.TargetID,
		model.Details,
		model.Justification,
		model.PerformedBy,
		model.CreatedAt,
	)
}

func (m *AuditLogMapperImpl) ToModel(entity *audit.AuditLog) (*models.AuditLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AuditLogModel{
		ID:            entity.ID(),
		Action:        entity.Action(),
		TargetID:      entity.TargetID(),
		Details:       entity.Details(),
		Justification: entity.Justification(),
		PerformedBy:   entity.PerformedBy(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}

func (m *AuditLogMapperImpl) ToEntities(logModels []*models.AuditLogModel) ([]*audit.AuditLog, error) {
	entities := make([]*audit.AuditLog, 0, len(logModels))
	for _, model := range logModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
