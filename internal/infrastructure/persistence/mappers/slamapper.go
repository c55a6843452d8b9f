package mappers

import (
	"openfare/internal/domain/sla"
	"openfare/internal/infrastructure/persistence/models"
)

// SLAConfigMapper handles the conversion between domain entities and persistence models
type SLAConfigMapper interface {
	ToEntity(model *models.SLAConfigModel) *sla.Config
	ToModel(entity *sla.Config) *models.SLAConfigModel
	ToEntities(models []*models.SLAConfigModel) []*sla.Config
}

type SLAConfigMapperImpl struct{}

func NewSLAConfigMapper() SLAConfigMapper {
	return &SLAConfigMapperImpl{}
}

func (m *SLAConfigMapperImpl) ToEntity(model *models.SLAConfigModel) *sla.Config {
	if model == nil {
		return nil
	}

	return sla.ReconstructConfig(
		model.ID,
		sla.SLAType(model.Type),
		model.ThresholdHours,
		model.Penalty,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SLAConfigMapperImpl) ToModel(entity *sla.Config) *models.SLAConfigModel {
	if entity == nil {
		return nil
	}

	return &models.SLAConfigModel{
		ID:             entity.ID(),
		Type:           string(entity.Type()),
		ThresholdHours: entity.ThresholdHours(),
		Penalty:        entity.Penalty(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *SLAConfigMapperImpl) ToEntities(configModels []*models.SLAConfigModel) []*sla.Config {
	entities := make([]*sla.Config, 0, len(configModels))
	for _, model := range configModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}

// TrustScoreLogMapper handles the conversion between domain entities and persistence models
type TrustScoreLogMapper interface {
	ToEntity(model *models.TrustScoreLogModel) *sla.TrustScoreLog
	ToModel(entity *sla.TrustScoreLog) *models.TrustScoreLogModel
	ToEntities(models []*models.TrustScoreLogModel) []*sla.TrustScoreLog
}

type TrustScoreLogMapperImpl struct{}

func NewTrustScoreLogMapper() TrustScoreLogMapper {
	return &TrustScoreLogMapperImpl{}
}

func (m *TrustScoreLogMapperImpl) ToEntity(model *models.TrustScoreLogModel) *sla.TrustScoreLog {
	if model == nil {
		return nil
	}

	return sla.ReconstructTrustScoreLog(
		model.ID,
		model.OperatorID,
		model.OldScore,
		model.NewScore,
		model.Reason,
		model.SourceID,
		model.CreatedAt,
	)
}

func (m *TrustScoreLogMapperImpl) ToModel(entity *sla.TrustScoreLog) *models.TrustScoreLogModel {
	if entity == nil {
		return nil
	}

	return &models.TrustScoreLogModel{
		ID:         entity.ID(),
		OperatorID: entity.OperatorID(),
		OldScore:   entity.OldScore(),
		NewScore:   entity.NewScore(),
		Reason:     entity.Reason(),
		SourceID:   entity.SourceID(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *TrustScoreLogMapperImpl) ToEntities(logModels []*models.TrustScoreLogModel) []*sla.TrustScoreLog {
	entities := make([]*sla.TrustScoreLog, 0, len(logModels))
	for _, model := range logModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
