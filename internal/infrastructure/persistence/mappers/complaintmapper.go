package mappers

import (
	"openfare/internal/domain/complaint"
	"openfare/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between domain entities and persistence models
type ComplaintMapper interface {
	ToEntity(model *models.ComplaintModel) (*complaint.Complaint, error)
	ToModel(entity *complaint.Complaint) (*models.ComplaintModel, error)
	ToEntities(models []*models.ComplaintModel) ([]*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToEntity(model *models.ComplaintModel) (*complaint.Complaint, error) {
	if model == nil {
		return nil, nil
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.PNR,
		model.OperatorID,
		model.UserID,
		model.Reason,
		complaint.ComplaintStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ComplaintMapperImpl) ToModel(entity *complaint.Complaint) (*models.ComplaintModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ComplaintModel{
		ID:         entity.ID(),
		PNR:        entity.PNR(),
		OperatorID: entity.OperatorID(),
		UserID:     entity.UserID(),
		Reason:     entity.Reason(),
		Status:     string(entity.Status()),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *ComplaintMapperImpl) ToEntities(complaintModels []*models.ComplaintModel) ([]*complaint.Complaint, error) {
	entities := make([]*complaint.Complaint, 0, len(complaintModels))
	for _, model := range complaintModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// MessageMapper handles the conversion between domain entities and persistence models
type MessageMapper interface {
	ToEntity(model *models.MessageModel) (*complaint.Message, error)
	ToModel(entity *complaint.Message) (*models.MessageModel, error)
	ToEntities(models []*models.MessageModel) ([]*complaint.Message, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (m *MessageMapperImpl) ToEntity(model *models.MessageModel) (*complaint.Message, error) {
	if model == nil {
		return nil, nil
	}

	return complaint.ReconstructMessage(
		model.ID,
		model.ComplaintID,
		model.SenderID,
		model.Content,
		model.Read,
		model.CreatedAt,
	)
}

func (m *MessageMapperImpl) ToModel(entity *complaint.Message) (*models.MessageModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MessageModel{
		ID:          entity.ID(),
		ComplaintID: entity.ComplaintID(),
		SenderID:    entity.SenderID(),
		Content:     entity.Content(),
		Read:        entity.Read(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *MessageMapperImpl) ToEntities(messageModels []*models.MessageModel) ([]*complaint.Message, error) {
	entities := make([]*complaint.Message, 0, len(messageModels))
	for _, model := range messageModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
