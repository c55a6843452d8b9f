package mappers

import (
	"gorm.io/datatypes"

	"openfare/internal/domain/ticket"
	"openfare/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.PNR,
		model.OperatorID,
		model.UserID,
		ticket.TicketStatus(model.Status),
		model.Amount,
		model.RefundAmount,
		model.RefundDeadline,
		[]byte(model.CancellationPolicy),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:                 entity.ID(),
		PNR:                entity.PNR(),
		OperatorID:         entity.OperatorID(),
		UserID:             entity.UserID(),
		Status:             string(entity.Status()),
		Amount:             entity.Amount(),
		RefundAmount:       entity.RefundAmount(),
		RefundDeadline:     entity.RefundDeadline(),
		CancellationPolicy: datatypes.JSON(entity.PolicyRaw()),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// RefundMapper handles the conversion between domain entities and persistence models
type RefundMapper interface {
	ToEntity(model *models.RefundModel) (*ticket.Refund, error)
	ToModel(entity *ticket.Refund) (*models.RefundModel, error)
	ToEntities(models []*models.RefundModel) ([]*ticket.Refund, error)
}

type RefundMapperImpl struct{}

func NewRefundMapper() RefundMapper {
	return &RefundMapperImpl{}
}

func (m *RefundMapperImpl) ToEntity(model *models.RefundModel) (*ticket.Refund, error) {
	if model == nil {
		return nil, nil
	}

	return ticket.ReconstructRefund(
		model.ID,
		model.TicketID,
		ticket.RefundStatus(model.Status),
		model.Amount,
		model.ProcessedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *RefundMapperImpl) ToModel(entity *ticket.Refund) (*models.RefundModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RefundModel{
		ID:          entity.ID(),
		TicketID:    entity.TicketID(),
		Status:      string(entity.Status()),
		Amount:      entity.Amount(),
		ProcessedAt: entity.ProcessedAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *RefundMapperImpl) ToEntities(refundModels []*models.RefundModel) ([]*ticket.Refund, error) {
	entities := make([]*ticket.Refund, 0, len(refundModels))
	for _, model := range refundModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
