package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"openfare/internal/domain/ticket"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/db"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// TicketRepository implements the ticket repository interface backed by gorm.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return err
		}
		r.logger.Errorw("failed to create ticket", "pnr", t.PNR(), "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update ticket", "id", t.ID(), "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) GetByPNR(ctx context.Context, pnr string) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Where("pnr = ?", pnr).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		r.logger.Errorw("failed to get ticket by PNR", "pnr", pnr, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("pnr = ?", pnr).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check ticket existence", "pnr", pnr, "error", err)
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) GetUserTickets(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list user tickets", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list user tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}
