package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"openfare/internal/domain/complaint"
	"openfare/internal/infrastructure/persistence/mappers"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/authorization"
	"openfare/internal/shared/db"
	"openfare/internal/shared/logger"
)

// MessageRepository implements the complaint message repository interface
// backed by gorm.
type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
	logger logger.Interface
}

func NewMessageRepository(db *gorm.DB, logger logger.Interface) complaint.MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
		logger: logger,
	}
}

func (r *MessageRepository) Save(ctx context.Context, m *complaint.Message) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map message entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create message", "complaint_id", m.ComplaintID(), "error", err)
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Message, error) {
	var messageModels []*models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		r.logger.Errorw("failed to list messages", "complaint_id", complaintID, "error", err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return r.mapper.ToEntities(messageModels)
}

// FirstAdminReplyAt returns when the first ADMIN message landed on the
// complaint, or nil when no admin has replied yet.
func (r *MessageRepository) FirstAdminReplyAt(ctx context.Context, complaintID uint) (*time.Time, error) {
	var model models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.complaint_id = ? AND users.role = ?", complaintID, string(authorization.RoleAdmin)).
		Order("messages.created_at ASC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to look up first admin reply", "complaint_id", complaintID, "error", err)
		return nil, fmt.Errorf("failed to look up first admin reply: %w", err)
	}

	repliedAt := model.CreatedAt
	return &repliedAt, nil
}

// MarkRead flags every message on the complaint not sent by the reader.
func (r *MessageRepository) MarkRead(ctx context.Context, complaintID uint, readerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("complaint_id = ? AND sender_id <> ?", complaintID, readerID).
		Update("read", true).Error; err != nil {
		r.logger.Errorw("failed to mark messages read", "complaint_id", complaintID, "error", err)
		return fmt.Errorf("failed to mark messages read: %w", err)
	}
	return nil
}
