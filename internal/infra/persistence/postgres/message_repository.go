// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create appends a message to its conversation's log.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID

	return nil
}

// FindByConversation returns one page of the conversation's messages, newest
// first. Page numbering starts at zero.
func (repo *messageRepository) FindByConversation(ctx context.Context, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at DESC").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// CountUnread counts messages in the conversation not sent by the user and
// not yet read.
func (repo *messageRepository) CountUnread(ctx context.Context, conversationID, userID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return int(count), nil
}

// MarkRead flips is_read for every message in the conversation not sent by
// the user. Idempotent: already-read messages are untouched.
func (repo *messageRepository) MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark messages as read")
	}

	return nil
}

// FindLast returns the most recent message of the conversation.
func (repo *messageRepository) FindLast(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at DESC").
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find last message")
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		SentAt:         data.SentAt,
		IsRead:         data.IsRead,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		SentAt:         data.SentAt,
		IsRead:         data.IsRead,
	}
}
