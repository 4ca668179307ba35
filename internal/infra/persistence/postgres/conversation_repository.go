// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// Create persists a new conversation.
func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		// The unique index on pair_key is the backstop against two
		// concurrent requests between the same pair.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConversation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	// Update the entity with generated values
	conversation.ID = conversationM.ID
	conversation.CreatedAt = conversationM.CreatedAt

	return nil
}

// FindByID retrieves a conversation by its unique ID.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// FindBetweenUsers retrieves the conversation between the unordered pair.
func (repo *conversationRepository) FindBetweenUsers(ctx context.Context, a, b uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("pair_key = ?", entity.PairKey(a, b)).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation between users")
	}

	return toConversationDomain(&conversationM), nil
}

// UpdateStatus transitions the conversation to the given status. Accepting a
// request also clears the introductory message, which only ever accompanies
// a pending request.
func (repo *conversationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConversationStatus) error {
	updates := map[string]any{"status": string(status)}
	if status != entity.ConversationPending {
		updates["introductory_message"] = ""
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update conversation status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// TouchLastMessage refreshes the conversation's last message timestamp.
func (repo *conversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Update("last_message_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last message timestamp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// FindAcceptedByUser returns the user's ACCEPTED conversations, most recent
// message first.
func (repo *conversationRepository) FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return repo.findByStatus(ctx,
		"(initiator_id = ? OR recipient_id = ?) AND status = ?",
		[]any{userID, userID, string(entity.ConversationAccepted)},
		"last_message_at DESC",
	)
}

// FindPendingByRecipient returns PENDING conversations addressed to the user.
func (repo *conversationRepository) FindPendingByRecipient(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return repo.findByStatus(ctx,
		"recipient_id = ? AND status = ?",
		[]any{userID, string(entity.ConversationPending)},
		"created_at DESC",
	)
}

// FindPendingByInitiator returns PENDING conversations started by the user.
func (repo *conversationRepository) FindPendingByInitiator(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	return repo.findByStatus(ctx,
		"initiator_id = ? AND status = ?",
		[]any{userID, string(entity.ConversationPending)},
		"created_at DESC",
	)
}

func (repo *conversationRepository) findByStatus(ctx context.Context, condition string, args []any, order string) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where(condition, args...).
		Order(order).
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// --- Mapper Functions ---

// toConversationDomain converts a GORM ConversationModel to a domain Conversation entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:                  data.ID,
		InitiatorID:         data.InitiatorID,
		RecipientID:         data.RecipientID,
		Status:              entity.ConversationStatus(data.Status),
		IntroductoryMessage: data.IntroductoryMessage,
		CreatedAt:           data.CreatedAt,
		LastMessageAt:       data.LastMessageAt,
	}
}

// fromConversationDomain converts a domain Conversation entity to a GORM ConversationModel.
func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:                  data.ID,
		PairKey:             entity.PairKey(data.InitiatorID, data.RecipientID),
		InitiatorID:         data.InitiatorID,
		RecipientID:         data.RecipientID,
		Status:              string(data.Status),
		IntroductoryMessage: data.IntroductoryMessage,
		CreatedAt:           data.CreatedAt,
		LastMessageAt:       data.LastMessageAt,
	}
}
