package repository

import (
	"context"
	"time"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for conversation persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrDuplicateConversation is returned when a conversation already exists for the pair.
	ErrDuplicateConversation = errors.New("conversation already exists for this pair")
)

// ConversationRepository defines the interface for conversation persistence.
// The unordered participant pair is unique; implementations enforce this
// through the canonical pair key (entity.PairKey).
type ConversationRepository interface {
	// Create persists a new conversation. The unique index on the pair key
	// is the race backstop; a duplicate insert surfaces as
	// ErrDuplicateConversation.
	Create(ctx context.Context, conversation *entity.Conversation) error

	// FindByID retrieves a conversation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindBetweenUsers retrieves the conversation between the unordered
	// pair, regardless of who initiated it.
	FindBetweenUsers(ctx context.Context, a, b uuid.UUID) (*entity.Conversation, error)

	// UpdateStatus transitions the conversation to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConversationStatus) error

	// TouchLastMessage refreshes the conversation's lastMessageAt timestamp.
	TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error

	// FindAcceptedByUser returns the user's ACCEPTED conversations,
	// most recent message first.
	FindAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// FindPendingByRecipient returns PENDING conversations addressed to the
	// user, newest first.
	FindPendingByRecipient(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// FindPendingByInitiator returns PENDING conversations started by the
	// user, newest first.
	FindPendingByInitiator(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
}
