package repository

import (
	"context"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message lookup finds nothing.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for the append-only message log
// and its read/unread bookkeeping.
type MessageRepository interface {
	// Create appends a message to its conversation's log.
	Create(ctx context.Context, message *entity.Message) error

	// FindByConversation returns one page of the conversation's messages,
	// newest first. Page numbering starts at zero.
	FindByConversation(ctx context.Context, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error)

	// CountUnread counts messages in the conversation not sent by the user
	// and not yet read.
	CountUnread(ctx context.Context, conversationID, userID uuid.UUID) (int, error)

	// MarkRead flips isRead to true for every message in the conversation
	// not sent by the user. Idempotent.
	MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error

	// FindLast returns the most recent message of the conversation, or
	// ErrMessageNotFound when the log is empty.
	FindLast(ctx context.Context, conversationID uuid.UUID) (*entity.Message, error)
}
