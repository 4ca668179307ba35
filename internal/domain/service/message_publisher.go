package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageEvent is the payload pushed to both participants' live sessions
// when a new message is persisted.
type MessageEvent struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sent_at"`
	RequestID      string    `json:"request_id,omitempty"`
}

// UserTopic names the per-user delivery topic for a participant.
func UserTopic(userID uuid.UUID) string {
	return "user." + userID.String()
}

// MessagePublisher is the Pub/Sub Channel seam. Delivery is best-effort and
// fire-and-forget relative to the message-send transaction: the message is
// durable before publishing is attempted, and a publish failure never fails
// the send.
type MessagePublisher interface {
	// PublishMessageEvent fans the event out to the named per-user topics.
	PublishMessageEvent(ctx context.Context, event *MessageEvent, topics []string) error

	// Close releases the underlying channel resources.
	Close() error
}
