// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a conversation's append-only log. Messages
// exist only for ACCEPTED conversations; IsRead flips false-to-true once,
// in bulk, when the counterpart marks the conversation read.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sentAt"`
	IsRead         bool      `json:"isRead"`
}
