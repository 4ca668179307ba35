// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationStatus is the lifecycle state of a conversation. Transitions
// are one-directional: PENDING may move to ACCEPTED or REJECTED, and both of
// those are terminal.
type ConversationStatus string

const (
	ConversationPending  ConversationStatus = "PENDING"
	ConversationAccepted ConversationStatus = "ACCEPTED"
	ConversationRejected ConversationStatus = "REJECTED"
)

// Conversation is the relationship between two users that gates messaging.
// At most one conversation exists per unordered participant pair.
type Conversation struct {
	ID          uuid.UUID          `json:"id"`
	InitiatorID uuid.UUID          `json:"initiatorId"`
	RecipientID uuid.UUID          `json:"recipientId"`
	Status      ConversationStatus `json:"status"`

	// IntroductoryMessage is set only while the conversation is PENDING and
	// only when no mutual book match existed at creation time.
	IntroductoryMessage string `json:"introductoryMessage,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

// PairKey builds the canonical identifier of an unordered participant pair:
// the lexicographically smaller UUID first. Every write and every
// between-users lookup goes through this key, which backs the uniqueness
// constraint on the pair.
func PairKey(a, b uuid.UUID) string {
	first, second := a.String(), b.String()
	if second < first {
		first, second = second, first
	}

	return first + ":" + second
}

// HasParticipant reports whether the given user is one of the two parties.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.InitiatorID == userID || c.RecipientID == userID
}

// OtherParticipant returns the counterpart of the given participant.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.InitiatorID == userID {
		return c.RecipientID
	}

	return c.InitiatorID
}
