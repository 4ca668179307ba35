package usecase

import (
	"context"
	"time"

	"shelfswap/internal/domain/entity"

	"github.com/google/uuid"
)

// StartConversationInput defines the data required to open a conversation
// with another user. Message is the first chat message when the pair has a
// direct book match, otherwise the introductory text shown with the request.
type StartConversationInput struct {
	InitiatorID uuid.UUID
	RecipientID uuid.UUID
	Message     string
}

// ConversationOutput is the delivery-facing view of a conversation from one
// participant's perspective.
type ConversationOutput struct {
	ID                  uuid.UUID
	Status              entity.ConversationStatus
	OtherUser           *entity.User
	IntroductoryMessage string
	LastMessage         *entity.Message
	UnreadCount         int
	CreatedAt           time.Time
	LastMessageAt       time.Time
}

// MessagingUsecase defines the interface for the conversation state machine
// and the message log behind it.
type MessagingUsecase interface {
	// StartConversation opens a conversation with another user. With a
	// mutual book match it starts ACCEPTED and the message becomes the
	// first chat message; otherwise it starts PENDING with the message
	// held as the introduction.
	StartConversation(ctx context.Context, input StartConversationInput) (*ConversationOutput, error)

	// AcceptRequest moves a PENDING conversation to ACCEPTED. Recipient only.
	AcceptRequest(ctx context.Context, userID, conversationID uuid.UUID) (*ConversationOutput, error)

	// RejectRequest moves a PENDING conversation to REJECTED. Recipient only.
	RejectRequest(ctx context.Context, userID, conversationID uuid.UUID) error

	// SendMessage appends a message to an ACCEPTED conversation the user
	// participates in, then notifies both participants' live sessions.
	SendMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*entity.Message, error)

	// GetConversations lists the user's ACCEPTED conversations, most
	// recent message first.
	GetConversations(ctx context.Context, userID uuid.UUID) ([]*ConversationOutput, error)

	// CheckConversation returns the ACCEPTED conversation between the user
	// and another user, whichever direction it was opened in. Pending or
	// rejected conversations read as not found.
	CheckConversation(ctx context.Context, userID, otherID uuid.UUID) (*ConversationOutput, error)

	// GetPendingReceived lists PENDING requests addressed to the user.
	GetPendingReceived(ctx context.Context, userID uuid.UUID) ([]*ConversationOutput, error)

	// GetPendingSent lists PENDING requests the user has started.
	GetPendingSent(ctx context.Context, userID uuid.UUID) ([]*ConversationOutput, error)

	// GetMessages returns one newest-first page of the conversation's
	// messages. Participants only.
	GetMessages(ctx context.Context, userID, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error)

	// MarkConversationRead marks every message from the counterpart as
	// read. Idempotent.
	MarkConversationRead(ctx context.Context, userID, conversationID uuid.UUID) error
}
