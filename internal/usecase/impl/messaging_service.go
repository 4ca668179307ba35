package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shelfswap/config"
	deliverycontext "shelfswap/internal/delivery/context"
	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/domain/service"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackMaxContentLength = 2000
	fallbackMessagePageSize  = 50
	fallbackMaxPageSize      = 200
)

// messagingService implements the MessagingUsecase interface: the
// conversation state machine, the message log behind it and the real-time
// notification hand-off.
type messagingService struct {
	txManager        repository.TransactionManager
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
	publisher        service.MessagePublisher
	maxContentLength int
	defaultPageSize  int
	maxPageSize      int
	logger           *slog.Logger
}

// MessagingServiceParams holds dependencies for MessagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	UserRepo         repository.UserRepository
	Publisher        service.MessagePublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	maxContentLength := fallbackMaxContentLength
	defaultPageSize := fallbackMessagePageSize
	maxPageSize := fallbackMaxPageSize
	if params.Config != nil && params.Config.Messaging != nil {
		if params.Config.Messaging.MaxContentLength > 0 {
			maxContentLength = params.Config.Messaging.MaxContentLength
		}
		if params.Config.Messaging.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Messaging.DefaultPageSize
		}
		if params.Config.Messaging.MaxPageSize > 0 {
			maxPageSize = params.Config.Messaging.MaxPageSize
		}
	}

	return &messagingService{
		txManager:        params.TxManager,
		conversationRepo: params.ConversationRepo,
		messageRepo:      params.MessageRepo,
		userRepo:         params.UserRepo,
		publisher:        params.Publisher,
		maxContentLength: maxContentLength,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      maxPageSize,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartConversation opens a conversation with another user. A mutual book
// match between the pair bypasses the request stage: the conversation starts
// ACCEPTED and the message is stored as the first chat message. Without a
// match it starts PENDING and the message is held as the introduction.
func (srv *messagingService) StartConversation(ctx context.Context, input usecase.StartConversationInput) (*usecase.ConversationOutput, error) {
	if input.InitiatorID == input.RecipientID {
		return nil, domainerrors.ErrSelfConversation
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("initial message is required")
	}
	if err := srv.checkContentLength(message); err != nil {
		return nil, err
	}

	recipient, err := srv.userRepo.FindByID(ctx, input.RecipientID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient")
	}

	var (
		conversation *entity.Conversation
		firstMessage *entity.Message
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conversationRepo := repoFactory.NewConversationRepository()
		shelfRepo := repoFactory.NewShelfRepository()
		messageRepo := repoFactory.NewMessageRepository()

		// The pair is unordered, so the lookup finds the conversation no
		// matter which side opened it.
		_, err := conversationRepo.FindBetweenUsers(ctx, input.InitiatorID, input.RecipientID)
		if err == nil {
			return domainerrors.ErrConversationExists
		}
		if !errors.Is(err, repository.ErrConversationNotFound) {
			return errors.Wrap(err, "failed to check for existing conversation")
		}

		mutual, err := shelfRepo.HasMutualBooks(ctx, input.InitiatorID, input.RecipientID)
		if err != nil {
			return errors.Wrap(err, "failed to check mutual books")
		}

		now := time.Now().UTC()
		conversation = &entity.Conversation{
			InitiatorID:   input.InitiatorID,
			RecipientID:   input.RecipientID,
			CreatedAt:     now,
			LastMessageAt: now,
		}
		if mutual {
			conversation.Status = entity.ConversationAccepted
		} else {
			conversation.Status = entity.ConversationPending
			conversation.IntroductoryMessage = message
		}

		if err := conversationRepo.Create(ctx, conversation); err != nil {
			// Unique pair_key backstop for a concurrent start from the
			// other side.
			if errors.Is(err, repository.ErrDuplicateConversation) {
				return domainerrors.ErrConversationExists
			}

			return errors.Wrap(err, "failed to create conversation")
		}

		if mutual {
			firstMessage = &entity.Message{
				ConversationID: conversation.ID,
				SenderID:       input.InitiatorID,
				Content:        message,
				SentAt:         now,
			}
			if err := messageRepo.Create(ctx, firstMessage); err != nil {
				return errors.Wrap(err, "failed to store first message")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Conversation started",
		slog.Any("conversationID", conversation.ID),
		slog.String("status", string(conversation.Status)),
	)

	if firstMessage != nil {
		srv.notifyParticipants(ctx, conversation, firstMessage)
	}

	return &usecase.ConversationOutput{
		ID:                  conversation.ID,
		Status:              conversation.Status,
		OtherUser:           recipient,
		IntroductoryMessage: conversation.IntroductoryMessage,
		LastMessage:         firstMessage,
		CreatedAt:           conversation.CreatedAt,
		LastMessageAt:       conversation.LastMessageAt,
	}, nil
}

// AcceptRequest moves a PENDING conversation to ACCEPTED. Recipient only.
func (srv *messagingService) AcceptRequest(ctx context.Context, userID, conversationID uuid.UUID) (*usecase.ConversationOutput, error) {
	conversation, err := srv.resolveRequest(ctx, userID, conversationID, entity.ConversationAccepted)
	if err != nil {
		return nil, err
	}

	return srv.buildConversationOutput(ctx, conversation, userID)
}

// RejectRequest moves a PENDING conversation to REJECTED. Recipient only.
func (srv *messagingService) RejectRequest(ctx context.Context, userID, conversationID uuid.UUID) error {
	_, err := srv.resolveRequest(ctx, userID, conversationID, entity.ConversationRejected)

	return err
}

// resolveRequest runs the PENDING -> terminal transition for the recipient
// inside one transaction, so two concurrent resolutions cannot both pass the
// state check.
func (srv *messagingService) resolveRequest(ctx context.Context, userID, conversationID uuid.UUID, target entity.ConversationStatus) (*entity.Conversation, error) {
	var conversation *entity.Conversation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conversationRepo := repoFactory.NewConversationRepository()

		found, err := conversationRepo.FindByID(ctx, conversationID)
		if err != nil {
			if errors.Is(err, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound
			}

			return errors.Wrap(err, "failed to find conversation")
		}

		if found.RecipientID != userID {
			return domainerrors.ErrNotRecipient
		}
		if found.Status != entity.ConversationPending {
			return domainerrors.ErrRequestNotPending
		}

		if err := conversationRepo.UpdateStatus(ctx, found.ID, target); err != nil {
			return errors.Wrap(err, "failed to update conversation status")
		}

		found.Status = target
		found.IntroductoryMessage = ""
		conversation = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Message request resolved",
		slog.Any("conversationID", conversationID),
		slog.String("status", string(target)),
	)

	return conversation, nil
}

// SendMessage appends a message to an ACCEPTED conversation the user
// participates in. The message and the conversation's lastMessageAt commit
// together; the live notification goes out only after the commit and its
// failure never fails the send.
func (srv *messagingService) SendMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message content is required")
	}
	if err := srv.checkContentLength(content); err != nil {
		return nil, err
	}

	var (
		conversation *entity.Conversation
		message      *entity.Message
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conversationRepo := repoFactory.NewConversationRepository()
		messageRepo := repoFactory.NewMessageRepository()

		found, err := conversationRepo.FindByID(ctx, conversationID)
		if err != nil {
			if errors.Is(err, repository.ErrConversationNotFound) {
				return domainerrors.ErrConversationNotFound
			}

			return errors.Wrap(err, "failed to find conversation")
		}

		if !found.HasParticipant(userID) {
			return domainerrors.ErrNotParticipant
		}
		if found.Status != entity.ConversationAccepted {
			return domainerrors.ErrConversationNotAccepted
		}

		now := time.Now().UTC()
		message = &entity.Message{
			ConversationID: found.ID,
			SenderID:       userID,
			Content:        content,
			SentAt:         now,
		}
		if err := messageRepo.Create(ctx, message); err != nil {
			return errors.Wrap(err, "failed to store message")
		}

		if err := conversationRepo.TouchLastMessage(ctx, found.ID, now); err != nil {
			return errors.Wrap(err, "failed to touch conversation")
		}

		found.LastMessageAt = now
		conversation = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.notifyParticipants(ctx, conversation, message)

	return message, nil
}

// GetConversations lists the user's ACCEPTED conversations, most recent
// message first.
func (srv *messagingService) GetConversations(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationOutput, error) {
	conversations, err := srv.conversationRepo.FindAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted conversations")
	}

	return srv.buildConversationOutputs(ctx, conversations, userID)
}

// CheckConversation returns the ACCEPTED conversation between the user and
// another user, whichever direction it was opened in. Pending or rejected
// conversations are reported as not found.
func (srv *messagingService) CheckConversation(ctx context.Context, userID, otherID uuid.UUID) (*usecase.ConversationOutput, error) {
	conversation, err := srv.conversationRepo.FindBetweenUsers(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation between users")
	}

	if conversation.Status != entity.ConversationAccepted {
		return nil, domainerrors.ErrConversationNotFound
	}

	return srv.buildConversationOutput(ctx, conversation, userID)
}

// GetPendingReceived lists PENDING requests addressed to the user.
func (srv *messagingService) GetPendingReceived(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationOutput, error) {
	conversations, err := srv.conversationRepo.FindPendingByRecipient(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find received requests")
	}

	return srv.buildConversationOutputs(ctx, conversations, userID)
}

// GetPendingSent lists PENDING requests the user has started.
func (srv *messagingService) GetPendingSent(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationOutput, error) {
	conversations, err := srv.conversationRepo.FindPendingByInitiator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sent requests")
	}

	return srv.buildConversationOutputs(ctx, conversations, userID)
}

// GetMessages returns one newest-first page of the conversation's messages.
func (srv *messagingService) GetMessages(ctx context.Context, userID, conversationID uuid.UUID, page, pageSize int) ([]*entity.Message, error) {
	if _, err := srv.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	messages, err := srv.messageRepo.FindByConversation(ctx, conversationID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages")
	}

	return messages, nil
}

// MarkConversationRead marks every message from the counterpart as read.
func (srv *messagingService) MarkConversationRead(ctx context.Context, userID, conversationID uuid.UUID) error {
	if _, err := srv.requireParticipant(ctx, userID, conversationID); err != nil {
		return err
	}

	if err := srv.messageRepo.MarkRead(ctx, conversationID, userID); err != nil {
		return errors.Wrap(err, "failed to mark conversation as read")
	}

	return nil
}

// --- helpers ---

func (srv *messagingService) checkContentLength(content string) error {
	if len(content) > srv.maxContentLength {
		return domainerrors.ErrMessageTooLong
	}

	return nil
}

func (srv *messagingService) requireParticipant(ctx context.Context, userID, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if !conversation.HasParticipant(userID) {
		return nil, domainerrors.ErrNotParticipant
	}

	return conversation, nil
}

func (srv *messagingService) buildConversationOutputs(ctx context.Context, conversations []*entity.Conversation, userID uuid.UUID) ([]*usecase.ConversationOutput, error) {
	outputs := make([]*usecase.ConversationOutput, 0, len(conversations))
	for _, conversation := range conversations {
		output, err := srv.buildConversationOutput(ctx, conversation, userID)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	return outputs, nil
}

// buildConversationOutput assembles one participant's view: the counterpart
// profile, the latest message and the unread counter.
func (srv *messagingService) buildConversationOutput(ctx context.Context, conversation *entity.Conversation, userID uuid.UUID) (*usecase.ConversationOutput, error) {
	other, err := srv.userRepo.FindByID(ctx, conversation.OtherParticipant(userID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conversation counterpart")
	}

	output := &usecase.ConversationOutput{
		ID:                  conversation.ID,
		Status:              conversation.Status,
		OtherUser:           other,
		IntroductoryMessage: conversation.IntroductoryMessage,
		CreatedAt:           conversation.CreatedAt,
		LastMessageAt:       conversation.LastMessageAt,
	}

	if conversation.Status != entity.ConversationAccepted {
		return output, nil
	}

	last, err := srv.messageRepo.FindLast(ctx, conversation.ID)
	if err != nil && !errors.Is(err, repository.ErrMessageNotFound) {
		return nil, errors.Wrap(err, "failed to find last message")
	}
	output.LastMessage = last

	unread, err := srv.messageRepo.CountUnread(ctx, conversation.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}
	output.UnreadCount = unread

	return output, nil
}

// notifyParticipants pushes the message event to both participants' live
// sessions. The message is already durable, so a publish failure is logged
// and dropped.
func (srv *messagingService) notifyParticipants(ctx context.Context, conversation *entity.Conversation, message *entity.Message) {
	event := &service.MessageEvent{
		MessageID:      message.ID.String(),
		ConversationID: conversation.ID.String(),
		SenderID:       message.SenderID.String(),
		Content:        message.Content,
		SentAt:         message.SentAt,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	}
	topics := []string{
		service.UserTopic(conversation.InitiatorID),
		service.UserTopic(conversation.RecipientID),
	}

	// Detach from the request's cancellation; the send already succeeded.
	publishCtx := context.WithoutCancel(ctx)
	if err := srv.publisher.PublishMessageEvent(publishCtx, event, topics); err != nil {
		srv.log(ctx).Warn("Failed to publish message event",
			slog.Any("messageID", message.ID),
			slog.Any("error", err),
		)
	}
}
