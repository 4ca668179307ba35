package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/domain/service"
	mockRepo "shelfswap/internal/mocks/repository"
	mockSvc "shelfswap/internal/mocks/service"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messagingServiceFixtures holds all test dependencies for messaging service tests.
type messagingServiceFixtures struct {
	service          usecase.MessagingUsecase
	txManager        *mockRepo.MockTransactionManager
	conversationRepo *mockRepo.MockConversationRepository
	messageRepo      *mockRepo.MockMessageRepository
	userRepo         *mockRepo.MockUserRepository
	publisher        *mockSvc.MockMessagePublisher
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockMessagePublisher(t)

	service := NewMessagingService(MessagingServiceParams{
		TxManager:        txManager,
		ConversationRepo: conversationRepo,
		MessageRepo:      messageRepo,
		UserRepo:         userRepo,
		Publisher:        publisher,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return messagingServiceFixtures{
		service:          service,
		txManager:        txManager,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

func TestMessagingService_StartConversation_Self(t *testing.T) {
	fx := createTestMessagingService(t)

	userID := uuid.New()
	output, err := fx.service.StartConversation(context.Background(), usecase.StartConversationInput{
		InitiatorID: userID,
		RecipientID: userID,
		Message:     "hi me",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfConversation))
}

func TestMessagingService_StartConversation_MessageTooLong(t *testing.T) {
	fx := createTestMessagingService(t)

	output, err := fx.service.StartConversation(context.Background(), usecase.StartConversationInput{
		InitiatorID: uuid.New(),
		RecipientID: uuid.New(),
		Message:     strings.Repeat("a", 2001),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageTooLong))
}

func TestMessagingService_StartConversation_BlankMessage(t *testing.T) {
	fx := createTestMessagingService(t)

	output, err := fx.service.StartConversation(context.Background(), usecase.StartConversationInput{
		InitiatorID: uuid.New(),
		RecipientID: uuid.New(),
		Message:     "   ",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "FindByID")
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestMessagingService_StartConversation_UnknownRecipient(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, recipientID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.StartConversation(ctx, usecase.StartConversationInput{
		InitiatorID: uuid.New(),
		RecipientID: recipientID,
		Message:     "hello",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessagingService_StartConversation_MutualMatchAutoAccepts(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	recipient := &entity.User{ID: uuid.New(), FirstName: "Bob"}
	conversationID := uuid.New()
	messageID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindBetweenUsers(ctx, initiatorID, recipient.ID).
				Return(nil, repository.ErrConversationNotFound)

			mockShelfRepo.EXPECT().
				HasMutualBooks(ctx, initiatorID, recipient.ID).
				Return(true, nil)

			mockConvRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Conversation")).
				Run(func(ctx context.Context, conversation *entity.Conversation) {
					assert.Equal(t, entity.ConversationAccepted, conversation.Status)
					assert.Empty(t, conversation.IntroductoryMessage)
					conversation.ID = conversationID
				}).
				Return(nil)

			mockMsgRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					assert.Equal(t, conversationID, message.ConversationID)
					assert.Equal(t, initiatorID, message.SenderID)
					assert.Equal(t, "want to trade?", message.Content)
					message.ID = messageID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMessageEvent(mock.Anything, mock.AnythingOfType("*service.MessageEvent"), mock.AnythingOfType("[]string")).
		Run(func(ctx context.Context, event *service.MessageEvent, topics []string) {
			assert.Equal(t, messageID.String(), event.MessageID)
			assert.Contains(t, topics, service.UserTopic(initiatorID))
			assert.Contains(t, topics, service.UserTopic(recipient.ID))
		}).
		Return(nil)

	output, err := fx.service.StartConversation(ctx, usecase.StartConversationInput{
		InitiatorID: initiatorID,
		RecipientID: recipient.ID,
		Message:     "want to trade?",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConversationAccepted, output.Status)
	assert.Equal(t, recipient, output.OtherUser)
	assert.Empty(t, output.IntroductoryMessage)
	require.NotNil(t, output.LastMessage)
	assert.Equal(t, "want to trade?", output.LastMessage.Content)
}

func TestMessagingService_StartConversation_NoMatchStaysPending(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	recipient := &entity.User{ID: uuid.New(), FirstName: "Bob"}

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindBetweenUsers(ctx, initiatorID, recipient.ID).
				Return(nil, repository.ErrConversationNotFound)

			mockShelfRepo.EXPECT().
				HasMutualBooks(ctx, initiatorID, recipient.ID).
				Return(false, nil)

			mockConvRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Conversation")).
				Run(func(ctx context.Context, conversation *entity.Conversation) {
					assert.Equal(t, entity.ConversationPending, conversation.Status)
					assert.Equal(t, "may I borrow?", conversation.IntroductoryMessage)
					conversation.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.StartConversation(ctx, usecase.StartConversationInput{
		InitiatorID: initiatorID,
		RecipientID: recipient.ID,
		Message:     "may I borrow?",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConversationPending, output.Status)
	assert.Equal(t, "may I borrow?", output.IntroductoryMessage)
	assert.Nil(t, output.LastMessage)
	// Nothing was stored in the message log, so nothing is published.
	fx.publisher.AssertNotCalled(t, "PublishMessageEvent")
}

func TestMessagingService_StartConversation_AlreadyExists(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	recipient := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			// The lookup is pair-based, so a conversation opened by the other
			// side blocks this one too.
			mockConvRepo.EXPECT().
				FindBetweenUsers(ctx, initiatorID, recipient.ID).
				Return(&entity.Conversation{ID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrConversationExists)

	output, err := fx.service.StartConversation(ctx, usecase.StartConversationInput{
		InitiatorID: initiatorID,
		RecipientID: recipient.ID,
		Message:     "hello again",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationExists))
}

func TestMessagingService_StartConversation_ConcurrentCreateBackstop(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	initiatorID := uuid.New()
	recipient := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, recipient.ID).Return(recipient, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindBetweenUsers(ctx, initiatorID, recipient.ID).
				Return(nil, repository.ErrConversationNotFound)
			mockShelfRepo.EXPECT().
				HasMutualBooks(ctx, initiatorID, recipient.ID).
				Return(false, nil)

			// The other side committed first; the pair key uniqueness wins.
			mockConvRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Conversation")).
				Return(repository.ErrDuplicateConversation)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrConversationExists)

	output, err := fx.service.StartConversation(ctx, usecase.StartConversationInput{
		InitiatorID: initiatorID,
		RecipientID: recipient.ID,
		Message:     "hello",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationExists))
}

func TestMessagingService_AcceptRequest_Success(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	initiator := &entity.User{ID: uuid.New(), FirstName: "Alice"}
	recipientID := uuid.New()
	conversationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:                  conversationID,
					InitiatorID:         initiator.ID,
					RecipientID:         recipientID,
					Status:              entity.ConversationPending,
					IntroductoryMessage: "may I borrow?",
				}, nil)

			mockConvRepo.EXPECT().
				UpdateStatus(ctx, conversationID, entity.ConversationAccepted).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.userRepo.EXPECT().FindByID(ctx, initiator.ID).Return(initiator, nil)
	fx.messageRepo.EXPECT().
		FindLast(ctx, conversationID).
		Return(nil, repository.ErrMessageNotFound)
	fx.messageRepo.EXPECT().CountUnread(ctx, conversationID, recipientID).Return(0, nil)

	output, err := fx.service.AcceptRequest(ctx, recipientID, conversationID)

	require.NoError(t, err)
	assert.Equal(t, entity.ConversationAccepted, output.Status)
	assert.Equal(t, initiator, output.OtherUser)
	// The introduction does not survive acceptance.
	assert.Empty(t, output.IntroductoryMessage)
	assert.Nil(t, output.LastMessage)
	assert.Zero(t, output.UnreadCount)
}

func TestMessagingService_AcceptRequest_NotRecipient(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()
	initiatorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: initiatorID,
					RecipientID: uuid.New(),
					Status:      entity.ConversationPending,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotRecipient)

	// The initiator may not accept their own request.
	output, err := fx.service.AcceptRequest(ctx, initiatorID, conversationID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRecipient))
}

func TestMessagingService_AcceptRequest_NotPending(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()
	recipientID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: uuid.New(),
					RecipientID: recipientID,
					Status:      entity.ConversationRejected,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrRequestNotPending)

	output, err := fx.service.AcceptRequest(ctx, recipientID, conversationID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotPending))
}

func TestMessagingService_RejectRequest_Success(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()
	recipientID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: uuid.New(),
					RecipientID: recipientID,
					Status:      entity.ConversationPending,
				}, nil)

			mockConvRepo.EXPECT().
				UpdateStatus(ctx, conversationID, entity.ConversationRejected).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RejectRequest(ctx, recipientID, conversationID)

	assert.NoError(t, err)
}

func TestMessagingService_SendMessage_Success(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	senderID := uuid.New()
	otherID := uuid.New()
	conversationID := uuid.New()
	messageID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: senderID,
					RecipientID: otherID,
					Status:      entity.ConversationAccepted,
				}, nil)

			mockMsgRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					assert.Equal(t, senderID, message.SenderID)
					assert.Equal(t, "deal, Saturday?", message.Content)
					message.ID = messageID
				}).
				Return(nil)

			mockConvRepo.EXPECT().
				TouchLastMessage(ctx, conversationID, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMessageEvent(mock.Anything, mock.AnythingOfType("*service.MessageEvent"), mock.AnythingOfType("[]string")).
		Run(func(ctx context.Context, event *service.MessageEvent, topics []string) {
			assert.Equal(t, messageID.String(), event.MessageID)
			assert.Equal(t, senderID.String(), event.SenderID)
			assert.Len(t, topics, 2)
		}).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, senderID, conversationID, "  deal, Saturday?  ")

	require.NoError(t, err)
	assert.Equal(t, messageID, message.ID)
	assert.Equal(t, "deal, Saturday?", message.Content)
}

func TestMessagingService_SendMessage_PublishFailureDoesNotFailSend(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: senderID,
					RecipientID: uuid.New(),
					Status:      entity.ConversationAccepted,
				}, nil)

			mockMsgRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					message.ID = uuid.New()
				}).
				Return(nil)

			mockConvRepo.EXPECT().
				TouchLastMessage(ctx, conversationID, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMessageEvent(mock.Anything, mock.AnythingOfType("*service.MessageEvent"), mock.AnythingOfType("[]string")).
		Return(errors.New("broker unavailable"))

	message, err := fx.service.SendMessage(ctx, senderID, conversationID, "still on?")

	// The message is durable before publishing is attempted.
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessagingService_SendMessage_EmptyContent(t *testing.T) {
	fx := createTestMessagingService(t)

	message, err := fx.service.SendMessage(context.Background(), uuid.New(), uuid.New(), "   ")

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessagingService_SendMessage_TooLong(t *testing.T) {
	fx := createTestMessagingService(t)

	message, err := fx.service.SendMessage(context.Background(), uuid.New(), uuid.New(), strings.Repeat("a", 2001))

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageTooLong))
}

func TestMessagingService_SendMessage_NotParticipant(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: uuid.New(),
					RecipientID: uuid.New(),
					Status:      entity.ConversationAccepted,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotParticipant)

	message, err := fx.service.SendMessage(ctx, uuid.New(), conversationID, "let me in")

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}

func TestMessagingService_SendMessage_NotAccepted(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	senderID := uuid.New()
	conversationID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConvRepo := mockRepo.NewMockConversationRepository(t)
			mockMsgRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().NewConversationRepository().Return(mockConvRepo)
			mockFactory.EXPECT().NewMessageRepository().Return(mockMsgRepo)

			mockConvRepo.EXPECT().
				FindByID(ctx, conversationID).
				Return(&entity.Conversation{
					ID:          conversationID,
					InitiatorID: senderID,
					RecipientID: uuid.New(),
					Status:      entity.ConversationPending,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrConversationNotAccepted)

	message, err := fx.service.SendMessage(ctx, senderID, conversationID, "too early")

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationNotAccepted))
}

func TestMessagingService_GetConversations_BuildsParticipantView(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	other := &entity.User{ID: uuid.New(), FirstName: "Bob"}
	conversationID := uuid.New()
	last := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       other.ID,
		Content:        "see you there",
		SentAt:         time.Now().UTC(),
	}

	fx.conversationRepo.EXPECT().
		FindAcceptedByUser(ctx, userID).
		Return([]*entity.Conversation{{
			ID:          conversationID,
			InitiatorID: userID,
			RecipientID: other.ID,
			Status:      entity.ConversationAccepted,
		}}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)
	fx.messageRepo.EXPECT().FindLast(ctx, conversationID).Return(last, nil)
	fx.messageRepo.EXPECT().CountUnread(ctx, conversationID, userID).Return(2, nil)

	outputs, err := fx.service.GetConversations(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, other, outputs[0].OtherUser)
	assert.Equal(t, last, outputs[0].LastMessage)
	assert.Equal(t, 2, outputs[0].UnreadCount)
}

func TestMessagingService_GetPendingReceived_SkipsMessageLookups(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	initiator := &entity.User{ID: uuid.New(), FirstName: "Alice"}

	fx.conversationRepo.EXPECT().
		FindPendingByRecipient(ctx, userID).
		Return([]*entity.Conversation{{
			ID:                  uuid.New(),
			InitiatorID:         initiator.ID,
			RecipientID:         userID,
			Status:              entity.ConversationPending,
			IntroductoryMessage: "may I borrow?",
		}}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, initiator.ID).Return(initiator, nil)

	outputs, err := fx.service.GetPendingReceived(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "may I borrow?", outputs[0].IntroductoryMessage)
	assert.Nil(t, outputs[0].LastMessage)
	// PENDING conversations have no message log to consult.
	fx.messageRepo.AssertNotCalled(t, "FindLast")
	fx.messageRepo.AssertNotCalled(t, "CountUnread")
}

func TestMessagingService_CheckConversation_NotFound(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindBetweenUsers(ctx, userID, otherID).
		Return(nil, repository.ErrConversationNotFound)

	output, err := fx.service.CheckConversation(ctx, userID, otherID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationNotFound))
}

func TestMessagingService_CheckConversation_PendingHidden(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindBetweenUsers(ctx, userID, otherID).
		Return(&entity.Conversation{
			ID:          uuid.New(),
			InitiatorID: otherID,
			RecipientID: userID,
			Status:      entity.ConversationPending,
		}, nil)

	output, err := fx.service.CheckConversation(ctx, userID, otherID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConversationNotFound))
	fx.userRepo.AssertNotCalled(t, "FindByID")
}

func TestMessagingService_GetMessages_DefaultsAndClampsPaging(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()
	conversation := &entity.Conversation{
		ID:          conversationID,
		InitiatorID: userID,
		RecipientID: uuid.New(),
		Status:      entity.ConversationAccepted,
	}

	fx.conversationRepo.EXPECT().FindByID(ctx, conversationID).Return(conversation, nil).Times(2)

	// A non-positive page size falls back to the default.
	fx.messageRepo.EXPECT().
		FindByConversation(ctx, conversationID, 0, 50).
		Return([]*entity.Message{}, nil)
	_, err := fx.service.GetMessages(ctx, userID, conversationID, -1, 0)
	require.NoError(t, err)

	// An oversized page size is clamped to the maximum.
	fx.messageRepo.EXPECT().
		FindByConversation(ctx, conversationID, 3, 200).
		Return([]*entity.Message{}, nil)
	_, err = fx.service.GetMessages(ctx, userID, conversationID, 3, 10000)
	require.NoError(t, err)
}

func TestMessagingService_GetMessages_NotParticipant(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversationID).
		Return(&entity.Conversation{
			ID:          conversationID,
			InitiatorID: uuid.New(),
			RecipientID: uuid.New(),
		}, nil)

	messages, err := fx.service.GetMessages(ctx, uuid.New(), conversationID, 0, 50)

	assert.Nil(t, messages)
	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}

func TestMessagingService_MarkConversationRead_Success(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversationID).
		Return(&entity.Conversation{
			ID:          conversationID,
			InitiatorID: uuid.New(),
			RecipientID: userID,
			Status:      entity.ConversationAccepted,
		}, nil)

	fx.messageRepo.EXPECT().MarkRead(ctx, conversationID, userID).Return(nil)

	err := fx.service.MarkConversationRead(ctx, userID, conversationID)

	assert.NoError(t, err)
}

func TestMessagingService_MarkConversationRead_NotParticipant(t *testing.T) {
	fx := createTestMessagingService(t)

	ctx := context.Background()
	conversationID := uuid.New()

	fx.conversationRepo.EXPECT().
		FindByID(ctx, conversationID).
		Return(&entity.Conversation{
			ID:          conversationID,
			InitiatorID: uuid.New(),
			RecipientID: uuid.New(),
		}, nil)

	err := fx.service.MarkConversationRead(ctx, uuid.New(), conversationID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotParticipant))
}
