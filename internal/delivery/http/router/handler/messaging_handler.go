package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shelfswap/internal/delivery/http/response"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessagingHandler holds dependencies for conversation and message handlers.
type MessagingHandler struct {
	uc     usecase.MessagingUsecase
	logger *slog.Logger
}

// NewMessagingHandler is the constructor for MessagingHandler, injected by Fx.
func NewMessagingHandler(uc usecase.MessagingUsecase, logger *slog.Logger) *MessagingHandler {
	return &MessagingHandler{
		uc:     uc,
		logger: logger,
	}
}

type startConversationRequest struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
	Message     string `json:"message" validate:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// StartConversation opens a conversation with another user.
func (h *MessagingHandler) StartConversation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipientId format")
	}

	output, err := h.uc.StartConversation(c.Request().Context(), usecase.StartConversationInput{
		InitiatorID: userID,
		RecipientID: recipientID,
		Message:     req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toConversationResponse(output), "Conversation started successfully")
}

// GetConversations lists the caller's accepted conversations.
func (h *MessagingHandler) GetConversations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	outputs, err := h.uc.GetConversations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConversationResponses(outputs), "Conversations retrieved successfully")
}

// CheckConversation returns the conversation between the caller and another
// user, whichever direction it was opened in.
func (h *MessagingHandler) CheckConversation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	otherID, err := parseUUIDParam(c, "otherId")
	if err != nil {
		return err
	}

	output, err := h.uc.CheckConversation(c.Request().Context(), userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConversationResponse(output), "Conversation retrieved successfully")
}

// GetPendingReceived lists pending requests addressed to the caller.
func (h *MessagingHandler) GetPendingReceived(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	outputs, err := h.uc.GetPendingReceived(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConversationResponses(outputs), "Received requests retrieved successfully")
}

// GetPendingSent lists pending requests the caller has started.
func (h *MessagingHandler) GetPendingSent(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	outputs, err := h.uc.GetPendingSent(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConversationResponses(outputs), "Sent requests retrieved successfully")
}

// AcceptRequest moves a pending request to accepted. Recipient only.
func (h *MessagingHandler) AcceptRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.AcceptRequest(c.Request().Context(), userID, conversationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toConversationResponse(output), "Request accepted successfully")
}

// RejectRequest moves a pending request to rejected. Recipient only.
func (h *MessagingHandler) RejectRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RejectRequest(c.Request().Context(), userID, conversationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request rejected successfully")
}

// SendMessage appends a message to an accepted conversation.
func (h *MessagingHandler) SendMessage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SendMessage(c.Request().Context(), userID, conversationID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// GetMessages returns one newest-first page of a conversation's messages.
func (h *MessagingHandler) GetMessages(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	// Malformed paging falls back to the configured defaults.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("size"))

	messages, err := h.uc.GetMessages(c.Request().Context(), userID, conversationID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// MarkConversationRead marks every message from the counterpart as read.
func (h *MessagingHandler) MarkConversationRead(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkConversationRead(c.Request().Context(), userID, conversationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Conversation marked as read")
}
