// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"shelfswap/internal/delivery/http/middleware"
	"shelfswap/internal/delivery/http/response"
	"shelfswap/internal/domain/entity"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the public view of a user. The password hash never leaves
// the usecase layer through this type.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationResponse is one participant's view of a conversation.
type ConversationResponse struct {
	ID                  string          `json:"id"`
	Status              string          `json:"status"`
	OtherUser           *UserResponse   `json:"otherUser"`
	IntroductoryMessage string          `json:"introductoryMessage,omitempty"`
	LastMessage         *entity.Message `json:"lastMessage,omitempty"`
	UnreadCount         int             `json:"unreadCount"`
	CreatedAt           time.Time       `json:"createdAt"`
	LastMessageAt       time.Time       `json:"lastMessageAt"`
}

// AuthResponse carries the issued tokens and the authenticated user.
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

func toConversationResponse(output *usecase.ConversationOutput) *ConversationResponse {
	return &ConversationResponse{
		ID:                  output.ID.String(),
		Status:              string(output.Status),
		OtherUser:           toUserResponse(output.OtherUser),
		IntroductoryMessage: output.IntroductoryMessage,
		LastMessage:         output.LastMessage,
		UnreadCount:         output.UnreadCount,
		CreatedAt:           output.CreatedAt,
		LastMessageAt:       output.LastMessageAt,
	}
}

func toConversationResponses(outputs []*usecase.ConversationOutput) []*ConversationResponse {
	responses := make([]*ConversationResponse, 0, len(outputs))
	for _, output := range outputs {
		responses = append(responses, toConversationResponse(output))
	}

	return responses
}

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. A miss means the route was registered without it.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID in token")
	}

	return userID, nil
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" format")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
