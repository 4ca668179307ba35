package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shelfswap/internal/delivery/http/response"
	"shelfswap/internal/domain/entity"
	"shelfswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for the match feed handler.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		uc:     uc,
		logger: logger,
	}
}

// feedItemResponse bundles a ranked candidate with the books they own that
// the caller wants.
type feedItemResponse struct {
	User         *UserResponse  `json:"user"`
	MatchedBooks []*entity.Book `json:"matchedBooks"`
}

// GetFeed returns ranked mutual-match candidates for the caller.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	// A missing or malformed limit falls back to the configured default.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.uc.GetFeed(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	responses := make([]*feedItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &feedItemResponse{
			User:         toUserResponse(item.User),
			MatchedBooks: item.MatchedBooks,
		})
	}

	return response.Success(c, http.StatusOK, responses, "Feed retrieved successfully")
}
