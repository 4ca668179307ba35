package usecase

import (
	"context"

	"shelfswap/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase defines the interface for the mutual-interest match feed.
type FeedUsecase interface {
	// GetFeed returns ranked mutual-match candidates for the user, each
	// bundled with the books they own that the user wants. A non-positive
	// limit falls back to the configured default.
	GetFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FeedItem, error)
}
