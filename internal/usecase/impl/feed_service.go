package impl

import (
	"context"
	"log/slog"

	"shelfswap/config"
	deliverycontext "shelfswap/internal/delivery/context"
	"shelfswap/internal/domain/entity"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackFeedLimit    = 10
	fallbackFeedMaxLimit = 50
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	shelfRepo    repository.ShelfRepository
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	ShelfRepo repository.ShelfRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	defaultLimit := fallbackFeedLimit
	maxLimit := fallbackFeedMaxLimit
	if params.Config != nil && params.Config.Feed != nil {
		if params.Config.Feed.DefaultLimit > 0 {
			defaultLimit = params.Config.Feed.DefaultLimit
		}
		if params.Config.Feed.MaxLimit > 0 {
			maxLimit = params.Config.Feed.MaxLimit
		}
	}

	return &feedService{
		shelfRepo:    params.ShelfRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFeed returns ranked mutual-match candidates for the user, each bundled
// with the books they own that the user wants.
func (srv *feedService) GetFeed(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.FeedItem, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	candidates, err := srv.shelfRepo.FindMutualUsers(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find mutual users")
	}

	items := make([]*entity.FeedItem, 0, len(candidates))
	for _, candidate := range candidates {
		matched, err := srv.shelfRepo.MatchedBooks(ctx, candidate.User.ID, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find matched books for candidate")
		}

		items = append(items, &entity.FeedItem{
			User:         candidate.User,
			MatchedBooks: matched,
		})
	}

	srv.log(ctx).Debug("Feed computed",
		slog.Any("userID", userID),
		slog.Int("candidates", len(items)),
	)

	return items, nil
}
