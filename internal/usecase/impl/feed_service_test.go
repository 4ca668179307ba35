package impl

import (
	"context"
	"testing"

	"shelfswap/internal/domain/entity"
	mockRepo "shelfswap/internal/mocks/repository"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedServiceFixtures holds all test dependencies for feed service tests.
type feedServiceFixtures struct {
	service   usecase.FeedUsecase
	shelfRepo *mockRepo.MockShelfRepository
}

func createTestFeedService(t *testing.T) feedServiceFixtures {
	shelfRepo := mockRepo.NewMockShelfRepository(t)

	service := NewFeedService(FeedServiceParams{
		ShelfRepo: shelfRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return feedServiceFixtures{
		service:   service,
		shelfRepo: shelfRepo,
	}
}

func TestFeedService_GetFeed_BundlesMatchedBooksPerCandidate(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := &entity.User{ID: uuid.New(), FirstName: "Bob"}
	second := &entity.User{ID: uuid.New(), FirstName: "Carol"}
	candidates := []*entity.MutualCandidate{
		{User: first, MatchCount: 3},
		{User: second, MatchCount: 1},
	}
	firstBooks := []*entity.Book{{Key: "OL1W"}, {Key: "OL2W"}, {Key: "OL3W"}}
	secondBooks := []*entity.Book{{Key: "OL4W"}}

	fx.shelfRepo.EXPECT().FindMutualUsers(ctx, userID, 5).Return(candidates, nil)
	fx.shelfRepo.EXPECT().MatchedBooks(ctx, first.ID, userID).Return(firstBooks, nil)
	fx.shelfRepo.EXPECT().MatchedBooks(ctx, second.ID, userID).Return(secondBooks, nil)

	items, err := fx.service.GetFeed(ctx, userID, 5)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].User)
	assert.Equal(t, firstBooks, items[0].MatchedBooks)
	assert.Equal(t, second, items[1].User)
	assert.Equal(t, secondBooks, items[1].MatchedBooks)
}

func TestFeedService_GetFeed_DefaultsLimit(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.shelfRepo.EXPECT().FindMutualUsers(ctx, userID, 10).Return(nil, nil)

	items, err := fx.service.GetFeed(ctx, userID, 0)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFeedService_GetFeed_ClampsLimit(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.shelfRepo.EXPECT().FindMutualUsers(ctx, userID, 50).Return(nil, nil)

	_, err := fx.service.GetFeed(ctx, userID, 500)

	assert.NoError(t, err)
}

func TestFeedService_GetFeed_PropagatesQueryError(t *testing.T) {
	fx := createTestFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.shelfRepo.EXPECT().
		FindMutualUsers(ctx, userID, 10).
		Return(nil, errors.New("connection reset"))

	items, err := fx.service.GetFeed(ctx, userID, 10)

	assert.Nil(t, items)
	assert.Error(t, err)
}
