package impl

import (
	"context"
	"testing"

	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	mockRepo "shelfswap/internal/mocks/repository"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookServiceFixtures holds all test dependencies for book service tests.
type bookServiceFixtures struct {
	service   usecase.BookUsecase
	txManager *mockRepo.MockTransactionManager
	bookRepo  *mockRepo.MockBookRepository
	shelfRepo *mockRepo.MockShelfRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	shelfRepo := mockRepo.NewMockShelfRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewBookService(BookServiceParams{
		TxManager: txManager,
		BookRepo:  bookRepo,
		ShelfRepo: shelfRepo,
		UserRepo:  userRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return bookServiceFixtures{
		service:   service,
		txManager: txManager,
		bookRepo:  bookRepo,
		shelfRepo: shelfRepo,
		userRepo:  userRepo,
	}
}

func TestBookService_AddBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.AddBookInput{
		UserID:  userID,
		Kind:    entity.KindShelf,
		Key:     "https://openlibrary.org/works/OL123456W",
		Title:   "The Dispossessed",
		Author:  "Ursula K. Le Guin",
		CoverID: 8739161,
	}
	stored := &entity.Book{
		Key:    "OL123456W",
		Title:  "The Dispossessed",
		Author: "Ursula K. Le Guin",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindWishlist).
				Return(false, nil)
			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindShelf).
				Return(false, nil)

			mockBookRepo.EXPECT().
				CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Book")).
				Run(func(ctx context.Context, book *entity.Book) {
					assert.Equal(t, "OL123456W", book.Key)
					assert.Equal(t, "https://covers.openlibrary.org/b/id/8739161-M.jpg", book.CoverURL)
				}).
				Return(nil)

			mockShelfRepo.EXPECT().
				AddEntry(ctx, userID, "OL123456W", entity.KindShelf).
				Return(nil)

			mockBookRepo.EXPECT().FindByKey(ctx, "OL123456W").Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	book, err := fx.service.AddBook(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, stored, book)
}

func TestBookService_AddBook_InvalidKey(t *testing.T) {
	fx := createTestBookService(t)

	book, err := fx.service.AddBook(context.Background(), usecase.AddBookInput{
		UserID: uuid.New(),
		Kind:   entity.KindShelf,
		Key:    "not-a-key",
		Title:  "Whatever",
	})

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBookKey))
}

func TestBookService_AddBook_MissingTitle(t *testing.T) {
	fx := createTestBookService(t)

	book, err := fx.service.AddBook(context.Background(), usecase.AddBookInput{
		UserID: uuid.New(),
		Kind:   entity.KindShelf,
		Key:    "OL123456W",
		Title:  "   ",
	})

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_AddBook_AlreadyOnOtherList(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			// The book already sits on the wishlist, so a shelf add is refused.
			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindWishlist).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrMutualExclusion)

	book, err := fx.service.AddBook(ctx, usecase.AddBookInput{
		UserID: userID,
		Kind:   entity.KindShelf,
		Key:    "OL123456W",
		Title:  "The Dispossessed",
	})

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrMutualExclusion))
}

func TestBookService_AddBook_DuplicateEntry(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindShelf).
				Return(false, nil)
			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindWishlist).
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateEntry)

	book, err := fx.service.AddBook(ctx, usecase.AddBookInput{
		UserID: userID,
		Kind:   entity.KindWishlist,
		Key:    "OL123456W",
		Title:  "The Dispossessed",
	})

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEntry))
}

func TestBookService_AddBook_ConcurrentDuplicateBackstop(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindWishlist).
				Return(false, nil)
			mockShelfRepo.EXPECT().
				Exists(ctx, userID, "OL123456W", entity.KindShelf).
				Return(false, nil)
			mockBookRepo.EXPECT().
				CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Book")).
				Return(nil)

			// A concurrent add slipped past the existence checks; the unique
			// index catches it.
			mockShelfRepo.EXPECT().
				AddEntry(ctx, userID, "OL123456W", entity.KindShelf).
				Return(repository.ErrDuplicateEntry)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateEntry)

	book, err := fx.service.AddBook(ctx, usecase.AddBookInput{
		UserID: userID,
		Kind:   entity.KindShelf,
		Key:    "OL123456W",
		Title:  "The Dispossessed",
	})

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEntry))
}

func TestBookService_RemoveBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockBookRepo.EXPECT().Exists(ctx, "OL123456W").Return(true, nil)
			mockShelfRepo.EXPECT().
				RemoveEntry(ctx, userID, "OL123456W", entity.KindShelf).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RemoveBook(ctx, userID, "OL123456W", entity.KindShelf)

	assert.NoError(t, err)
}

func TestBookService_RemoveBook_UnknownBook(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockBookRepo.EXPECT().Exists(ctx, "OL999999W").Return(false, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrBookNotFound)

	err := fx.service.RemoveBook(ctx, userID, "OL999999W", entity.KindShelf)

	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_RemoveBook_EntryNotOnList(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBookRepo := mockRepo.NewMockBookRepository(t)
			mockShelfRepo := mockRepo.NewMockShelfRepository(t)

			mockFactory.EXPECT().NewBookRepository().Return(mockBookRepo)
			mockFactory.EXPECT().NewShelfRepository().Return(mockShelfRepo)

			mockBookRepo.EXPECT().Exists(ctx, "OL123456W").Return(true, nil)
			mockShelfRepo.EXPECT().
				RemoveEntry(ctx, userID, "OL123456W", entity.KindWishlist).
				Return(repository.ErrEntryNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEntryNotFound)

	err := fx.service.RemoveBook(ctx, userID, "OL123456W", entity.KindWishlist)

	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestBookService_ListBooks(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	books := []*entity.Book{{Key: "OL1W", Title: "A"}, {Key: "OL2W", Title: "B"}}

	fx.shelfRepo.EXPECT().ListBooks(ctx, userID, entity.KindWishlist).Return(books, nil)

	found, err := fx.service.ListBooks(ctx, userID, entity.KindWishlist)

	require.NoError(t, err)
	assert.Equal(t, books, found)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	fx.bookRepo.EXPECT().FindByKey(ctx, "OL123456W").Return(nil, repository.ErrBookNotFound)

	book, err := fx.service.GetBook(ctx, "OL123456W")

	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_SearchBooks_EmptyQueryShortCircuits(t *testing.T) {
	fx := createTestBookService(t)

	books, err := fx.service.SearchBooks(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, books)
	// No repository call is made for a blank query.
	fx.bookRepo.AssertNotCalled(t, "SearchByTitle")
}

func TestBookService_SearchBooks_DelegatesTrimmedQuery(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	books := []*entity.Book{{Key: "OL1W", Title: "Dune"}}

	fx.bookRepo.EXPECT().SearchByTitle(ctx, "dune").Return(books, nil)

	found, err := fx.service.SearchBooks(ctx, "  dune  ")

	require.NoError(t, err)
	assert.Equal(t, books, found)
}

func TestBookService_GetBookOwners_UnknownBook(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	fx.bookRepo.EXPECT().Exists(ctx, "OL123456W").Return(false, nil)

	owners, err := fx.service.GetBookOwners(ctx, "OL123456W", uuid.New())

	assert.Nil(t, owners)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_GetBookOwners_ExcludesViewer(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	owners := []*entity.User{{ID: uuid.New(), FirstName: "Bob"}}

	fx.bookRepo.EXPECT().Exists(ctx, "OL123456W").Return(true, nil)
	fx.bookRepo.EXPECT().FindOwners(ctx, "OL123456W", viewerID).Return(owners, nil)

	found, err := fx.service.GetBookOwners(ctx, "OL123456W", viewerID)

	require.NoError(t, err)
	assert.Equal(t, owners, found)
}

func TestBookService_MatchedBooks_BothDirections(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	otherID := uuid.New()
	theyOwn := []*entity.Book{{Key: "OL1W"}}
	iOwn := []*entity.Book{{Key: "OL2W"}, {Key: "OL3W"}}

	fx.userRepo.EXPECT().FindByID(ctx, otherID).Return(&entity.User{ID: otherID}, nil)
	fx.shelfRepo.EXPECT().MatchedBooks(ctx, otherID, viewerID).Return(theyOwn, nil)
	fx.shelfRepo.EXPECT().MatchedBooks(ctx, viewerID, otherID).Return(iOwn, nil)

	output, err := fx.service.MatchedBooks(ctx, viewerID, otherID)

	require.NoError(t, err)
	assert.Equal(t, theyOwn, output.TheyOwn)
	assert.Equal(t, iOwn, output.IOwn)
}

func TestBookService_MatchedBooks_UnknownUser(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	otherID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, otherID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.MatchedBooks(ctx, uuid.New(), otherID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
