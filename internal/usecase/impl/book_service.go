package impl

import (
	"context"
	"log/slog"
	"strings"

	"shelfswap/config"
	deliverycontext "shelfswap/internal/delivery/context"
	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	shelfRepo repository.ShelfRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	ShelfRepo repository.ShelfRepository
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		shelfRepo: params.ShelfRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook places a book on the user's shelf or wishlist. The catalog upsert,
// the exclusivity checks and the list insert run in one transaction so a
// failure leaves no partial state.
func (srv *bookService) AddBook(ctx context.Context, input usecase.AddBookInput) (*entity.Book, error) {
	key, ok := entity.ExtractCatalogKey(input.Key)
	if !ok {
		return nil, domainerrors.ErrInvalidBookKey
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("book title is required")
	}

	var stored *entity.Book
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		shelfRepo := repoFactory.NewShelfRepository()

		// Mutual exclusion: the same book may not sit on both of the
		// user's lists.
		onOther, err := shelfRepo.Exists(ctx, input.UserID, key, input.Kind.Other())
		if err != nil {
			return errors.Wrap(err, "failed to check the other list")
		}
		if onOther {
			return domainerrors.ErrMutualExclusion
		}

		onList, err := shelfRepo.Exists(ctx, input.UserID, key, input.Kind)
		if err != nil {
			return errors.Wrap(err, "failed to check the target list")
		}
		if onList {
			return domainerrors.ErrDuplicateEntry
		}

		book := &entity.Book{
			Key:    key,
			Title:  title,
			Author: strings.TrimSpace(input.Author),
		}
		if input.CoverID > 0 {
			book.CoverURL = entity.CoverURLFromID(input.CoverID)
		}

		if err := bookRepo.CreateIfAbsent(ctx, book); err != nil {
			return errors.Wrap(err, "failed to upsert book")
		}

		if err := shelfRepo.AddEntry(ctx, input.UserID, key, input.Kind); err != nil {
			// Constraint backstop for a concurrent add that slipped past
			// the checks above.
			if errors.Is(err, repository.ErrDuplicateEntry) {
				return domainerrors.ErrDuplicateEntry
			}

			return errors.Wrap(err, "failed to add list entry")
		}

		// The catalog keeps the first metadata it saw for a key, so read
		// back the canonical record.
		stored, err = bookRepo.FindByKey(ctx, key)
		if err != nil {
			return errors.Wrap(err, "failed to read back book")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Book added to list",
		slog.Any("userID", input.UserID),
		slog.String("bookKey", key),
		slog.String("kind", string(input.Kind)),
	)

	return stored, nil
}

// RemoveBook takes a book off the user's given list.
func (srv *bookService) RemoveBook(ctx context.Context, userID uuid.UUID, rawKey string, kind entity.ListKind) error {
	key, ok := entity.ExtractCatalogKey(rawKey)
	if !ok {
		return domainerrors.ErrInvalidBookKey
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		shelfRepo := repoFactory.NewShelfRepository()

		known, err := bookRepo.Exists(ctx, key)
		if err != nil {
			return errors.Wrap(err, "failed to check book existence")
		}
		if !known {
			return domainerrors.ErrBookNotFound
		}

		if err := shelfRepo.RemoveEntry(ctx, userID, key, kind); err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return domainerrors.ErrEntryNotFound
			}

			return errors.Wrap(err, "failed to remove list entry")
		}

		return nil
	})
}

// ListBooks returns the user's given list, newest entry first.
func (srv *bookService) ListBooks(ctx context.Context, userID uuid.UUID, kind entity.ListKind) ([]*entity.Book, error) {
	books, err := srv.shelfRepo.ListBooks(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook retrieves a single catalog entry.
func (srv *bookService) GetBook(ctx context.Context, rawKey string) (*entity.Book, error) {
	key, ok := entity.ExtractCatalogKey(rawKey)
	if !ok {
		return nil, domainerrors.ErrInvalidBookKey
	}

	book, err := srv.bookRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

// SearchBooks finds shelved books by title substring, case-insensitive.
func (srv *bookService) SearchBooks(ctx context.Context, query string) ([]*entity.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Book{}, nil
	}

	books, err := srv.bookRepo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

// GetBookOwners lists the users offering the book, excluding the viewer.
func (srv *bookService) GetBookOwners(ctx context.Context, rawKey string, viewerID uuid.UUID) ([]*entity.User, error) {
	key, ok := entity.ExtractCatalogKey(rawKey)
	if !ok {
		return nil, domainerrors.ErrInvalidBookKey
	}

	known, err := srv.bookRepo.Exists(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check book existence")
	}
	if !known {
		return nil, domainerrors.ErrBookNotFound
	}

	owners, err := srv.bookRepo.FindOwners(ctx, key, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book owners")
	}

	return owners, nil
}

// MatchedBooks computes the direct match between the viewer and another
// user, in both directions.
func (srv *bookService) MatchedBooks(ctx context.Context, viewerID, otherID uuid.UUID) (*usecase.MatchedBooksOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, otherID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	theyOwn, err := srv.shelfRepo.MatchedBooks(ctx, otherID, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find books they own")
	}

	iOwn, err := srv.shelfRepo.MatchedBooks(ctx, viewerID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find books I own")
	}

	return &usecase.MatchedBooksOutput{
		TheyOwn: theyOwn,
		IOwn:    iOwn,
	}, nil
}
