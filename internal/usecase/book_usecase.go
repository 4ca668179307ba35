package usecase

import (
	"context"

	"shelfswap/internal/domain/entity"

	"github.com/google/uuid"
)

// AddBookInput defines the data required to place a book on a list. Key may
// be a full Open Library URL or a bare key; it is normalized before any
// lookup or write.
type AddBookInput struct {
	UserID  uuid.UUID
	Kind    entity.ListKind
	Key     string
	Title   string
	Author  string
	CoverID int
}

// MatchedBooksOutput holds both directions of a direct match between two
// users: books they shelve that the caller wants, and books the caller
// shelves that they want.
type MatchedBooksOutput struct {
	TheyOwn []*entity.Book
	IOwn    []*entity.Book
}

// BookUsecase defines the interface for catalog and list management.
type BookUsecase interface {
	// AddBook places a book on the user's shelf or wishlist, creating the
	// catalog entry on first reference. The whole operation is atomic.
	AddBook(ctx context.Context, input AddBookInput) (*entity.Book, error)

	// RemoveBook takes a book off the user's given list.
	RemoveBook(ctx context.Context, userID uuid.UUID, rawKey string, kind entity.ListKind) error

	// ListBooks returns the user's given list, newest entry first.
	ListBooks(ctx context.Context, userID uuid.UUID, kind entity.ListKind) ([]*entity.Book, error)

	// GetBook retrieves a single catalog entry.
	GetBook(ctx context.Context, rawKey string) (*entity.Book, error)

	// SearchBooks finds shelved books by title substring, case-insensitive.
	SearchBooks(ctx context.Context, query string) ([]*entity.Book, error)

	// GetBookOwners lists the users offering the book, excluding the viewer.
	GetBookOwners(ctx context.Context, rawKey string, viewerID uuid.UUID) ([]*entity.User, error)

	// MatchedBooks computes the direct match between the viewer and another
	// user, in both directions.
	MatchedBooks(ctx context.Context, viewerID, otherID uuid.UUID) (*MatchedBooksOutput, error)
}
