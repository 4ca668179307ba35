package repository

import (
	"context"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/errors"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found in the catalog.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the interface for catalog persistence. Books are
// keyed by the normalized catalog key and are created on first reference.
type BookRepository interface {
	// CreateIfAbsent inserts the book unless its key already exists. A
	// concurrent insert of the same key is not an error.
	CreateIfAbsent(ctx context.Context, book *entity.Book) error

	// FindByKey retrieves a book by its normalized catalog key.
	FindByKey(ctx context.Context, key string) (*entity.Book, error)

	// Exists reports whether a book with the given key is in the catalog.
	Exists(ctx context.Context, key string) (bool, error)

	// SearchByTitle returns books whose title contains the query,
	// case-insensitive, restricted to books on at least one shelf.
	SearchByTitle(ctx context.Context, title string) ([]*entity.Book, error)

	// FindOwners returns the users who have the book on their shelf,
	// excluding the given user, newest account first.
	FindOwners(ctx context.Context, key string, excludeUserID uuid.UUID) ([]*entity.User, error)
}
