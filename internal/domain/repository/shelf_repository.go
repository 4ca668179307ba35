package repository

import (
	"context"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shelf/wishlist persistence.
var (
	// ErrEntryNotFound is returned when a (user, book) pair is absent from the target list.
	ErrEntryNotFound = errors.New("list entry not found")
	// ErrDuplicateEntry is returned when the pair already exists in the target list.
	ErrDuplicateEntry = errors.New("list entry already exists")
)

// ShelfRepository defines the interface for the shelf and wishlist relations
// and the matching queries that join them. Both relations are addressed
// through entity.ListKind.
type ShelfRepository interface {
	// AddEntry inserts a (user, book) pair into the given list. The unique
	// index on the pair is the race backstop; a duplicate insert surfaces
	// as ErrDuplicateEntry.
	AddEntry(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) error

	// RemoveEntry deletes a (user, book) pair from the given list.
	RemoveEntry(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) error

	// Exists reports whether the pair is present in the given list.
	Exists(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) (bool, error)

	// ListBooks returns all books in the user's given list, newest entry first.
	ListBooks(ctx context.Context, userID uuid.UUID, kind entity.ListKind) ([]*entity.Book, error)

	// HasMutualBooks reports whether at least one book is wanted by one of
	// the two users and owned by the other, in either direction. Symmetric.
	HasMutualBooks(ctx context.Context, a, b uuid.UUID) (bool, error)

	// MatchedBooks returns the books on ownerID's shelf that wanterID has
	// wishlisted, joined through the shared catalog key.
	MatchedBooks(ctx context.Context, ownerID, wanterID uuid.UUID) ([]*entity.Book, error)

	// FindMutualUsers returns candidates whose shelf intersects the user's
	// wishlist and whose wishlist intersects the user's shelf, ranked by
	// descending count of distinct books the candidate owns that the user
	// wants, capped at limit.
	FindMutualUsers(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MutualCandidate, error)
}
