// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"shelfswap/internal/domain/entity"
	domainerrors "shelfswap/internal/domain/errors"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shelfRepository implements the repository.ShelfRepository interface. Shelf
// and wishlist rows share the list_entries table and are told apart by kind.
type shelfRepository struct {
	db *gorm.DB
}

// NewShelfRepository is the constructor for shelfRepository.
func NewShelfRepository(db *gorm.DB) repository.ShelfRepository {
	return &shelfRepository{
		db: db,
	}
}

// AddEntry inserts a (user, book) pair into the given list.
func (repo *shelfRepository) AddEntry(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) error {
	entryM := &model.ListEntryModel{
		UserID:  userID,
		BookKey: bookKey,
		Kind:    string(kind),
		AddedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		// The unique index spans both lists, so a conflict here means the
		// book is already on one of the user's lists.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add list entry")
	}

	return nil
}

// RemoveEntry deletes a (user, book) pair from the given list.
func (repo *shelfRepository) RemoveEntry(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_key = ? AND kind = ?", userID, bookKey, string(kind)).
		Delete(&model.ListEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove list entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// Exists reports whether the pair is present in the given list.
func (repo *shelfRepository) Exists(ctx context.Context, userID uuid.UUID, bookKey string, kind entity.ListKind) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListEntryModel{}).
		Where("user_id = ? AND book_key = ? AND kind = ?", userID, bookKey, string(kind)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check list entry existence")
	}

	return count > 0, nil
}

// ListBooks returns all books in the user's given list, newest entry first.
func (repo *shelfRepository) ListBooks(ctx context.Context, userID uuid.UUID, kind entity.ListKind) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	query := `
		SELECT b.*
		FROM books b
		JOIN list_entries le ON le.book_key = b.key
		WHERE le.user_id = ?
		  AND le.kind = ?
		ORDER BY le.added_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, userID, string(kind)).
		Scan(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// HasMutualBooks reports whether at least one book is wanted by one of the
// two users and owned by the other, in either direction.
func (repo *shelfRepository) HasMutualBooks(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var found bool

	query := `
		SELECT EXISTS (
		  SELECT 1
		  FROM list_entries w
		  JOIN list_entries s ON s.book_key = w.book_key
		  WHERE w.kind = ?
		    AND s.kind = ?
		    AND (
		      (w.user_id = ? AND s.user_id = ?)
		      OR (w.user_id = ? AND s.user_id = ?)
		    )
		)
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, string(entity.KindWishlist), string(entity.KindShelf), a, b, b, a).
		Scan(&found).Error; err != nil {
		return false, errors.Wrap(err, "failed to check mutual books")
	}

	return found, nil
}

// MatchedBooks returns the books on ownerID's shelf that wanterID has
// wishlisted, joined through the shared catalog key.
func (repo *shelfRepository) MatchedBooks(ctx context.Context, ownerID, wanterID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	query := `
		SELECT b.*
		FROM books b
		JOIN list_entries s ON s.book_key = b.key AND s.user_id = ? AND s.kind = ?
		JOIN list_entries w ON w.book_key = b.key AND w.user_id = ? AND w.kind = ?
		ORDER BY b.title ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, ownerID, string(entity.KindShelf), wanterID, string(entity.KindWishlist)).
		Scan(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matched books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// mutualCandidateRow is the scan target for FindMutualUsers: the user's
// columns plus the computed match count.
type mutualCandidateRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	MatchCount   int
}

// FindMutualUsers returns candidates with a bidirectional book match, ranked
// by how many distinct books the candidate owns that the user wants.
func (repo *shelfRepository) FindMutualUsers(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MutualCandidate, error) {
	var rows []*mutualCandidateRow

	// The join counts books the candidate owns that the caller wants; the
	// EXISTS enforces the reverse direction so the match is mutual.
	query := `
		SELECT u.*, COUNT(DISTINCT their_shelf.book_key) AS match_count
		FROM users u
		JOIN list_entries their_shelf
		  ON their_shelf.user_id = u.id AND their_shelf.kind = ?
		JOIN list_entries my_wishlist
		  ON my_wishlist.book_key = their_shelf.book_key
		  AND my_wishlist.user_id = ? AND my_wishlist.kind = ?
		WHERE u.id <> ?
		  AND EXISTS (
		    SELECT 1
		    FROM list_entries their_wishlist
		    JOIN list_entries my_shelf
		      ON my_shelf.book_key = their_wishlist.book_key
		    WHERE their_wishlist.user_id = u.id
		      AND their_wishlist.kind = ?
		      AND my_shelf.user_id = ?
		      AND my_shelf.kind = ?
		  )
		GROUP BY u.id
		ORDER BY match_count DESC, u.created_at DESC
		LIMIT ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query,
			string(entity.KindShelf), userID, string(entity.KindWishlist),
			userID,
			string(entity.KindWishlist), userID, string(entity.KindShelf),
			limit,
		).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find mutual users")
	}

	candidates := make([]*entity.MutualCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &entity.MutualCandidate{
			User: &entity.User{
				ID:           row.ID,
				Email:        row.Email,
				PasswordHash: row.PasswordHash,
				FirstName:    row.FirstName,
				LastName:     row.LastName,
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
			},
			MatchCount: row.MatchCount,
		})
	}

	return candidates, nil
}
