// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shelfswap/internal/domain/entity"
	"shelfswap/internal/domain/repository"
	"shelfswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the book unless its catalog key already exists.
// Concurrent first references to the same edition are expected, so the
// conflict is swallowed rather than surfaced.
func (repo *bookRepository) CreateIfAbsent(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(bookM).Error; err != nil {
		return errors.Wrap(err, "failed to create book")
	}

	return nil
}

// FindByKey retrieves a book by its normalized catalog key.
func (repo *bookRepository) FindByKey(ctx context.Context, key string) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by key")
	}

	return toBookDomain(&bookM), nil
}

// Exists reports whether a book with the given key is in the catalog.
func (repo *bookRepository) Exists(ctx context.Context, key string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("key = ?", key).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check book existence")
	}

	return count > 0, nil
}

// SearchByTitle returns books whose title contains the query,
// case-insensitive, restricted to books currently on at least one shelf.
func (repo *bookRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	query := `
		SELECT DISTINCT b.*
		FROM books b
		WHERE b.title ILIKE ?
		  AND EXISTS (
		    SELECT 1
		    FROM list_entries le
		    WHERE le.book_key = b.key
		      AND le.kind = ?
		  )
		ORDER BY b.title ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, "%"+title+"%", string(entity.KindShelf)).
		Scan(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search books by title")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// FindOwners returns the users who have the book on their shelf, excluding
// the given user, newest account first.
func (repo *bookRepository) FindOwners(ctx context.Context, key string, excludeUserID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := `
		SELECT u.*
		FROM users u
		JOIN list_entries le ON le.user_id = u.id
		WHERE le.book_key = ?
		  AND le.kind = ?
		  AND u.id <> ?
		ORDER BY u.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, key, string(entity.KindShelf), excludeUserID).
		Scan(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find book owners")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		Key:       data.Key,
		Title:     data.Title,
		Author:    data.Author,
		CoverURL:  data.CoverURL,
		CreatedAt: data.CreatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		Key:       data.Key,
		Title:     data.Title,
		Author:    data.Author,
		CoverURL:  data.CoverURL,
		CreatedAt: data.CreatedAt,
	}
}
