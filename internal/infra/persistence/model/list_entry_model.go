package model

import (
	"time"

	"github.com/google/uuid"
)

// ListEntryModel mirrors the 'list_entries' table. A row places one book on one
// user's shelf or wishlist. The unique index spans (user_id, book_key) without the
// kind column, so the database also enforces that a book never appears on both of
// a user's lists at once.
type ListEntryModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_entries_user_book;index"`
	BookKey string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_list_entries_user_book;index"`
	Kind    string    `gorm:"type:varchar(16);not null;index"`
	AddedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListEntryModel) TableName() string {
	return "list_entries"
}
