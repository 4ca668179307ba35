package model

import "time"

// BookModel mirrors the 'books' table. The Open Library key is the natural primary key,
// so the same edition is stored exactly once no matter how many shelves reference it.
type BookModel struct {
	Key       string `gorm:"type:varchar(32);primary_key"`
	Title     string `gorm:"type:varchar(512);not null"`
	Author    string `gorm:"type:varchar(255)"`
	CoverURL  string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
