// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"regexp"
	"time"
)

// catalogKeyPattern matches an Open Library style key: "OL", digits, one
// uppercase type letter. The key is the Book primary key, so every entry
// point that accepts a raw identifier must normalize through it.
var catalogKeyPattern = regexp.MustCompile(`(OL\d+[A-Z])`)

// Book is a catalog entry, created on first reference by any user's shelf or
// wishlist and shared by all users afterwards.
type Book struct {
	Key       string    `json:"key"` // Normalized Open Library catalog key, e.g. "OL123456W". Primary key.
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CoverURL  string    `json:"coverUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExtractCatalogKey normalizes a raw externally-supplied book identifier to
// the canonical catalog key. Raw input may be a bare key or a full Open
// Library URL; anything without an embedded key is rejected.
func ExtractCatalogKey(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	match := catalogKeyPattern.FindString(raw)
	if match == "" {
		return "", false
	}

	return match, true
}

// CoverURLFromID builds the Open Library cover image URL for a numeric cover ID.
// A zero ID means the catalog has no cover for this edition.
func CoverURLFromID(coverID int) string {
	if coverID == 0 {
		return ""
	}

	return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", coverID)
}
