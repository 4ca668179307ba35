// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListKind distinguishes the two book lists a user maintains. A (user, book)
// pair may live in at most one of the two lists at a time.
type ListKind string

const (
	// KindShelf marks books a user owns and offers for trade.
	KindShelf ListKind = "shelf"

	// KindWishlist marks books a user wants.
	KindWishlist ListKind = "wishlist"
)

// Other returns the counterpart list kind.
func (k ListKind) Other() ListKind {
	if k == KindShelf {
		return KindWishlist
	}

	return KindShelf
}

// ListEntry is a single (user, book) relation in either the shelf or the
// wishlist.
type ListEntry struct {
	UserID  uuid.UUID `json:"userId"`
	BookKey string    `json:"bookKey"`
	Kind    ListKind  `json:"kind"`
	AddedAt time.Time `json:"addedAt"`
}

// MutualCandidate is one ranked entry of the match feed: another user whose
// shelf intersects the caller's wishlist and whose wishlist intersects the
// caller's shelf.
type MutualCandidate struct {
	User       *User
	MatchCount int // Distinct books the candidate owns that the caller wants.
}

// FeedItem bundles a ranked candidate with the books they own that the
// caller wants.
type FeedItem struct {
	User         *User
	MatchedBooks []*Book
}
