// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Credentials and token issuance belong to the identity boundary; the trading
// core only ever references users by ID.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, unique across the system.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed through DTOs.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name. May be empty.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// DisplayName returns the name shown to other users.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
