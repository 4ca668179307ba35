package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the identity a verified token asserts.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Type   string // "access" or "refresh"
}

// TokenService defines the interface for issuing and verifying tokens.
// This is the Identity Provider seam: the trading core never reads the
// signing secret itself.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, email string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration
}
