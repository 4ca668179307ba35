// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shelfswap/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens together with the authenticated user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and logs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues tokens.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GetUser retrieves a user's public profile.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
