// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a password account.
type SignupInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required to log in. Identifier is an email or
// a username.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the newly minted access token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for password authentication and session
// management. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh mints a new access token from a stored, usable refresh token.
	// The refresh token itself is never rotated.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the session behind the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetUser loads a user's profile by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
