// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for user persistence. The application layer branches on
// these without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user lookup finds no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a write violates the email unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when a write violates the username unique constraint.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. Unique-constraint violations are mapped to
	// ErrDuplicateEmail / ErrDuplicateUsername so concurrent signups lose
	// cleanly instead of surfacing a generic storage error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, matched case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by their exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ListByIDs retrieves the users for the given IDs, in no particular order.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// Update modifies an existing user. Same duplicate mapping as Create.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, through database cascades, their accounts,
	// sessions, content and likes. Used by onboarding cancellation.
	Delete(ctx context.Context, id uuid.UUID) error
}
