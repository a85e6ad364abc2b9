package repository

import (
	"context"
	"errors"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an OAuth account link is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the operations for OAuth account-link persistence.
type AccountRepository interface {
	// Create persists a new account link.
	Create(ctx context.Context, account *entity.Account) error

	// FindByProviderAccountID retrieves a link by its (provider, providerAccountID) pair.
	FindByProviderAccountID(ctx context.Context, provider, providerAccountID string) (*entity.Account, error)

	// ListByUserID retrieves all links of a user, oldest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Update modifies an existing link (used to flip IsPending at onboarding).
	Update(ctx context.Context, account *entity.Account) error
}
