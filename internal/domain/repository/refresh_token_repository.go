package repository

import (
	"context"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when no row matches the token string.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when the matching row is past its expiry.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	// ErrRefreshTokenRevoked is returned when the matching row was revoked by a logout.
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)

// RefreshTokenRepository defines the operations for session persistence.
// Rows are revoked rather than deleted so the session history stays auditable.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a usable session by its token string. A row that
	// exists but is revoked or expired yields ErrRefreshTokenRevoked /
	// ErrRefreshTokenExpired respectively.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Revoke marks the matching row revoked. Revoking an already-revoked row
	// is a no-op; a missing row yields ErrRefreshTokenNotFound.
	Revoke(ctx context.Context, token string) error

	// RevokeAllByUserID revokes every session of a user ("log out everywhere").
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveByUserID returns the number of usable sessions for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes rows whose expiry is long past. Periodic cleanup
	// only; never part of a request path.
	DeleteExpired(ctx context.Context) error
}
