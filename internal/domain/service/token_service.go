// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind selects which secret and lifetime a token is signed with.
type TokenKind string

const (
	// TokenKindAccess is the short-lived credential sent on API calls.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived, persisted, revocable credential.
	TokenKindRefresh TokenKind = "refresh"
	// TokenKindOnboarding scopes a fresh OAuth user to the onboarding step.
	TokenKindOnboarding TokenKind = "onboarding"
)

// Claims defines the custom claims carried by every token kind.
type Claims struct {
	UserID uuid.UUID
	Kind   TokenKind
	jwt.RegisteredClaims
}

// TokenService signs and verifies the application's tokens. It is a pure
// function of its secrets; persisting refresh tokens is the session service's
// job, never this one's.
type TokenService interface {
	// Generate creates a signed token of the given kind for the user.
	Generate(kind TokenKind, userID uuid.UUID) (string, error)

	// Validate checks signature, expiry, kind and subject. Any failure
	// surfaces as domain ErrTokenInvalid.
	Validate(kind TokenKind, token string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
