// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supported OAuth providers.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// Account represents one third-party identity linked to a User.
// It is created on the first OAuth callback for an unseen identity and stays
// pending until the user completes onboarding (picks a username, confirms an
// email). At most one Account exists per (provider, providerAccountID) pair.
type Account struct {
	ID                uuid.UUID // The unique ID of this link record.
	UserID            uuid.UUID // The owning User.
	Provider          string    // OAuth provider, e.g. "google" or "github".
	ProviderAccountID string    // The user's stable ID at the provider (Google 'sub', GitHub numeric ID).
	IsPending         bool      // True until onboarding completes; flips false exactly once.
	CreatedAt         time.Time // Timestamp of when this identity was linked.
}

// RefreshToken is a persisted, revocable capability for minting new access
// tokens. The signed token string itself is the lookup key. Rows are revoked
// on logout, never deleted, so the session history stays auditable.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID of this session record.
	UserID    uuid.UUID // The User this session belongs to.
	Token     string    // The signed refresh token string, unique.
	ExpiresAt time.Time // Issuance time + 7 days; the row is unusable afterwards.
	Revoked   bool      // Set on logout; a revoked token can never refresh again.
	CreatedAt time.Time // When the session was created (i.e. the login time).
}

// Usable reports whether the token can still mint access tokens at t.
func (rt *RefreshToken) Usable(t time.Time) bool {
	return !rt.Revoked && rt.ExpiresAt.After(t)
}
