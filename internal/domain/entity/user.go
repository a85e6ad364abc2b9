// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system.
//
// Email and Username are pointers because both are unset while an OAuth
// sign-up is still pending onboarding; once onboarding completes (or for any
// password sign-up) both are always present. PasswordHash is nil exactly when
// the account is OAuth-only and never had a local password.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        *string   // Login identifier, unique, lowercase. Nil only while OAuth-pending.
	Username     *string   // Public handle, unique. Nil only while OAuth-pending.
	PasswordHash *string   // bcrypt hash. Nil for OAuth-only accounts.
	Bio          string    // Free-form profile text.
	AvatarURL    string    // Profile picture URL; defaults to the configured avatar.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasPassword reports whether the user can authenticate with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// EmailString returns the email or "" when unset.
func (u *User) EmailString() string {
	if u.Email == nil {
		return ""
	}

	return *u.Email
}

// UsernameString returns the username or "" when unset.
func (u *User) UsernameString() string {
	if u.Username == nil {
		return ""
	}

	return *u.Username
}
