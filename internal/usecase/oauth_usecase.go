package usecase

import (
	"context"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// CallbackOutput is the result of completing an OAuth callback. Exactly one
// of the session tokens or the onboarding token is set: a returning user gets
// a session, a fresh identity gets an onboarding token scoped to finishing
// signup.
type CallbackOutput struct {
	User         *entity.User
	Pending      bool
	AccessToken  string
	RefreshToken string
	// OnboardingToken is set only when Pending is true.
	OnboardingToken string
}

// OnboardInput defines the data required to complete OAuth onboarding.
type OnboardInput struct {
	UserID   uuid.UUID
	Username string
	// Email is required only when the provider supplied none.
	Email string
}

// OAuthUsecase defines the interface for the third-party login bridge.
// Providers are explicit constructor-injected handlers; the delivery layer
// addresses them by key.
type OAuthUsecase interface {
	// AuthURL builds the consent page URL for the provider, carrying the
	// CSRF state. Unknown providers yield ErrValidationFailed.
	AuthURL(provider, state string) (string, error)

	// Callback exchanges the authorization code and resolves the provider
	// identity to a user, creating a pending one on first sight.
	Callback(ctx context.Context, provider, code string) (*CallbackOutput, error)

	// Onboard completes a pending OAuth signup: sets the username (and email
	// when the provider supplied none) and opens a session.
	Onboard(ctx context.Context, input *OnboardInput) (*LoginOutput, error)

	// PendingUser loads the user behind an onboarding token and verifies the
	// account is still pending.
	PendingUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// CancelOnboarding deletes the pending user and everything created for it.
	CancelOnboarding(ctx context.Context, userID uuid.UUID) error
}
