package service

import "context"

// OAuthProfile is the normalized identity an OAuth provider returns after a
// successful code exchange.
type OAuthProfile struct {
	// ProviderAccountID is the provider's stable identifier for the user.
	ProviderAccountID string
	// Email may be empty when the provider does not expose one.
	Email     string
	Name      string
	AvatarURL string
}

// OAuthProvider implements the authorization-code flow for one provider.
// Each provider is an explicit value handed to the OAuth service at
// construction; there is no global registry.
type OAuthProvider interface {
	// Provider returns the provider key, e.g. "google" or "github".
	Provider() string

	// AuthURL builds the provider's consent page URL carrying the CSRF state.
	AuthURL(state string) string

	// Exchange trades the authorization code for the user's profile.
	Exchange(ctx context.Context, code string) (*OAuthProfile, error)
}
