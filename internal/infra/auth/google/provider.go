// Package google implements the Google OAuth authorization-code flow.
package google

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"yap/config"
	"yap/internal/domain/entity"
	"yap/internal/domain/service"
	"yap/internal/errors"
)

// googleUser is the slice of the userinfo response we care about.
type googleUser struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type provider struct {
	config *oauth2.Config
}

// NewProvider builds the Google provider from application configuration.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	return &provider{
		config: &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.CallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *provider) Provider() string {
	return entity.ProviderGoogle
}

// AuthURL builds the consent page URL. The state is verified against a cookie
// on callback to block CSRF.
func (p *provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the user's normalized profile.
func (p *provider) Exchange(ctx context.Context, code string) (*service.OAuthProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchanging google oauth code")
	}

	client := p.config.Client(ctx, token)

	resp, err := client.Get("https://openidconnect.googleapis.com/v1/userinfo")
	if err != nil {
		return nil, errors.Wrap(err, "calling google userinfo")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var user googleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decoding google userinfo response")
	}
	if user.Sub == "" {
		return nil, errors.New("google returned an invalid user")
	}

	return &service.OAuthProfile{
		ProviderAccountID: user.Sub,
		Email:             user.Email,
		Name:              user.Name,
		AvatarURL:         user.Picture,
	}, nil
}
