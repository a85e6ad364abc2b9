// Package github implements the GitHub OAuth authorization-code flow.
package github

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"yap/config"
	"yap/internal/domain/entity"
	"yap/internal/domain/service"
	"yap/internal/errors"
)

// githubUser is the slice of the GitHub /user response we care about.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// githubEmail is one entry of the /user/emails response. GitHub omits the
// email from /user when the user hides it, so we fall back to this endpoint.
type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type provider struct {
	config *oauth2.Config
}

// NewProvider builds the GitHub provider from application configuration.
func NewProvider(cfg *config.Config) service.OAuthProvider {
	return &provider{
		config: &oauth2.Config{
			ClientID:     cfg.OAuth.GitHub.ClientID,
			ClientSecret: cfg.OAuth.GitHub.ClientSecret,
			RedirectURL:  cfg.OAuth.GitHub.CallbackURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
	}
}

func (p *provider) Provider() string {
	return entity.ProviderGitHub
}

// AuthURL builds the consent page URL. The state is verified against a cookie
// on callback to block CSRF.
func (p *provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the user's normalized profile.
// The code-for-token exchange runs server to server with the client secret.
func (p *provider) Exchange(ctx context.Context, code string) (*service.OAuthProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchanging github oauth code")
	}

	client := p.config.Client(ctx, token)

	user, err := p.fetchUser(client)
	if err != nil {
		return nil, err
	}

	email := user.Email
	if email == "" {
		// Hidden on the profile; ask the emails endpoint instead.
		email, err = p.fetchPrimaryEmail(client)
		if err != nil {
			return nil, err
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return &service.OAuthProfile{
		ProviderAccountID: strconv.FormatInt(user.ID, 10),
		Email:             email,
		Name:              name,
		AvatarURL:         user.AvatarURL,
	}, nil
}

func (p *provider) fetchUser(client *http.Client) (*githubUser, error) {
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		return nil, errors.Wrap(err, "calling github /user")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("github /user returned status %d", resp.StatusCode)
	}

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decoding github /user response")
	}
	if user.ID == 0 {
		return nil, errors.New("github returned an invalid user")
	}
	return &user, nil
}

func (p *provider) fetchPrimaryEmail(client *http.Client) (string, error) {
	resp, err := client.Get("https://api.github.com/user/emails")
	if err != nil {
		return "", errors.Wrap(err, "calling github /user/emails")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("github /user/emails returned status %d", resp.StatusCode)
	}

	var emails []githubEmail
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", errors.Wrap(err, "decoding github /user/emails response")
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	// No verified primary email; the account proceeds without one.
	return "", nil
}
