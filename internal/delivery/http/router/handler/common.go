// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"yap/config"
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	onboardingCookieMaxAge = 15 * time.Minute
	oauthStateCookieMaxAge = 10 * time.Minute
)

// userProfile is the user representation returned to its owner. Other
// viewers only ever see usecase.UserView, which carries no email.
type userProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func buildProfile(user *entity.User) *userProfile {
	return &userProfile{
		ID:        user.ID,
		Email:     user.EmailString(),
		Username:  user.UsernameString(),
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func newAuthCookie(cfg *config.CookieConfig, name, value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if cfg != nil {
		cookie.Domain = cfg.Domain
		cookie.Secure = cfg.Secure
	}
	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}

func setRefreshCookie(c echo.Context, cfg *config.CookieConfig, token string, maxAge time.Duration) {
	c.SetCookie(newAuthCookie(cfg, middleware.CookieRefreshToken, token, maxAge))
}

func clearRefreshCookie(c echo.Context, cfg *config.CookieConfig) {
	c.SetCookie(newAuthCookie(cfg, middleware.CookieRefreshToken, "", 0))
}

func setOnboardingCookie(c echo.Context, cfg *config.CookieConfig, token string) {
	c.SetCookie(newAuthCookie(cfg, middleware.CookieOnboardingToken, token, onboardingCookieMaxAge))
}

func clearOnboardingCookie(c echo.Context, cfg *config.CookieConfig) {
	c.SetCookie(newAuthCookie(cfg, middleware.CookieOnboardingToken, "", 0))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
