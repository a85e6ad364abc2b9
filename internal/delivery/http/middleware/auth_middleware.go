// Package middleware contains the HTTP middleware of the API server.
package middleware

import (
	"net/http"
	"strings"

	"yap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Cookie names shared between the auth middleware and the auth handlers.
const (
	CookieRefreshToken    = "refreshToken"
	CookieOnboardingToken = "onboardingToken"
	CookieOAuthState      = "oauthState"
)

const userIDContextKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// user ID on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.Validate(service.TokenKindAccess, tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// RequireOnboarding validates the short-lived onboarding token cookie issued
// after an OAuth signup. It must guard every /auth/onboarding route.
func (m *AuthMiddleware) RequireOnboarding(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(CookieOnboardingToken)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Onboarding session is missing"})
		}

		claims, err := m.tokenSvc.Validate(service.TokenKindOnboarding, cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Onboarding session is invalid or expired"})
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// UserID returns the authenticated user's ID set by Authenticate or
// RequireOnboarding. It is uuid.Nil when neither middleware ran.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(userIDContextKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
