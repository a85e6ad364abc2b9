package handler

import (
	"log/slog"
	"net/http"

	"yap/config"
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler drives the browser-facing OAuth flow: provider redirect,
// callback, and the onboarding step for first-time OAuth users.
type OAuthHandler struct {
	uc       usecase.OAuthUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start redirects the browser to the provider's consent page. The random
// state lands in a short-lived cookie and is checked on the way back.
func (h *OAuthHandler) Start(c echo.Context) error {
	provider := c.Param("provider")
	state := uuid.NewString()

	authURL, err := h.uc.AuthURL(provider, state)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(newAuthCookie(h.cfg.Cookie, middleware.CookieOAuthState, state, oauthStateCookieMaxAge))

	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes the provider round trip. Established users get a
// session and land on the app; first-time users get an onboarding token and
// land on the onboarding page. Every failure redirects to the error page so
// the browser never sees a bare JSON error mid-flow.
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider := c.Param("provider")

	stateCookie, err := c.Cookie(middleware.CookieOAuthState)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		h.logger.Warn("oauth callback state mismatch", "provider", provider)
		return h.redirectError(c)
	}
	c.SetCookie(newAuthCookie(h.cfg.Cookie, middleware.CookieOAuthState, "", 0))

	code := c.QueryParam("code")
	if code == "" {
		h.logger.Warn("oauth callback missing code", "provider", provider)
		return h.redirectError(c)
	}

	output, err := h.uc.Callback(c.Request().Context(), provider, code)
	if err != nil {
		h.logger.Warn("oauth callback failed", "provider", provider, "error", err.Error())
		return h.redirectError(c)
	}

	if output.Pending {
		setOnboardingCookie(c, h.cfg.Cookie, output.OnboardingToken)
		return c.Redirect(http.StatusFound, h.cfg.Frontend.OnboardingURL)
	}

	setRefreshCookie(c, h.cfg.Cookie, output.RefreshToken, h.tokenSvc.RefreshTokenDuration())

	return c.Redirect(http.StatusFound, h.cfg.Frontend.AppURL)
}

type onboardRequest struct {
	Username string `json:"username" validate:"required,min=5,max=32,username_charset"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// PendingUser returns the provisional profile created by the OAuth callback
// so the onboarding page can prefill its form.
func (h *OAuthHandler) PendingUser(c echo.Context) error {
	user, err := h.uc.PendingUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildProfile(user), "Pending user retrieved successfully")
}

// Onboard finalizes a first-time OAuth signup. On success the onboarding
// cookie is traded for a real session.
func (h *OAuthHandler) Onboard(c echo.Context) error {
	var req onboardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	output, err := h.uc.Onboard(c.Request().Context(), &usecase.OnboardInput{
		UserID:   middleware.UserID(c),
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	clearOnboardingCookie(c, h.cfg.Cookie)
	setRefreshCookie(c, h.cfg.Cookie, output.RefreshToken, h.tokenSvc.RefreshTokenDuration())

	return response.Success(c, http.StatusOK, map[string]any{
		"user":        buildProfile(output.User),
		"accessToken": output.AccessToken,
	}, "Onboarding completed successfully")
}

// CancelOnboarding discards the provisional account and clears the cookie.
func (h *OAuthHandler) CancelOnboarding(c echo.Context) error {
	if err := h.uc.CancelOnboarding(c.Request().Context(), middleware.UserID(c)); err != nil {
		return errors.WithStack(err)
	}

	clearOnboardingCookie(c, h.cfg.Cookie)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Onboarding cancelled"}, "Onboarding cancelled successfully")
}

func (h *OAuthHandler) redirectError(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.cfg.Frontend.ErrorURL)
}
