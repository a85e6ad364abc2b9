package handler

import (
	"log/slog"
	"net/http"

	"yap/config"
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for password-based auth and session handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=5,max=32,username_charset"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Signup handles the password registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"userId": output.User.ID.String(),
	}, "User registered successfully")
}

// Login handles the password login request. The refresh token travels in an
// httpOnly cookie, never in the JSON body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setRefreshCookie(c, h.cfg.Cookie, output.RefreshToken, h.tokenSvc.RefreshTokenDuration())

	return response.Success(c, http.StatusOK, map[string]any{
		"user":        buildProfile(output.User),
		"accessToken": output.AccessToken,
	}, "Login successful")
}

// Refresh exchanges the refresh token cookie for a fresh access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieRefreshToken)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "REFRESH_TOKEN_INVALID", "Refresh token is missing")
	}

	output, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"accessToken": output.AccessToken,
	}, "Token refreshed successfully")
}

// Logout revokes the current session and clears the refresh cookie. The
// cookie must clear only after the revocation is durable, so a client is
// never told a session ended while its token still works.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieRefreshToken)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Refresh token is missing")
	}

	if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
		return errors.WithStack(err)
	}

	clearRefreshCookie(c, h.cfg.Cookie)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buildProfile(user), "Profile retrieved successfully")
}
