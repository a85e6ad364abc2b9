package handler

import (
	"log/slog"
	"net/http"

	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the follow-graph handlers.
type UserHandler struct {
	uc     usecase.FollowUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.FollowUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// ToggleFollow flips the caller's follow edge towards another user.
func (h *UserHandler) ToggleFollow(c echo.Context) error {
	followeeID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	following, err := h.uc.ToggleFollow(c.Request().Context(), middleware.UserID(c), followeeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"following": following}, "Follow toggled successfully")
}

// ListFollowers returns the users following the given user.
func (h *UserHandler) ListFollowers(c echo.Context) error {
	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	views, err := h.uc.ListFollowers(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Followers retrieved successfully")
}

// ListFollowing returns the users the given user follows.
func (h *UserHandler) ListFollowing(c echo.Context) error {
	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	views, err := h.uc.ListFollowing(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Following retrieved successfully")
}
