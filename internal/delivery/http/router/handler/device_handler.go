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

// DeviceHandler holds dependencies for push-device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{uc: uc, logger: logger}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	Platform string `json:"platform"`
}

// RegisterDevice stores or refreshes the caller's push token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}

	err := h.uc.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		UserID:   middleware.UserID(c),
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Device registered"}, "Device registered successfully")
}

// RemoveDevice drops the caller's push token, typically on sign-out.
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Device token is required")
	}

	if err := h.uc.RemoveDevice(c.Request().Context(), middleware.UserID(c), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed"}, "Device removed successfully")
}
