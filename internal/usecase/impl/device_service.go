package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "yap/internal/delivery/context"
	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice binds an FCM token to the user, stealing it from a previous
// login when the device changed hands.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) error {
	token := strings.TrimSpace(input.FCMToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	}

	device := &entity.Device{
		UserID:   input.UserID,
		FCMToken: token,
		Platform: strings.ToLower(strings.TrimSpace(input.Platform)),
	}
	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered", slog.Any("userID", input.UserID), slog.String("platform", device.Platform))

	return nil
}

// RemoveDevice drops one registration of the user. Removing a token that is
// already gone is a no-op.
func (srv *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	}

	if err := srv.deviceRepo.DeleteByToken(ctx, userID, token); err != nil {
		return errors.Wrap(err, "failed to remove device")
	}

	return nil
}
