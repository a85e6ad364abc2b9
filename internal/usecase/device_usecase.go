package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a device for push.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	FCMToken string
	Platform string
}

// DeviceUsecase defines the interface for push-registration operations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) error
	RemoveDevice(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
