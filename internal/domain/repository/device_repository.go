package repository

import (
	"context"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the operations for push-registration persistence.
type DeviceRepository interface {
	// Upsert registers a device token, re-binding it to the user when the
	// token already exists (a device handed to a different login).
	Upsert(ctx context.Context, device *entity.Device) error

	// DeleteByToken removes one registration of the user.
	DeleteByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// ListTokensByUserID returns every FCM token registered for the user.
	ListTokensByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)

	// DeleteTokens removes registrations the push provider reported invalid.
	DeleteTokens(ctx context.Context, fcmTokens []string) error
}
