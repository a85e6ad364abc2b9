package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is one push-notification registration for a user. A user may have
// several (phone, tablet, browser); the FCM token is unique per device.
type Device struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string // Firebase Cloud Messaging registration token.
	Platform  string // "ios", "android" or "web"; informational only.
	CreatedAt time.Time
	UpdatedAt time.Time
}
