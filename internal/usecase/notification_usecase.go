package usecase

import (
	"context"

	"yap/internal/domain/service"
)

// NotificationUsecase defines the interface for delivering engagement events
// as push notifications. Consumed by the worker delivery.
type NotificationUsecase interface {
	// DeliverEngagementEvent fans the event out to the recipient's registered
	// devices and prunes tokens the push provider reports dead.
	DeliverEngagementEvent(ctx context.Context, event *service.EngagementEvent) error
}
