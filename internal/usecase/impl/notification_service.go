package impl

import (
	"context"
	"log/slog"

	deliverycontext "yap/internal/delivery/context"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface. It runs
// in the worker process, consuming engagement events pushed by Pub/Sub.
type notificationService struct {
	deviceRepo repository.DeviceRepository
	sender     service.NotificationService
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService,
// injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Sender     service.NotificationService
	Logger     *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo: params.DeviceRepo,
		sender:     params.Sender,
		logger:     params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeliverEngagementEvent fans the event out to every device the recipient has
// registered and prunes tokens the push provider reports dead. A recipient
// with no devices is a successful no-op.
func (srv *notificationService) DeliverEngagementEvent(ctx context.Context, event *service.EngagementEvent) error {
	if event.Type == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event type is required")
	}

	tokens, err := srv.deviceRepo.ListTokensByUserID(ctx, event.RecipientID)
	if err != nil {
		return errors.Wrap(err, "failed to list device tokens")
	}
	if len(tokens) == 0 {
		srv.log(ctx).Debug("No devices registered for recipient",
			slog.Any("recipientID", event.RecipientID),
			slog.String("type", event.Type),
		)

		return nil
	}

	data := map[string]string{
		"eventId":   event.EventID,
		"type":      event.Type,
		"actorId":   event.ActorID.String(),
		"subjectId": event.SubjectID.String(),
	}

	successCount, failureCount, invalidTokens, err := srv.sender.SendBatchNotification(ctx, tokens, event.Title, event.Body, data)
	if err != nil {
		return errors.Wrap(err, "failed to send batch notification")
	}

	if len(invalidTokens) > 0 {
		// A token the provider rejects will never work again; drop it so the
		// next event does not retry it.
		if err := srv.deviceRepo.DeleteTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to prune invalid device tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Engagement event delivered",
		slog.String("type", event.Type),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid", len(invalidTokens)),
	)

	return nil
}
