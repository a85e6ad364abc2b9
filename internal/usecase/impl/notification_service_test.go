package impl

import (
	"context"
	"testing"

	"yap/internal/domain/service"
	mockRepo "yap/internal/mocks/repository"
	mockService "yap/internal/mocks/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockDeviceRepository, *mockService.MockNotificationService) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	sender := mockService.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		DeviceRepo: deviceRepo,
		Sender:     sender,
		Logger:     discardLogger(),
	})

	return svc, deviceRepo, sender
}

func TestNotificationService_DeliverEngagementEvent_Success(t *testing.T) {
	svc, deviceRepo, sender := newNotificationServiceForTest(t)
	ctx := context.Background()

	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventPostLiked,
		ActorID:     uuid.New(),
		RecipientID: uuid.New(),
		SubjectID:   uuid.New(),
		Title:       "New like",
		Body:        "Someone liked your yap",
	}

	tokens := []string{"token-1", "token-2"}
	deviceRepo.EXPECT().ListTokensByUserID(ctx, event.RecipientID).Return(tokens, nil)
	sender.EXPECT().
		SendBatchNotification(ctx, tokens, "New like", "Someone liked your yap", map[string]string{
			"eventId":   event.EventID,
			"type":      service.EventPostLiked,
			"actorId":   event.ActorID.String(),
			"subjectId": event.SubjectID.String(),
		}).
		Return(2, 0, nil, nil)

	err := svc.DeliverEngagementEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverEngagementEvent_PrunesInvalidTokens(t *testing.T) {
	svc, deviceRepo, sender := newNotificationServiceForTest(t)
	ctx := context.Background()

	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventUserFollowed,
		ActorID:     uuid.New(),
		RecipientID: uuid.New(),
		SubjectID:   uuid.New(),
		Title:       "New follower",
		Body:        "Someone started following you",
	}

	tokens := []string{"live-token", "dead-token"}
	deviceRepo.EXPECT().ListTokensByUserID(ctx, event.RecipientID).Return(tokens, nil)
	sender.EXPECT().
		SendBatchNotification(ctx, tokens, event.Title, event.Body, eventDataFor(event)).
		Return(1, 1, []string{"dead-token"}, nil)
	deviceRepo.EXPECT().DeleteTokens(ctx, []string{"dead-token"}).Return(nil)

	err := svc.DeliverEngagementEvent(ctx, event)

	require.NoError(t, err)
}

func eventDataFor(event *service.EngagementEvent) map[string]string {
	return map[string]string{
		"eventId":   event.EventID,
		"type":      event.Type,
		"actorId":   event.ActorID.String(),
		"subjectId": event.SubjectID.String(),
	}
}

func TestNotificationService_DeliverEngagementEvent_NoDevices(t *testing.T) {
	svc, deviceRepo, _ := newNotificationServiceForTest(t)
	ctx := context.Background()

	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventCommentLiked,
		RecipientID: uuid.New(),
	}

	deviceRepo.EXPECT().ListTokensByUserID(ctx, event.RecipientID).Return(nil, nil)

	err := svc.DeliverEngagementEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverEngagementEvent_MissingType(t *testing.T) {
	svc, _, _ := newNotificationServiceForTest(t)

	err := svc.DeliverEngagementEvent(context.Background(), &service.EngagementEvent{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid input")
}
