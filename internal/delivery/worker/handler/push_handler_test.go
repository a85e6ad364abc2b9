package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"yap/internal/domain/service"
	mockRepo "yap/internal/mocks/repository"
	mockService "yap/internal/mocks/service"
	"yap/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T) (*PushHandler, *mockRepo.MockDeviceRepository, *mockService.MockNotificationService) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	sender := mockService.NewMockNotificationService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notificationSvc := impl.NewNotificationService(impl.NotificationServiceParams{
		DeviceRepo: deviceRepo,
		Sender:     sender,
		Logger:     logger,
	})

	return &PushHandler{
		verifyPushAuth:  false,
		logger:          logger,
		notificationSvc: notificationSvc,
	}, deviceRepo, sender
}

func pushRequest(t *testing.T, event *service.EngagementEvent, attributes map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/engagement"

	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	h, deviceRepo, sender := newPushHandlerForTest(t)

	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventPostCommented,
		ActorID:     uuid.New(),
		RecipientID: uuid.New(),
		SubjectID:   uuid.New(),
		Title:       "New comment",
		Body:        "Someone commented on your yap",
		RequestID:   uuid.NewString(),
	}

	deviceRepo.EXPECT().
		ListTokensByUserID(mock.Anything, event.RecipientID).
		Return([]string{"token-1"}, nil)
	sender.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1"}, event.Title, event.Body, mock.Anything).
		Return(1, 0, nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RetryableFailure(t *testing.T) {
	h, deviceRepo, _ := newPushHandlerForTest(t)

	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventUserFollowed,
		ActorID:     uuid.New(),
		RecipientID: uuid.New(),
		SubjectID:   uuid.New(),
	}

	deviceRepo.EXPECT().
		ListTokensByUserID(mock.Anything, event.RecipientID).
		Return(nil, errors.New("connection refused"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEventDropped(t *testing.T) {
	h, _, _ := newPushHandlerForTest(t)

	// An event with no type can never be delivered; retrying is pointless.
	event := &service.EngagementEvent{
		EventID:     uuid.NewString(),
		RecipientID: uuid.New(),
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event, nil), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	h, _, _ := newPushHandlerForTest(t)

	var msg PubSubMessage
	msg.Message.Data = "not-base64!!!"
	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_PrefersAttributes(t *testing.T) {
	h, _, _ := newPushHandlerForTest(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "attr-id"}
	event := &service.EngagementEvent{RequestID: "event-id"}

	got := h.extractRequestID(t.Context(), &msg, event)
	assert.Equal(t, "attr-id", got)

	msg.Message.Attributes = nil
	got = h.extractRequestID(t.Context(), &msg, event)
	assert.Equal(t, "event-id", got)

	event.RequestID = ""
	got = h.extractRequestID(t.Context(), &msg, event)
	assert.NotEmpty(t, got)
}
