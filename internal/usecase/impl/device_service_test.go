package impl

import (
	"context"
	"testing"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	mockRepo "yap/internal/mocks/repository"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceServiceForTest(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     discardLogger(),
	})

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	svc, deviceRepo := newDeviceServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "fcm-token-123", device.FCMToken)
			assert.Equal(t, "android", device.Platform)
		}).
		Return(nil)

	err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "  fcm-token-123  ",
		Platform: " Android ",
	})

	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_EmptyToken(t *testing.T) {
	svc, _ := newDeviceServiceForTest(t)

	err := svc.RegisterDevice(context.Background(), &usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		FCMToken: "   ",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	svc, deviceRepo := newDeviceServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	deviceRepo.EXPECT().DeleteByToken(ctx, userID, "fcm-token-123").Return(nil)

	err := svc.RemoveDevice(ctx, userID, "fcm-token-123")

	require.NoError(t, err)
}
