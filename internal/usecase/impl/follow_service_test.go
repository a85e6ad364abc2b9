package impl

import (
	"context"
	"testing"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/service"
	mockRepo "yap/internal/mocks/repository"
	mockService "yap/internal/mocks/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type followServiceFixture struct {
	svc        usecase.FollowUsecase
	followRepo *mockRepo.MockFollowRepository
	userRepo   *mockRepo.MockUserRepository
	publisher  *mockService.MockEventPublisher
}

func newFollowServiceForTest(t *testing.T) *followServiceFixture {
	followRepo := mockRepo.NewMockFollowRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewFollowService(FollowServiceParams{
		FollowRepo: followRepo,
		UserRepo:   userRepo,
		Publisher:  publisher,
		Logger:     discardLogger(),
	})

	return &followServiceFixture{svc: svc, followRepo: followRepo, userRepo: userRepo, publisher: publisher}
}

func TestFollowService_ToggleFollow_CreatesAndNotifies(t *testing.T) {
	f := newFollowServiceForTest(t)
	ctx := context.Background()

	followerID := uuid.New()
	followeeID := uuid.New()

	f.followRepo.EXPECT().Exists(ctx, followerID, followeeID).Return(false, nil)
	f.followRepo.EXPECT().Create(ctx, followerID, followeeID).Return(nil)
	f.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Run(func(ctx context.Context, event *service.EngagementEvent) {
			assert.Equal(t, service.EventUserFollowed, event.Type)
			assert.Equal(t, followerID, event.ActorID)
			assert.Equal(t, followeeID, event.RecipientID)
		}).
		Return(nil)

	following, err := f.svc.ToggleFollow(ctx, followerID, followeeID)

	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowService_ToggleFollow_RemovesWithoutNotifying(t *testing.T) {
	f := newFollowServiceForTest(t)
	ctx := context.Background()

	followerID := uuid.New()
	followeeID := uuid.New()

	f.followRepo.EXPECT().Exists(ctx, followerID, followeeID).Return(true, nil)
	f.followRepo.EXPECT().Delete(ctx, followerID, followeeID).Return(nil)

	following, err := f.svc.ToggleFollow(ctx, followerID, followeeID)

	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowService_ToggleFollow_SelfFollow(t *testing.T) {
	f := newFollowServiceForTest(t)

	userID := uuid.New()
	following, err := f.svc.ToggleFollow(context.Background(), userID, userID)

	require.Error(t, err)
	assert.False(t, following)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFollowService_ListFollowers(t *testing.T) {
	f := newFollowServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	followerID := uuid.New()

	f.followRepo.EXPECT().ListFollowerIDs(ctx, userID).Return([]uuid.UUID{followerID}, nil)
	f.userRepo.EXPECT().ListByIDs(ctx, []uuid.UUID{followerID}).Return([]*entity.User{
		{ID: followerID, Username: ptr("follower"), Email: ptr("secret@example.com")},
	}, nil)

	views, err := f.svc.ListFollowers(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, followerID, views[0].ID)
	assert.Equal(t, "follower", views[0].Username)
}

func TestFollowService_ListFollowing_Empty(t *testing.T) {
	f := newFollowServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	f.followRepo.EXPECT().ListFolloweeIDs(ctx, userID).Return(nil, nil)

	views, err := f.svc.ListFollowing(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, views)
}
