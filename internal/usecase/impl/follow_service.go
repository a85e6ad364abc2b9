package impl

import (
	"context"
	"log/slog"

	deliverycontext "yap/internal/delivery/context"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// followService implements the FollowUsecase interface.
type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	FollowRepo repository.FollowRepository
	UserRepo   repository.UserRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewFollowService is the constructor for followService.
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		followRepo: params.FollowRepo,
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFollow flips the edge and reports whether the follower now follows
// the followee.
func (srv *followService) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		return false, domainerrors.ErrValidationFailed.WithDetails("cannot follow yourself")
	}

	following, err := srv.followRepo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check follow edge")
	}

	if following {
		if err := srv.followRepo.Delete(ctx, followerID, followeeID); err != nil {
			return false, errors.Wrap(err, "failed to remove follow edge")
		}

		return false, nil
	}

	if err := srv.followRepo.Create(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrUserNotFound
		}

		return false, errors.Wrap(err, "failed to create follow edge")
	}

	srv.publishEvent(ctx, &service.EngagementEvent{
		Type:        service.EventUserFollowed,
		ActorID:     followerID,
		RecipientID: followeeID,
		SubjectID:   followerID,
		Title:       "New follower",
		Body:        "Someone started following you",
	})

	return true, nil
}

// ListFollowers returns everyone following the user.
func (srv *followService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]*usecase.UserView, error) {
	ids, err := srv.followRepo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return srv.resolveUsers(ctx, ids)
}

// ListFollowing returns everyone the user follows.
func (srv *followService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*usecase.UserView, error) {
	ids, err := srv.followRepo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followees")
	}

	return srv.resolveUsers(ctx, ids)
}

func (srv *followService) resolveUsers(ctx context.Context, ids []uuid.UUID) ([]*usecase.UserView, error) {
	if len(ids) == 0 {
		return []*usecase.UserView{}, nil
	}

	users, err := srv.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	views := make([]*usecase.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, buildUserView(user, user.ID))
	}

	return views, nil
}

func (srv *followService) publishEvent(ctx context.Context, event *service.EngagementEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish engagement event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
