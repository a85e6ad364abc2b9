package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FollowUsecase defines the interface for the follow graph.
type FollowUsecase interface {
	// ToggleFollow flips the edge and reports whether the follower now
	// follows the followee. Following yourself is rejected.
	ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// ListFollowers returns everyone following the user.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]*UserView, error)

	// ListFollowing returns everyone the user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*UserView, error)
}
