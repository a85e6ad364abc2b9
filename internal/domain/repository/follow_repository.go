package repository

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository defines the operations for the follow edge set.
type FollowRepository interface {
	// Create inserts the (follower, followee) edge; an existing pair is a no-op.
	Create(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Delete removes the (follower, followee) edge if present.
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Exists reports whether follower currently follows followee.
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// ListFolloweeIDs returns the IDs of everyone the user follows.
	ListFolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)

	// ListFollowerIDs returns the IDs of everyone following the user.
	ListFollowerIDs(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error)
}
