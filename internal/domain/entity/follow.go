package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow is the directed edge "follower sees followee's posts in their feed".
// The (FollowerID, FolloweeID) pair is unique; following is an idempotent
// toggle, not an accumulating counter.
type Follow struct {
	FollowerID uuid.UUID
	FolloweeID uuid.UUID
	CreatedAt  time.Time
}
