package repository

import (
	"context"
	"errors"
	"time"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post lookup finds no row.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the operations for post persistence, including the
// post-side like relation (a unique (user, post) join row).
type PostRepository interface {
	// Create persists a post together with its ordered images.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post with images and author preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Delete removes a post; comments, images and likes cascade in the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListFeed returns posts authored by any of authorIDs created strictly
	// before the cursor, newest first, at most limit rows.
	ListFeed(ctx context.Context, authorIDs []uuid.UUID, before time.Time, limit int) ([]*entity.Post, error)

	// AddLike inserts the (user, post) like row. Inserting an existing pair
	// is a no-op, which makes the like toggle race-tolerant.
	AddLike(ctx context.Context, userID, postID uuid.UUID) error

	// RemoveLike deletes the (user, post) like row if present.
	RemoveLike(ctx context.Context, userID, postID uuid.UUID) error

	// HasLike reports whether the (user, post) like row exists.
	HasLike(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	// CountLikes returns the number of likes on a post.
	CountLikes(ctx context.Context, postID uuid.UUID) (int64, error)

	// ListLikerIDs returns the IDs of users who liked the post.
	ListLikerIDs(ctx context.Context, postID uuid.UUID) ([]uuid.UUID, error)

	// CountComments returns the total number of comments on a post.
	CountComments(ctx context.Context, postID uuid.UUID) (int64, error)
}
