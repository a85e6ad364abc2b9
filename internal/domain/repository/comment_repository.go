package repository

import (
	"context"
	"errors"

	"yap/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment lookup finds no row.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the operations for comment persistence, including
// the comment-side like relation.
type CommentRepository interface {
	// Create persists a comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment with its author preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Delete removes a comment; nested replies and likes cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListTopLevel returns the comments with no parent on a post, newest first.
	ListTopLevel(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// ListReplies returns the direct children of a comment, newest first.
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error)

	// CountReplies returns the number of direct children of a comment.
	CountReplies(ctx context.Context, commentID uuid.UUID) (int64, error)

	// AddLike inserts the (user, comment) like row; an existing pair is a no-op.
	AddLike(ctx context.Context, userID, commentID uuid.UUID) error

	// RemoveLike deletes the (user, comment) like row if present.
	RemoveLike(ctx context.Context, userID, commentID uuid.UUID) error

	// HasLike reports whether the (user, comment) like row exists.
	HasLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error)

	// CountLikes returns the number of likes on a comment.
	CountLikes(ctx context.Context, commentID uuid.UUID) (int64, error)

	// ListLikerIDs returns the IDs of users who liked the comment.
	ListLikerIDs(ctx context.Context, commentID uuid.UUID) ([]uuid.UUID, error)
}
