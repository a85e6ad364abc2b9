package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommentView is a comment annotated with the viewer's like metadata.
type CommentView struct {
	ID       uuid.UUID  `json:"id"`
	PostID   uuid.UUID  `json:"postId"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
	Author   *UserView  `json:"author"`
	Content  string     `json:"content"`
	// ReplyCount counts direct children only.
	ReplyCount int64 `json:"replyCount"`
	LikeCount  int64 `json:"likeCount"`
	IsLiked    bool  `json:"isLiked"`
	// Likers is populated only when the viewer authored the comment.
	Likers    []uuid.UUID `json:"likers,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ThreadView reconstructs the context around one comment: the root post, the
// ancestor chain ordered root first, and the direct replies newest first.
type ThreadView struct {
	Post           *PostView      `json:"post"`
	Comment        *CommentView   `json:"comment"`
	ParentComments []*CommentView `json:"parentComments"`
	Replies        []*CommentView `json:"replies"`
}

// CreateCommentInput defines the data required to create a comment.
// A nil ParentID makes a top-level comment.
type CreateCommentInput struct {
	UserID   uuid.UUID
	PostID   uuid.UUID
	ParentID *uuid.UUID
	Content  string
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// GetThread reconstructs the full context of a comment for the viewer.
	GetThread(ctx context.Context, commentID, viewerID uuid.UUID) (*ThreadView, error)

	// GetComments lists the top-level comments on a post, newest first.
	GetComments(ctx context.Context, postID, viewerID uuid.UUID) ([]*CommentView, error)

	CreateComment(ctx context.Context, input *CreateCommentInput) (*CommentView, error)

	// DeleteComment removes a comment and its nested replies. Owner only.
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error

	// ToggleLike flips the viewer's like and reports the resulting state.
	ToggleLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error)
}
