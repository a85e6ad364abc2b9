package usecase

import (
	"context"
	"time"

	"yap/internal/domain/service"

	"github.com/google/uuid"
)

// UserView is the outward shape of a user on posts and comments. It never
// carries the password hash or email.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// PostView is a post annotated with the viewer's like metadata.
type PostView struct {
	ID           uuid.UUID `json:"id"`
	Author       *UserView `json:"author"`
	Content      string    `json:"content"`
	Images       []string  `json:"images"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	IsLiked      bool      `json:"isLiked"`
	// Likers is populated only when the viewer authored the post.
	Likers    []uuid.UUID `json:"likers,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	UserID  uuid.UUID
	Content string
	Images  []service.ImageUpload
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	CreatePost(ctx context.Context, input *CreatePostInput) (*PostView, error)

	// GetPost loads one post with the viewer's like metadata.
	GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*PostView, error)

	// DeletePost removes the post and its stored images. Owner only.
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error

	// ToggleLike flips the viewer's like and reports the resulting state.
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	// GetFeed returns posts from followed users and the viewer, newest first,
	// created strictly before the cursor.
	GetFeed(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]*PostView, error)
}
