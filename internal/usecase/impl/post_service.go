package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "yap/internal/delivery/context"
	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxPostContentLength = 2000
	defaultFeedLimit     = 20
	maxFeedLimit         = 50
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	imageStore service.ImageStore
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo   repository.PostRepository
	FollowRepo repository.FollowRepository
	ImageStore service.ImageStore
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo:   params.PostRepo,
		followRepo: params.FollowRepo,
		imageStore: params.ImageStore,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost stores the attached images and persists the post with the image
// locations in upload order.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*usecase.PostView, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" && len(input.Images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("post needs content or images")
	}
	if len(content) > maxPostContentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("post content too long")
	}
	if len(input.Images) > entity.MaxPostImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("at most %d images per post", entity.MaxPostImages))
	}

	images := make([]entity.PostImage, 0, len(input.Images))
	storedKeys := make([]string, 0, len(input.Images))
	for i, upload := range input.Images {
		stored, err := srv.imageStore.Upload(ctx, upload)
		if err != nil {
			srv.cleanupImages(ctx, storedKeys)

			return nil, errors.Wrap(err, "failed to store post image")
		}
		storedKeys = append(storedKeys, stored.Key)
		images = append(images, entity.PostImage{
			URL:      stored.URL,
			Key:      stored.Key,
			Position: i,
		})
	}

	post := &entity.Post{
		UserID:  input.UserID,
		Content: content,
		Images:  images,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.cleanupImages(ctx, storedKeys)

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Int("images", len(images)))

	// The fresh post has no likes or comments yet; load it back for the
	// author view with the preloaded author row.
	return srv.GetPost(ctx, post.ID, input.UserID)
}

// GetPost loads one post with the viewer's like metadata.
func (srv *postService) GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*usecase.PostView, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return srv.buildPostView(ctx, post, viewerID)
}

// DeletePost removes the post and its stored images. Owner only.
func (srv *postService) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to find post")
	}
	if post.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	// Blob cleanup is best-effort; an orphaned object is harmless.
	keys := make([]string, 0, len(post.Images))
	for _, image := range post.Images {
		keys = append(keys, image.Key)
	}
	srv.cleanupImages(ctx, keys)

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}

// ToggleLike flips the viewer's like and reports the resulting state.
func (srv *postService) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return false, domainerrors.ErrPostNotFound
		}

		return false, errors.Wrap(err, "failed to find post")
	}

	liked, err := srv.postRepo.HasLike(ctx, userID, postID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check post like")
	}

	if liked {
		if err := srv.postRepo.RemoveLike(ctx, userID, postID); err != nil {
			return false, errors.Wrap(err, "failed to remove post like")
		}

		return false, nil
	}

	if err := srv.postRepo.AddLike(ctx, userID, postID); err != nil {
		return false, errors.Wrap(err, "failed to add post like")
	}

	if post.UserID != userID {
		srv.publishEvent(ctx, &service.EngagementEvent{
			Type:        service.EventPostLiked,
			ActorID:     userID,
			RecipientID: post.UserID,
			SubjectID:   postID,
			Title:       "New like",
			Body:        "Someone liked your yap",
		})
	}

	return true, nil
}

// GetFeed returns posts from followed users and the viewer, newest first,
// created strictly before the cursor.
func (srv *postService) GetFeed(ctx context.Context, userID uuid.UUID, before time.Time, limit int) ([]*usecase.PostView, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if before.IsZero() {
		before = time.Now()
	}

	followeeIDs, err := srv.followRepo.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followees")
	}
	authorIDs := append(followeeIDs, userID)

	posts, err := srv.postRepo.ListFeed(ctx, authorIDs, before, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := srv.buildPostView(ctx, post, userID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// buildPostView annotates a post with the viewer's like metadata. Likers are
// exposed only to the post's author.
func (srv *postService) buildPostView(ctx context.Context, post *entity.Post, viewerID uuid.UUID) (*usecase.PostView, error) {
	likeCount, err := srv.postRepo.CountLikes(ctx, post.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count post likes")
	}

	commentCount, err := srv.postRepo.CountComments(ctx, post.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count post comments")
	}

	isLiked, err := srv.postRepo.HasLike(ctx, viewerID, post.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check post like")
	}

	var likers []uuid.UUID
	if post.UserID == viewerID {
		likers, err = srv.postRepo.ListLikerIDs(ctx, post.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list post likers")
		}
	}

	imageURLs := make([]string, 0, len(post.Images))
	for _, image := range post.Images {
		imageURLs = append(imageURLs, image.URL)
	}

	return &usecase.PostView{
		ID:           post.ID,
		Author:       buildUserView(post.Author, post.UserID),
		Content:      post.Content,
		Images:       imageURLs,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		IsLiked:      isLiked,
		Likers:       likers,
		CreatedAt:    post.CreatedAt,
	}, nil
}

// publishEvent sends an engagement event after the write committed. Failures
// are logged and never fail the request.
func (srv *postService) publishEvent(ctx context.Context, event *service.EngagementEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish engagement event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

func (srv *postService) cleanupImages(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := srv.imageStore.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete stored image", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// buildUserView shapes a user for embedding in post and comment views.
func buildUserView(user *entity.User, fallbackID uuid.UUID) *usecase.UserView {
	if user == nil {
		return &usecase.UserView{ID: fallbackID}
	}

	return &usecase.UserView{
		ID:        user.ID,
		Username:  user.UsernameString(),
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
	}
}
