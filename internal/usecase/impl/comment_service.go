package impl

import (
	"context"
	"log/slog"
	"strings"

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

const maxCommentContentLength = 1000

// maxThreadDepth bounds the ancestor walk so that a corrupted parent chain
// cannot loop forever.
const maxThreadDepth = 128

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	postUsecase usecase.PostUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	PostUsecase usecase.PostUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		postUsecase: params.PostUsecase,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetThread reconstructs the context around one comment: the root post, the
// ancestor chain ordered root first, the comment itself, and its direct
// replies newest first.
func (srv *commentService) GetThread(ctx context.Context, commentID, viewerID uuid.UUID) (*usecase.ThreadView, error) {
	comment, err := srv.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	postView, err := srv.postUsecase.GetPost(ctx, comment.PostID, viewerID)
	if err != nil {
		return nil, err
	}

	parents, err := srv.collectAncestors(ctx, comment)
	if err != nil {
		return nil, err
	}
	parentViews := make([]*usecase.CommentView, 0, len(parents))
	for _, parent := range parents {
		view, err := srv.buildCommentView(ctx, parent, viewerID)
		if err != nil {
			return nil, err
		}
		parentViews = append(parentViews, view)
	}

	replies, err := srv.commentRepo.ListReplies(ctx, commentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list replies")
	}
	replyViews := make([]*usecase.CommentView, 0, len(replies))
	for _, reply := range replies {
		view, err := srv.buildCommentView(ctx, reply, viewerID)
		if err != nil {
			return nil, err
		}
		replyViews = append(replyViews, view)
	}

	commentView, err := srv.buildCommentView(ctx, comment, viewerID)
	if err != nil {
		return nil, err
	}

	return &usecase.ThreadView{
		Post:           postView,
		Comment:        commentView,
		ParentComments: parentViews,
		Replies:        replyViews,
	}, nil
}

// GetComments lists the top-level comments on a post, newest first.
func (srv *commentService) GetComments(ctx context.Context, postID, viewerID uuid.UUID) ([]*usecase.CommentView, error) {
	if _, err := srv.findPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListTopLevel(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	views := make([]*usecase.CommentView, 0, len(comments))
	for _, comment := range comments {
		view, err := srv.buildCommentView(ctx, comment, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// CreateComment persists a comment or reply. A reply's parent must belong to
// the same post, and the stored PostID is always the root post so that nested
// replies count toward the post's comment total.
func (srv *commentService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*usecase.CommentView, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment content is required")
	}
	if len(content) > maxCommentContentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment content too long")
	}

	post, err := srv.findPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	var parent *entity.Comment
	if input.ParentID != nil {
		parent, err = srv.findComment(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != input.PostID {
			return nil, domainerrors.ErrValidationFailed.WithDetails("parent comment belongs to another post")
		}
	}

	comment := &entity.Comment{
		PostID:   input.PostID,
		UserID:   input.UserID,
		ParentID: input.ParentID,
		Content:  content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", comment.ID), slog.Any("postID", input.PostID))

	srv.notifyCommentCreated(ctx, input.UserID, post, parent, comment)

	// Reload for the preloaded author row.
	created, err := srv.findComment(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	return srv.buildCommentView(ctx, created, input.UserID)
}

// DeleteComment removes a comment and its nested replies. Owner only.
func (srv *commentService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := srv.findComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}

// ToggleLike flips the viewer's like and reports the resulting state.
func (srv *commentService) ToggleLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	comment, err := srv.findComment(ctx, commentID)
	if err != nil {
		return false, err
	}

	liked, err := srv.commentRepo.HasLike(ctx, userID, commentID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check comment like")
	}

	if liked {
		if err := srv.commentRepo.RemoveLike(ctx, userID, commentID); err != nil {
			return false, errors.Wrap(err, "failed to remove comment like")
		}

		return false, nil
	}

	if err := srv.commentRepo.AddLike(ctx, userID, commentID); err != nil {
		return false, errors.Wrap(err, "failed to add comment like")
	}

	if comment.UserID != userID {
		srv.publishEvent(ctx, &service.EngagementEvent{
			Type:        service.EventCommentLiked,
			ActorID:     userID,
			RecipientID: comment.UserID,
			SubjectID:   commentID,
			Title:       "New like",
			Body:        "Someone liked your comment",
		})
	}

	return true, nil
}

func (srv *commentService) findComment(ctx context.Context, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

func (srv *commentService) findPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// collectAncestors walks the parent chain of a comment and returns it ordered
// root first, excluding the comment itself.
func (srv *commentService) collectAncestors(ctx context.Context, comment *entity.Comment) ([]*entity.Comment, error) {
	var chain []*entity.Comment
	parentID := comment.ParentID
	for depth := 0; parentID != nil; depth++ {
		if depth >= maxThreadDepth {
			return nil, errors.Errorf("comment thread deeper than %d levels", maxThreadDepth)
		}

		parent, err := srv.findComment(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, parent)
		parentID = parent.ParentID
	}

	// Reverse into root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// buildCommentView annotates a comment with the viewer's like metadata.
// Likers are exposed only to the comment's author.
func (srv *commentService) buildCommentView(ctx context.Context, comment *entity.Comment, viewerID uuid.UUID) (*usecase.CommentView, error) {
	likeCount, err := srv.commentRepo.CountLikes(ctx, comment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count comment likes")
	}

	replyCount, err := srv.commentRepo.CountReplies(ctx, comment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count replies")
	}

	isLiked, err := srv.commentRepo.HasLike(ctx, viewerID, comment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check comment like")
	}

	var likers []uuid.UUID
	if comment.UserID == viewerID {
		likers, err = srv.commentRepo.ListLikerIDs(ctx, comment.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list comment likers")
		}
	}

	return &usecase.CommentView{
		ID:         comment.ID,
		PostID:     comment.PostID,
		ParentID:   comment.ParentID,
		Author:     buildUserView(comment.Author, comment.UserID),
		Content:    comment.Content,
		ReplyCount: replyCount,
		LikeCount:  likeCount,
		IsLiked:    isLiked,
		Likers:     likers,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

// notifyCommentCreated publishes the engagement events a new comment raises:
// a reply notifies the parent comment's author, a top-level comment notifies
// the post's author. Self-engagement is skipped.
func (srv *commentService) notifyCommentCreated(ctx context.Context, actorID uuid.UUID, post *entity.Post, parent *entity.Comment, comment *entity.Comment) {
	if parent != nil {
		if parent.UserID != actorID {
			srv.publishEvent(ctx, &service.EngagementEvent{
				Type:        service.EventCommentReplied,
				ActorID:     actorID,
				RecipientID: parent.UserID,
				SubjectID:   comment.ID,
				Title:       "New reply",
				Body:        "Someone replied to your comment",
			})
		}

		return
	}

	if post.UserID != actorID {
		srv.publishEvent(ctx, &service.EngagementEvent{
			Type:        service.EventPostCommented,
			ActorID:     actorID,
			RecipientID: post.UserID,
			SubjectID:   comment.ID,
			Title:       "New comment",
			Body:        "Someone commented on your yap",
		})
	}
}

func (srv *commentService) publishEvent(ctx context.Context, event *service.EngagementEvent) {
	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish engagement event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
