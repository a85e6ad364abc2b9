package impl

import (
	"context"
	"testing"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	mockRepo "yap/internal/mocks/repository"
	mockService "yap/internal/mocks/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixture struct {
	svc         usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	postRepo    *mockRepo.MockPostRepository
	postUsecase *postServiceFixture
	publisher   *mockService.MockEventPublisher
}

func newCommentServiceForTest(t *testing.T) *commentServiceFixture {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	// The thread view embeds a post view, so the comment service carries a
	// real post service over its own mocks.
	postFixture := newPostServiceForTest(t)

	svc := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		PostRepo:    postRepo,
		PostUsecase: postFixture.svc,
		Publisher:   publisher,
		Logger:      discardLogger(),
	})

	return &commentServiceFixture{
		svc:         svc,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		postUsecase: postFixture,
		publisher:   publisher,
	}
}

// expectCommentView wires the repo calls buildCommentView makes for a
// non-author viewer.
func (f *commentServiceFixture) expectCommentView(ctx context.Context, commentID, viewerID uuid.UUID) {
	f.commentRepo.EXPECT().CountLikes(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().CountReplies(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().HasLike(ctx, viewerID, commentID).Return(false, nil)
}

func TestCommentService_GetThread_ReconstructsAncestorChain(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	viewerID := uuid.New()
	rootID := uuid.New()
	middleID := uuid.New()
	targetID := uuid.New()
	replyID := uuid.New()

	authorID := uuid.New()
	author := &entity.User{ID: authorID, Username: ptr("commenter")}

	root := &entity.Comment{ID: rootID, PostID: postID, UserID: authorID, Author: author, Content: "root"}
	middle := &entity.Comment{ID: middleID, PostID: postID, UserID: authorID, ParentID: &rootID, Author: author, Content: "middle"}
	target := &entity.Comment{ID: targetID, PostID: postID, UserID: authorID, ParentID: &middleID, Author: author, Content: "target"}
	reply := &entity.Comment{ID: replyID, PostID: postID, UserID: authorID, ParentID: &targetID, Author: author, Content: "reply"}

	f.commentRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
	f.commentRepo.EXPECT().FindByID(ctx, middleID).Return(middle, nil)
	f.commentRepo.EXPECT().FindByID(ctx, rootID).Return(root, nil)
	f.commentRepo.EXPECT().ListReplies(ctx, targetID).Return([]*entity.Comment{reply}, nil)

	// Root post view through the post service mocks.
	f.postUsecase.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:     postID,
		UserID: uuid.New(),
		Author: &entity.User{Username: ptr("poster")},
	}, nil)
	f.postUsecase.expectView(ctx, postID, viewerID, 0, 3, false)

	for _, id := range []uuid.UUID{rootID, middleID, targetID, replyID} {
		f.expectCommentView(ctx, id, viewerID)
	}

	thread, err := f.svc.GetThread(ctx, targetID, viewerID)

	require.NoError(t, err)
	assert.Equal(t, postID, thread.Post.ID)
	assert.Equal(t, targetID, thread.Comment.ID)

	// Ancestors are ordered root first and exclude the comment itself.
	require.Len(t, thread.ParentComments, 2)
	assert.Equal(t, rootID, thread.ParentComments[0].ID)
	assert.Equal(t, middleID, thread.ParentComments[1].ID)

	require.Len(t, thread.Replies, 1)
	assert.Equal(t, replyID, thread.Replies[0].ID)
}

func TestCommentService_GetThread_TopLevelHasNoAncestors(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	viewerID := uuid.New()
	commentID := uuid.New()

	comment := &entity.Comment{
		ID:     commentID,
		PostID: postID,
		UserID: uuid.New(),
		Author: &entity.User{Username: ptr("commenter")},
	}

	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(comment, nil)
	f.commentRepo.EXPECT().ListReplies(ctx, commentID).Return(nil, nil)
	f.postUsecase.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:     postID,
		UserID: uuid.New(),
		Author: &entity.User{Username: ptr("poster")},
	}, nil)
	f.postUsecase.expectView(ctx, postID, viewerID, 0, 1, false)
	f.expectCommentView(ctx, commentID, viewerID)

	thread, err := f.svc.GetThread(ctx, commentID, viewerID)

	require.NoError(t, err)
	assert.Empty(t, thread.ParentComments)
	assert.Empty(t, thread.Replies)
}

func TestCommentService_GetThread_CommentNotFound(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	commentID := uuid.New()
	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	thread, err := f.svc.GetThread(ctx, commentID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, thread)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestCommentService_CreateComment_TopLevel_NotifiesPostAuthor(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	postAuthorID := uuid.New()
	commenterID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: postAuthorID}, nil)
	f.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, postID, comment.PostID)
			assert.Nil(t, comment.ParentID)
			assert.Equal(t, "nice yap", comment.Content)
			comment.ID = commentID
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Run(func(ctx context.Context, event *service.EngagementEvent) {
			assert.Equal(t, service.EventPostCommented, event.Type)
			assert.Equal(t, postAuthorID, event.RecipientID)
		}).
		Return(nil)
	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:      commentID,
		PostID:  postID,
		UserID:  commenterID,
		Content: "nice yap",
		Author:  &entity.User{ID: commenterID, Username: ptr("commenter")},
	}, nil)
	f.commentRepo.EXPECT().CountLikes(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().CountReplies(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().HasLike(ctx, commenterID, commentID).Return(false, nil)
	f.commentRepo.EXPECT().ListLikerIDs(ctx, commentID).Return(nil, nil)

	view, err := f.svc.CreateComment(ctx, &usecase.CreateCommentInput{
		UserID:  commenterID,
		PostID:  postID,
		Content: " nice yap ",
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, view.ID)
	assert.Equal(t, "nice yap", view.Content)
}

func TestCommentService_CreateComment_Reply_StoresRootPostID(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	parentAuthorID := uuid.New()
	replierID := uuid.New()
	postID := uuid.New()
	parentID := uuid.New()
	commentID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)
	f.commentRepo.EXPECT().FindByID(ctx, parentID).Return(&entity.Comment{
		ID:     parentID,
		PostID: postID,
		UserID: parentAuthorID,
	}, nil)
	f.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			// Replies always carry the root post's ID, not their parent's.
			assert.Equal(t, postID, comment.PostID)
			require.NotNil(t, comment.ParentID)
			assert.Equal(t, parentID, *comment.ParentID)
			comment.ID = commentID
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Run(func(ctx context.Context, event *service.EngagementEvent) {
			assert.Equal(t, service.EventCommentReplied, event.Type)
			assert.Equal(t, parentAuthorID, event.RecipientID)
		}).
		Return(nil)
	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:       commentID,
		PostID:   postID,
		UserID:   replierID,
		ParentID: &parentID,
		Author:   &entity.User{ID: replierID, Username: ptr("replier")},
	}, nil)
	f.commentRepo.EXPECT().CountLikes(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().CountReplies(ctx, commentID).Return(0, nil)
	f.commentRepo.EXPECT().HasLike(ctx, replierID, commentID).Return(false, nil)
	f.commentRepo.EXPECT().ListLikerIDs(ctx, commentID).Return(nil, nil)

	view, err := f.svc.CreateComment(ctx, &usecase.CreateCommentInput{
		UserID:   replierID,
		PostID:   postID,
		ParentID: &parentID,
		Content:  "replying",
	})

	require.NoError(t, err)
	assert.Equal(t, postID, view.PostID)
}

func TestCommentService_CreateComment_ParentFromAnotherPost(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	parentID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)
	f.commentRepo.EXPECT().FindByID(ctx, parentID).Return(&entity.Comment{
		ID:     parentID,
		PostID: uuid.New(), // a different post
	}, nil)

	view, err := f.svc.CreateComment(ctx, &usecase.CreateCommentInput{
		UserID:   uuid.New(),
		PostID:   postID,
		ParentID: &parentID,
		Content:  "misplaced",
	})

	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	commentID := uuid.New()
	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:     commentID,
		UserID: uuid.New(),
	}, nil)

	err := f.svc.DeleteComment(ctx, uuid.New(), commentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCommentService_ToggleLike_AddsAndNotifies(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	likerID := uuid.New()
	commentID := uuid.New()

	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID, UserID: authorID}, nil)
	f.commentRepo.EXPECT().HasLike(ctx, likerID, commentID).Return(false, nil)
	f.commentRepo.EXPECT().AddLike(ctx, likerID, commentID).Return(nil)
	f.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Run(func(ctx context.Context, event *service.EngagementEvent) {
			assert.Equal(t, service.EventCommentLiked, event.Type)
			assert.Equal(t, authorID, event.RecipientID)
		}).
		Return(nil)

	liked, err := f.svc.ToggleLike(ctx, likerID, commentID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestCommentService_ToggleLike_RemovesWithoutNotifying(t *testing.T) {
	f := newCommentServiceForTest(t)
	ctx := context.Background()

	likerID := uuid.New()
	commentID := uuid.New()

	f.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID, UserID: uuid.New()}, nil)
	f.commentRepo.EXPECT().HasLike(ctx, likerID, commentID).Return(true, nil)
	f.commentRepo.EXPECT().RemoveLike(ctx, likerID, commentID).Return(nil)

	liked, err := f.svc.ToggleLike(ctx, likerID, commentID)

	require.NoError(t, err)
	assert.False(t, liked)
}
