package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

type postServiceFixture struct {
	svc        usecase.PostUsecase
	postRepo   *mockRepo.MockPostRepository
	followRepo *mockRepo.MockFollowRepository
	imageStore *mockService.MockImageStore
	publisher  *mockService.MockEventPublisher
}

func newPostServiceForTest(t *testing.T) *postServiceFixture {
	postRepo := mockRepo.NewMockPostRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	imageStore := mockService.NewMockImageStore(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewPostService(PostServiceParams{
		PostRepo:   postRepo,
		FollowRepo: followRepo,
		ImageStore: imageStore,
		Publisher:  publisher,
		Logger:     discardLogger(),
	})

	return &postServiceFixture{
		svc:        svc,
		postRepo:   postRepo,
		followRepo: followRepo,
		imageStore: imageStore,
		publisher:  publisher,
	}
}

// expectView wires the repo calls buildPostView makes for a non-author viewer.
func (f *postServiceFixture) expectView(ctx context.Context, postID, viewerID uuid.UUID, likeCount, commentCount int64, isLiked bool) {
	f.postRepo.EXPECT().CountLikes(ctx, postID).Return(likeCount, nil)
	f.postRepo.EXPECT().CountComments(ctx, postID).Return(commentCount, nil)
	f.postRepo.EXPECT().HasLike(ctx, viewerID, postID).Return(isLiked, nil)
}

func TestPostService_CreatePost_WithImages(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	postID := uuid.New()

	f.imageStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("service.ImageUpload")).
		Return(&service.StoredImage{URL: "https://cdn.example.com/posts/a.jpg", Key: "posts/a.jpg"}, nil)

	f.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			assert.Equal(t, authorID, post.UserID)
			assert.Equal(t, "hello world", post.Content)
			require.Len(t, post.Images, 1)
			assert.Equal(t, "posts/a.jpg", post.Images[0].Key)
			assert.Equal(t, 0, post.Images[0].Position)
			post.ID = postID
		}).
		Return(nil)

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:      postID,
		UserID:  authorID,
		Content: "hello world",
		Images:  []entity.PostImage{{URL: "https://cdn.example.com/posts/a.jpg", Key: "posts/a.jpg"}},
		Author:  &entity.User{ID: authorID, Username: ptr("author")},
	}, nil)
	f.expectView(ctx, postID, authorID, 0, 0, false)
	f.postRepo.EXPECT().ListLikerIDs(ctx, postID).Return(nil, nil)

	view, err := f.svc.CreatePost(ctx, &usecase.CreatePostInput{
		UserID:  authorID,
		Content: "  hello world  ",
		Images: []service.ImageUpload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("fake")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, postID, view.ID)
	assert.Equal(t, []string{"https://cdn.example.com/posts/a.jpg"}, view.Images)
	assert.Equal(t, "author", view.Author.Username)
}

func TestPostService_CreatePost_EmptyPost(t *testing.T) {
	f := newPostServiceForTest(t)

	view, err := f.svc.CreatePost(context.Background(), &usecase.CreatePostInput{
		UserID:  uuid.New(),
		Content: "   ",
	})

	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPostService_CreatePost_TooManyImages(t *testing.T) {
	f := newPostServiceForTest(t)

	images := make([]service.ImageUpload, entity.MaxPostImages+1)
	for i := range images {
		images[i] = service.ImageUpload{Filename: "a.jpg", Reader: strings.NewReader("fake")}
	}

	view, err := f.svc.CreatePost(context.Background(), &usecase.CreatePostInput{
		UserID:  uuid.New(),
		Content: "too many",
		Images:  images,
	})

	require.Error(t, err)
	assert.Nil(t, view)
}

func TestPostService_CreatePost_StorageFailureCleansUp(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	f.imageStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("service.ImageUpload")).
		Return(&service.StoredImage{URL: "u1", Key: "posts/one.jpg"}, nil).
		Once()
	f.imageStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("service.ImageUpload")).
		Return(nil, assert.AnError).
		Once()
	// The first upload must be rolled back.
	f.imageStore.EXPECT().Delete(ctx, "posts/one.jpg").Return(nil)

	view, err := f.svc.CreatePost(ctx, &usecase.CreatePostInput{
		UserID:  uuid.New(),
		Content: "two images",
		Images: []service.ImageUpload{
			{Filename: "one.jpg", Reader: strings.NewReader("fake")},
			{Filename: "two.jpg", Reader: strings.NewReader("fake")},
		},
	})

	require.Error(t, err)
	assert.Nil(t, view)
}

func TestPostService_GetPost_AuthorSeesLikers(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	postID := uuid.New()
	likerID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:     postID,
		UserID: authorID,
		Author: &entity.User{ID: authorID, Username: ptr("author")},
	}, nil)
	f.expectView(ctx, postID, authorID, 1, 0, false)
	f.postRepo.EXPECT().ListLikerIDs(ctx, postID).Return([]uuid.UUID{likerID}, nil)

	view, err := f.svc.GetPost(ctx, postID, authorID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{likerID}, view.Likers)
}

func TestPostService_GetPost_OtherViewerGetsNoLikers(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	viewerID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:     postID,
		UserID: uuid.New(),
		Author: &entity.User{Username: ptr("author")},
	}, nil)
	f.expectView(ctx, postID, viewerID, 3, 2, true)

	view, err := f.svc.GetPost(ctx, postID, viewerID)

	require.NoError(t, err)
	assert.Nil(t, view.Likers)
	assert.True(t, view.IsLiked)
	assert.Equal(t, int64(3), view.LikeCount)
	assert.Equal(t, int64(2), view.CommentCount)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	f.postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	view, err := f.svc.GetPost(ctx, postID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_DeletePost_Success(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	postID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{
		ID:     postID,
		UserID: authorID,
		Images: []entity.PostImage{{Key: "posts/a.jpg"}, {Key: "posts/b.jpg"}},
	}, nil)
	f.postRepo.EXPECT().Delete(ctx, postID).Return(nil)
	f.imageStore.EXPECT().Delete(ctx, "posts/a.jpg").Return(nil)
	f.imageStore.EXPECT().Delete(ctx, "posts/b.jpg").Return(nil)

	err := f.svc.DeletePost(ctx, authorID, postID)

	require.NoError(t, err)
}

func TestPostService_DeletePost_NotOwner(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)

	err := f.svc.DeletePost(ctx, uuid.New(), postID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPostService_ToggleLike_AddsAndNotifies(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	likerID := uuid.New()
	postID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: authorID}, nil)
	f.postRepo.EXPECT().HasLike(ctx, likerID, postID).Return(false, nil)
	f.postRepo.EXPECT().AddLike(ctx, likerID, postID).Return(nil)
	f.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Run(func(ctx context.Context, event *service.EngagementEvent) {
			assert.Equal(t, service.EventPostLiked, event.Type)
			assert.Equal(t, likerID, event.ActorID)
			assert.Equal(t, authorID, event.RecipientID)
			assert.Equal(t, postID, event.SubjectID)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(nil)

	liked, err := f.svc.ToggleLike(ctx, likerID, postID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestPostService_ToggleLike_RemovesWithoutNotifying(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	likerID := uuid.New()
	postID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: uuid.New()}, nil)
	f.postRepo.EXPECT().HasLike(ctx, likerID, postID).Return(true, nil)
	f.postRepo.EXPECT().RemoveLike(ctx, likerID, postID).Return(nil)

	liked, err := f.svc.ToggleLike(ctx, likerID, postID)

	require.NoError(t, err)
	assert.False(t, liked)
}

func TestPostService_ToggleLike_OwnPostSkipsEvent(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	authorID := uuid.New()
	postID := uuid.New()

	f.postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID, UserID: authorID}, nil)
	f.postRepo.EXPECT().HasLike(ctx, authorID, postID).Return(false, nil)
	f.postRepo.EXPECT().AddLike(ctx, authorID, postID).Return(nil)

	liked, err := f.svc.ToggleLike(ctx, authorID, postID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestPostService_GetFeed_IncludesSelf(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	viewerID := uuid.New()
	followeeID := uuid.New()
	before := time.Now()

	post := &entity.Post{
		ID:     uuid.New(),
		UserID: followeeID,
		Author: &entity.User{ID: followeeID, Username: ptr("followee")},
	}

	f.followRepo.EXPECT().ListFolloweeIDs(ctx, viewerID).Return([]uuid.UUID{followeeID}, nil)
	f.postRepo.EXPECT().
		ListFeed(ctx, mock.MatchedBy(func(authorIDs []uuid.UUID) bool {
			return len(authorIDs) == 2 && authorIDs[0] == followeeID && authorIDs[1] == viewerID
		}), before, 20).
		Return([]*entity.Post{post}, nil)
	f.expectView(ctx, post.ID, viewerID, 0, 0, false)

	views, err := f.svc.GetFeed(ctx, viewerID, before, 0)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, post.ID, views[0].ID)
}

func TestPostService_GetFeed_CapsLimit(t *testing.T) {
	f := newPostServiceForTest(t)
	ctx := context.Background()

	viewerID := uuid.New()
	before := time.Now()

	f.followRepo.EXPECT().ListFolloweeIDs(ctx, viewerID).Return(nil, nil)
	f.postRepo.EXPECT().
		ListFeed(ctx, mock.AnythingOfType("[]uuid.UUID"), before, 50).
		Return(nil, nil)

	views, err := f.svc.GetFeed(ctx, viewerID, before, 500)

	require.NoError(t, err)
	assert.Empty(t, views)
}
