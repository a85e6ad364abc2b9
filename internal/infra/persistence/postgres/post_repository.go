package postgres

import (
	"context"
	"time"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create persists a post together with its ordered images.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	for i := range postM.Images {
		post.Images[i].ID = postM.Images[i].ID
		post.Images[i].PostID = postM.ID
	}

	return nil
}

// FindByID retrieves a post with images and author preloaded.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Author").
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

// Delete removes a post. Comments, images and likes cascade in the database.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// ListFeed returns posts authored by any of authorIDs created strictly before
// the cursor, newest first, at most limit rows.
func (repo *postRepository) ListFeed(ctx context.Context, authorIDs []uuid.UUID, before time.Time, limit int) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Author").
		Where("user_id IN ? AND created_at < ?", authorIDs, before).
		Order("created_at DESC").
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feed posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// AddLike inserts the (user, post) like row. An existing pair is a no-op so
// the toggle stays race-tolerant.
func (repo *postRepository) AddLike(ctx context.Context, userID, postID uuid.UUID) error {
	likeM := &model.PostLikeModel{
		PostID: postID,
		UserID: userID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(likeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to add post like")
	}

	return nil
}

// RemoveLike deletes the (user, post) like row if present.
func (repo *postRepository) RemoveLike(ctx context.Context, userID, postID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove post like")
	}

	return nil
}

// HasLike reports whether the (user, post) like row exists.
func (repo *postRepository) HasLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PostLikeModel{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check post like")
	}

	return count > 0, nil
}

// CountLikes returns the number of likes on a post.
func (repo *postRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PostLikeModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count post likes")
	}

	return count, nil
}

// ListLikerIDs returns the IDs of users who liked the post.
func (repo *postRepository) ListLikerIDs(ctx context.Context, postID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PostLikeModel{}).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list post likers")
	}

	return ids, nil
}

// CountComments returns the total number of comments on a post, nested
// replies included since every comment row carries the root post ID.
func (repo *postRepository) CountComments(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count post comments")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	images := make([]entity.PostImage, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, entity.PostImage{
			ID:       imageM.ID,
			PostID:   imageM.PostID,
			URL:      imageM.URL,
			Key:      imageM.Key,
			Position: imageM.Position,
		})
	}

	return &entity.Post{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		Images:    images,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	images := make([]model.PostImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, model.PostImageModel{
			ID:       image.ID,
			PostID:   image.PostID,
			URL:      image.URL,
			Key:      image.Key,
			Position: image.Position,
		})
	}

	return &model.PostModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Content:   data.Content,
		Images:    images,
		CreatedAt: data.CreatedAt,
	}
}
