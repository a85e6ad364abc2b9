package postgres

import (
	"context"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create persists a comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCommentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindByID retrieves a comment with its author preloaded.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// Delete removes a comment. Nested replies and likes cascade in the database.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// ListTopLevel returns the comments with no parent on a post, newest first.
func (repo *commentRepository) ListTopLevel(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top-level comments")
	}

	return toCommentDomainSlice(commentModels), nil
}

// ListReplies returns the direct children of a comment, newest first.
func (repo *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comment replies")
	}

	return toCommentDomainSlice(commentModels), nil
}

// CountReplies returns the number of direct children of a comment.
func (repo *commentRepository) CountReplies(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("parent_id = ?", commentID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count comment replies")
	}

	return count, nil
}

// AddLike inserts the (user, comment) like row; an existing pair is a no-op.
func (repo *commentRepository) AddLike(ctx context.Context, userID, commentID uuid.UUID) error {
	likeM := &model.CommentLikeModel{
		CommentID: commentID,
		UserID:    userID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(likeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to add comment like")
	}

	return nil
}

// RemoveLike deletes the (user, comment) like row if present.
func (repo *commentRepository) RemoveLike(ctx context.Context, userID, commentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove comment like")
	}

	return nil
}

// HasLike reports whether the (user, comment) like row exists.
func (repo *commentRepository) HasLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentLikeModel{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check comment like")
	}

	return count > 0, nil
}

// CountLikes returns the number of likes on a comment.
func (repo *commentRepository) CountLikes(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentLikeModel{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count comment likes")
	}

	return count, nil
}

// ListLikerIDs returns the IDs of users who liked the comment.
func (repo *commentRepository) ListLikerIDs(ctx context.Context, commentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentLikeModel{}).
		Where("comment_id = ?", commentID).
		Order("created_at DESC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comment likers")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toCommentDomainSlice(models []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(models))
	for _, commentM := range models {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		PostID:    data.PostID,
		UserID:    data.UserID,
		ParentID:  data.ParentID,
		Content:   data.Content,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		PostID:    data.PostID,
		UserID:    data.UserID,
		ParentID:  data.ParentID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
