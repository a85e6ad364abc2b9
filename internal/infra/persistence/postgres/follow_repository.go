package postgres

import (
	"context"

	"yap/internal/domain/repository"
	"yap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// Create inserts the (follower, followee) edge; an existing pair is a no-op.
func (repo *followRepository) Create(ctx context.Context, followerID, followeeID uuid.UUID) error {
	followM := &model.FollowModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(followM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create follow")
	}

	return nil
}

// Delete removes the (follower, followee) edge if present.
func (repo *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete follow")
	}

	return nil
}

// Exists reports whether follower currently follows followee.
func (repo *followRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return count > 0, nil
}

// ListFolloweeIDs returns the IDs of everyone the user follows.
func (repo *followRepository) ListFolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followees")
	}

	return ids, nil
}

// ListFollowerIDs returns the IDs of everyone following the user.
func (repo *followRepository) ListFollowerIDs(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("followee_id = ?", followeeID).
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return ids, nil
}
