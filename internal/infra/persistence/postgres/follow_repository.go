package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followRepository implements the domain.FollowRepository interface using GORM.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create persists a follow relation. The composite primary key rejects
// duplicates that race past the Exists check.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyFollowing
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	return nil
}

// Exists reports whether follower already follows following.
func (repo *followRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check follow existence")
	}

	return count > 0, nil
}

// Delete removes the follow relation.
func (repo *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// ListFollowers returns a page of users following userID, follower preloaded.
func (repo *followRepository) ListFollowers(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error) {
	var total int64
	base := repo.db.WithContext(ctx).Model(&model.FollowModel{}).Where("following_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count followers")
	}

	var followMs []*model.FollowModel
	err := repo.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", userID).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&followMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list followers")
	}

	follows := make([]*entity.Follow, 0, len(followMs))
	for _, followM := range followMs {
		follows = append(follows, toFollowDomain(followM))
	}

	return follows, total, nil
}

// ListFollowings returns a page of users userID follows, following preloaded.
func (repo *followRepository) ListFollowings(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error) {
	var total int64
	base := repo.db.WithContext(ctx).Model(&model.FollowModel{}).Where("follower_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count followings")
	}

	var followMs []*model.FollowModel
	err := repo.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", userID).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&followMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list followings")
	}

	follows := make([]*entity.Follow, 0, len(followMs))
	for _, followM := range followMs {
		follows = append(follows, toFollowDomain(followM))
	}

	return follows, total, nil
}

// toFollowDomain converts a GORM FollowModel to a domain Follow entity.
func toFollowDomain(data *model.FollowModel) *entity.Follow {
	if data == nil {
		return nil
	}

	return &entity.Follow{
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
		Follower:    toUserDomain(data.Follower),
		Following:   toUserDomain(data.Following),
	}
}

// fromFollowDomain converts a domain Follow entity to a GORM FollowModel for persistence.
func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	return &model.FollowModel{
		FollowerID:  data.FollowerID,
		FollowingID: data.FollowingID,
	}
}
