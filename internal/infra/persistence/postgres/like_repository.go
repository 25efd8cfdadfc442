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

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Create persists a like. The unique (user, blog) index is the last line of
// defence against double likes racing past the Exists check.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyLiked
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBlogNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Exists reports whether the user already liked the blog.
func (repo *likeRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check like existence")
	}

	return count > 0, nil
}

// Delete removes the user's like on a blog.
func (repo *likeRepository) Delete(ctx context.Context, userID, blogID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// CountByBlog returns the number of likes on a blog.
func (repo *likeRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// fromLikeDomain converts a domain Like entity to a GORM LikeModel for persistence.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		UserID:    data.UserID,
		BlogID:    data.BlogID,
		CreatedAt: data.CreatedAt,
	}
}
