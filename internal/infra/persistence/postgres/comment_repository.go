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

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment and fills in the generated ID and timestamps.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBlogNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByIDAndBlog retrieves a comment scoped to a blog.
func (repo *commentRepository) FindByIDAndBlog(ctx context.Context, id, blogID int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND blog_id = ?", id, blogID).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// ListByBlog returns a page of the blog's comments newest first, author
// preloaded, together with the total count.
func (repo *commentRepository) ListByBlog(ctx context.Context, blogID int64, page, limit int) ([]*entity.Comment, int64, error) {
	var total int64
	base := repo.db.WithContext(ctx).Model(&model.CommentModel{}).Where("blog_id = ?", blogID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&commentMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments by blog")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, total, nil
}

// Update modifies an existing comment.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Save(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Delete removes a comment only when blog and author both match, so a
// non-author delete is indistinguishable from a missing comment.
func (repo *commentRepository) Delete(ctx context.Context, id, blogID, authorID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND blog_id = ? AND author_id = ?", id, blogID, authorID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		BlogID:    data.BlogID,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Author:    toUserDomain(data.Author),
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel for persistence.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		BlogID:    data.BlogID,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
