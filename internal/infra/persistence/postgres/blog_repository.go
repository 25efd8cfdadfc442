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

// blogRepository implements the domain.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new blog and fills in the generated ID and timestamps.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindByID retrieves a blog with its comments preloaded, newest comment first.
func (repo *blogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		First(&blogM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// FindByIDAndAuthor retrieves a blog only when it belongs to the author.
func (repo *blogRepository) FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&blogM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id and author")
	}

	return toBlogDomain(&blogM), nil
}

// FindPrivateByIDAndAuthor retrieves a private blog for its owner. A public
// blog, a missing blog and someone else's blog all come back as not found.
func (repo *blogRepository) FindPrivateByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Where("id = ? AND author_id = ? AND is_public = ?", id, authorID, false).
		First(&blogM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find private blog")
	}

	return toBlogDomain(&blogM), nil
}

// ListByAuthor returns a page of the author's blogs, newest first, together
// with the total count for the pagination envelope.
func (repo *blogRepository) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]*entity.Blog, int64, error) {
	var total int64
	base := repo.db.WithContext(ctx).Model(&model.BlogModel{}).Where("author_id = ?", authorID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count blogs")
	}

	var blogMs []*model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&blogMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blogs by author")
	}

	blogs := make([]*entity.Blog, 0, len(blogMs))
	for _, blogM := range blogMs {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, total, nil
}

// ListPublicByAuthor returns only the author's public blogs, newest first.
func (repo *blogRepository) ListPublicByAuthor(ctx context.Context, authorID int64) ([]*entity.Blog, error) {
	var blogMs []*model.BlogModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ? AND is_public = ?", authorID, true).
		Order("created_at DESC").
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public blogs by author")
	}

	blogs := make([]*entity.Blog, 0, len(blogMs))
	for _, blogM := range blogMs {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

// Update modifies an existing blog.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Save(blogM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update blog")
	}

	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Delete removes a blog; comments and likes cascade at the store level.
func (repo *blogRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BlogModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	comments := make([]*entity.Comment, 0, len(data.Comments))
	for i := range data.Comments {
		comments = append(comments, toCommentDomain(&data.Comments[i]))
	}

	return &entity.Blog{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Body:      data.Body,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Comments:  comments,
		Author:    toUserDomain(data.Author),
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel for persistence.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Body:      data.Body,
		IsPublic:  data.IsPublic,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
