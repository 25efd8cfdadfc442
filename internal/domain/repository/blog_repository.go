package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrBlogNotFound is returned when a blog is absent, or deliberately masked.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the standard operations for blog persistence.
type BlogRepository interface {
	// Create persists a new blog and fills in the generated ID and timestamps.
	Create(ctx context.Context, blog *entity.Blog) error

	// FindByID retrieves a blog with its comments preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Blog, error)

	// FindByIDAndAuthor retrieves a blog only when it belongs to the author.
	FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error)

	// FindPrivateByIDAndAuthor retrieves a private blog for its owner,
	// comments preloaded. Absence and non-ownership are indistinguishable.
	FindPrivateByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error)

	// ListByAuthor returns the author's blogs, public and private, newest first.
	ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]*entity.Blog, int64, error)

	// ListPublicByAuthor returns only the author's public blogs.
	ListPublicByAuthor(ctx context.Context, authorID int64) ([]*entity.Blog, error)

	// Update modifies an existing blog.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a blog; comments and likes cascade at the store level.
	Delete(ctx context.Context, id int64) error
}
