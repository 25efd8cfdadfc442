package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreateBlogInput defines the data required to create a blog post.
type CreateBlogInput struct {
	AuthorID int64
	Title    string
	Body     string
	IsPublic bool
}

// UpdateBlogInput carries the mutable fields of a blog post. Nil pointers
// leave the corresponding field untouched.
type UpdateBlogInput struct {
	BlogID   int64
	AuthorID int64
	Title    *string
	Body     *string
	IsPublic *bool
}

// BlogDetailOutput is a blog together with its request-dependent decorations.
type BlogDetailOutput struct {
	Blog      *entity.Blog
	LikeCount int64
	LikedByMe bool
}

// BlogListOutput is a page of blogs with the pagination envelope.
type BlogListOutput struct {
	Blogs      []*entity.Blog
	Pagination Pagination
}

// BlogUsecase defines the interface for blog-related business operations.
type BlogUsecase interface {
	Create(ctx context.Context, input CreateBlogInput) (*entity.Blog, error)

	// ListOwn returns the caller's blogs, public and private.
	ListOwn(ctx context.Context, authorID int64, page Page) (*BlogListOutput, error)

	// GetPublic retrieves a public blog by ID. viewerID of zero means an
	// anonymous request; a non-zero viewer gets LikedByMe personalization.
	GetPublic(ctx context.Context, blogID, viewerID int64) (*BlogDetailOutput, error)

	// GetPrivate retrieves the caller's own private blog; absence and
	// non-ownership both surface as not found.
	GetPrivate(ctx context.Context, blogID, ownerID int64) (*BlogDetailOutput, error)

	Update(ctx context.Context, input UpdateBlogInput) (*entity.Blog, error)
	Delete(ctx context.Context, blogID, authorID int64) error
}
