package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrCommentNotFound is returned when a comment is absent.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment and fills in the generated ID.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByIDAndBlog retrieves a comment scoped to a blog.
	FindByIDAndBlog(ctx context.Context, id, blogID int64) (*entity.Comment, error)

	// ListByBlog returns the blog's comments newest first, author preloaded,
	// along with the total count.
	ListByBlog(ctx context.Context, blogID int64, page, limit int) ([]*entity.Comment, int64, error)

	// Update modifies an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment only when it matches blog and author;
	// returns ErrCommentNotFound otherwise.
	Delete(ctx context.Context, id, blogID, authorID int64) error
}
