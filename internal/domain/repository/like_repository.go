package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrLikeNotFound is returned when the user has no like on the blog.
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the standard operations for like persistence.
type LikeRepository interface {
	// Create persists a like. The (user, blog) pair is unique at the store.
	Create(ctx context.Context, like *entity.Like) error

	// Exists reports whether the user already liked the blog.
	Exists(ctx context.Context, userID, blogID int64) (bool, error)

	// Delete removes the user's like; ErrLikeNotFound when absent.
	Delete(ctx context.Context, userID, blogID int64) error

	// CountByBlog returns the number of likes on a blog.
	CountByBlog(ctx context.Context, blogID int64) (int64, error)
}
