package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// UpdateProfileInput carries the mutable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateProfileInput struct {
	UserID    int64
	FirstName *string
	LastName  *string
	PhotoURL  *string
}

// UserUsecase defines the interface for profile-related business operations.
type UserUsecase interface {
	// GetProfile returns the user's own profile.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the account and everything it owns.
	DeleteAccount(ctx context.Context, userID int64) error

	// PublicBlogs lists another user's public blogs.
	PublicBlogs(ctx context.Context, userID int64) ([]*entity.Blog, error)
}
