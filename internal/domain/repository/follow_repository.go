package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrFollowNotFound is returned when the follow relation does not exist.
var ErrFollowNotFound = errors.New("follow relation not found")

// FollowRepository defines the standard operations for follow persistence.
type FollowRepository interface {
	// Create persists a follow relation.
	Create(ctx context.Context, follow *entity.Follow) error

	// Exists reports whether follower already follows following.
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)

	// Delete removes the relation; ErrFollowNotFound when absent.
	Delete(ctx context.Context, followerID, followingID int64) error

	// ListFollowers returns users following userID, follower preloaded.
	ListFollowers(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error)

	// ListFollowings returns users userID follows, following preloaded.
	ListFollowings(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error)
}
