package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// FollowListOutput is a page of users on either side of the follow relation.
type FollowListOutput struct {
	Users      []*entity.User
	Pagination Pagination
}

// FollowUsecase defines the interface for follow-related business operations.
type FollowUsecase interface {
	// Follow creates a directed relation from follower to following.
	Follow(ctx context.Context, followerID, followingID int64) error

	// Unfollow removes the relation.
	Unfollow(ctx context.Context, followerID, followingID int64) error

	// Followers lists the users following userID.
	Followers(ctx context.Context, userID int64, page Page) (*FollowListOutput, error)

	// Followings lists the users userID follows.
	Followings(ctx context.Context, userID int64, page Page) (*FollowListOutput, error)
}
