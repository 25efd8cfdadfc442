package usecase

import "context"

// LikeUsecase defines the interface for like-related business operations.
type LikeUsecase interface {
	// Like records the user's like on a public blog they do not own.
	Like(ctx context.Context, userID, blogID int64) error

	// Unlike removes an existing like.
	Unlike(ctx context.Context, userID, blogID int64) error
}
