package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// followService implements the FollowUsecase interface.
type followService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	logger     *slog.Logger
}

// NewFollowService is the constructor for followService.
func NewFollowService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	logger *slog.Logger,
) usecase.FollowUsecase {
	return &followService{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (srv *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow creates a directed relation. Checking order: no self-follow, target
// must exist, relation must not already exist.
func (srv *followService) Follow(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return domainerrors.ErrSelfFollow
	}

	if _, err := srv.userRepo.FindByID(ctx, followingID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	following, err := srv.followRepo.Exists(ctx, followerID, followingID)
	if err != nil {
		return errors.Wrap(err, "failed to check follow")
	}
	if following {
		return domainerrors.ErrAlreadyFollowing
	}

	if err := srv.followRepo.Create(ctx, &entity.Follow{FollowerID: followerID, FollowingID: followingID}); err != nil {
		srv.log(ctx).Warn("Failed to follow user", slog.Any("error", err), slog.Int64("following_id", followingID))

		return err
	}

	srv.log(ctx).Info("Followed user", slog.Int64("follower_id", followerID), slog.Int64("following_id", followingID))

	return nil
}

// Unfollow removes the relation.
func (srv *followService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if err := srv.followRepo.Delete(ctx, followerID, followingID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return domainerrors.ErrFollowNotFound
		}

		srv.log(ctx).Warn("Failed to unfollow user", slog.Any("error", err), slog.Int64("following_id", followingID))

		return errors.Wrap(err, "failed to unfollow user")
	}

	srv.log(ctx).Info("Unfollowed user", slog.Int64("follower_id", followerID), slog.Int64("following_id", followingID))

	return nil
}

// Followers lists the users following userID.
func (srv *followService) Followers(ctx context.Context, userID int64, page usecase.Page) (*usecase.FollowListOutput, error) {
	page = page.Normalize()

	follows, total, err := srv.followRepo.ListFollowers(ctx, userID, page.Page, page.Limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list followers", slog.Any("error", err), slog.Int64("user_id", userID))

		return nil, errors.Wrap(err, "failed to list followers")
	}

	users := make([]*entity.User, 0, len(follows))
	for _, follow := range follows {
		if follow.Follower != nil {
			users = append(users, follow.Follower)
		}
	}

	return &usecase.FollowListOutput{
		Users:      users,
		Pagination: usecase.NewPagination(total, page),
	}, nil
}

// Followings lists the users userID follows.
func (srv *followService) Followings(ctx context.Context, userID int64, page usecase.Page) (*usecase.FollowListOutput, error) {
	page = page.Normalize()

	follows, total, err := srv.followRepo.ListFollowings(ctx, userID, page.Page, page.Limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list followings", slog.Any("error", err), slog.Int64("user_id", userID))

		return nil, errors.Wrap(err, "failed to list followings")
	}

	users := make([]*entity.User, 0, len(follows))
	for _, follow := range follows {
		if follow.Following != nil {
			users = append(users, follow.Following)
		}
	}

	return &usecase.FollowListOutput{
		Users:      users,
		Pagination: usecase.NewPagination(total, page),
	}, nil
}
