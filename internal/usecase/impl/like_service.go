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

// likeService implements the LikeUsecase interface.
type likeService struct {
	blogRepo repository.BlogRepository
	likeRepo repository.LikeRepository
	logger   *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(
	blogRepo repository.BlogRepository,
	likeRepo repository.LikeRepository,
	logger *slog.Logger,
) usecase.LikeUsecase {
	return &likeService{
		blogRepo: blogRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Like records a like on a public blog. Checking order: the blog must exist,
// be public, not be the caller's own, and not already be liked. The unique
// index backs up the duplicate check under concurrency.
func (srv *likeService) Like(ctx context.Context, userID, blogID int64) error {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound
		}

		return errors.Wrap(err, "failed to find blog")
	}

	if !blog.IsPublic {
		return domainerrors.ErrBlogPrivate
	}
	if blog.AuthorID == userID {
		return domainerrors.ErrOwnBlogLike
	}

	liked, err := srv.likeRepo.Exists(ctx, userID, blogID)
	if err != nil {
		return errors.Wrap(err, "failed to check like")
	}
	if liked {
		return domainerrors.ErrAlreadyLiked
	}

	if err := srv.likeRepo.Create(ctx, &entity.Like{UserID: userID, BlogID: blogID}); err != nil {
		srv.log(ctx).Warn("Failed to like blog", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return err
	}

	srv.log(ctx).Info("Liked blog", slog.Int64("user_id", userID), slog.Int64("blog_id", blogID))

	return nil
}

// Unlike removes the caller's like.
func (srv *likeService) Unlike(ctx context.Context, userID, blogID int64) error {
	if err := srv.likeRepo.Delete(ctx, userID, blogID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return domainerrors.ErrLikeNotFound
		}

		srv.log(ctx).Warn("Failed to unlike blog", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return errors.Wrap(err, "failed to unlike blog")
	}

	srv.log(ctx).Info("Unliked blog", slog.Int64("user_id", userID), slog.Int64("blog_id", blogID))

	return nil
}
