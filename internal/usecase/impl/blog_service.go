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

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(
	txManager repository.TransactionManager,
	likeRepo repository.LikeRepository,
	logger *slog.Logger,
) usecase.BlogUsecase {
	return &blogService{
		txManager: txManager,
		likeRepo:  likeRepo,
		logger:    logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new blog for the author.
func (srv *blogService) Create(ctx context.Context, input usecase.CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Body:     input.Body,
		IsPublic: input.IsPublic,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BlogRepo().Create(ctx, blog)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Any("error", err), slog.Int64("author_id", input.AuthorID))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Info("Created blog", slog.Int64("blog_id", blog.ID), slog.Int64("author_id", blog.AuthorID))

	return blog, nil
}

// ListOwn returns the caller's blogs, public and private, newest first.
func (srv *blogService) ListOwn(ctx context.Context, authorID int64, page usecase.Page) (*usecase.BlogListOutput, error) {
	page = page.Normalize()

	var (
		blogs []*entity.Blog
		total int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		blogs, total, err = repoFactory.BlogRepo().ListByAuthor(ctx, authorID, page.Page, page.Limit)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list blogs", slog.Any("error", err), slog.Int64("author_id", authorID))

		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return &usecase.BlogListOutput{
		Blogs:      blogs,
		Pagination: usecase.NewPagination(total, page),
	}, nil
}

// GetPublic retrieves a public blog with its comments and like count.
// A private blog is visible through this path only as a 403, so callers
// learn it exists but not what it says.
func (srv *blogService) GetPublic(ctx context.Context, blogID, viewerID int64) (*usecase.BlogDetailOutput, error) {
	var blog *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		blog, err = repoFactory.BlogRepo().FindByID(ctx, blogID)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to find blog")
		}

		if !blog.IsPublic && blog.AuthorID != viewerID {
			return domainerrors.ErrBlogPrivate
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to get blog", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return nil, err
	}

	likeCount, err := srv.likeRepo.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	likedByMe := false
	if viewerID != 0 {
		likedByMe, err = srv.likeRepo.Exists(ctx, viewerID, blogID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check like")
		}
	}

	return &usecase.BlogDetailOutput{
		Blog:      blog,
		LikeCount: likeCount,
		LikedByMe: likedByMe,
	}, nil
}

// GetPrivate retrieves the caller's own private blog. Any mismatch, whether
// the blog is missing, public or someone else's, masks as not found.
func (srv *blogService) GetPrivate(ctx context.Context, blogID, ownerID int64) (*usecase.BlogDetailOutput, error) {
	var blog *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		blog, err = repoFactory.BlogRepo().FindPrivateByIDAndAuthor(ctx, blogID, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to find private blog")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to get private blog", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return nil, err
	}

	likeCount, err := srv.likeRepo.CountByBlog(ctx, blogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	return &usecase.BlogDetailOutput{
		Blog:      blog,
		LikeCount: likeCount,
	}, nil
}

// Update applies a partial edit to the caller's own blog. Non-ownership
// masks as not found.
func (srv *blogService) Update(ctx context.Context, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	var blog *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		found, err := blogRepo.FindByIDAndAuthor(ctx, input.BlogID, input.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to find blog")
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Body != nil {
			found.Body = *input.Body
		}
		if input.IsPublic != nil {
			found.IsPublic = *input.IsPublic
		}

		if err := blogRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update blog")
		}
		blog = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update blog", slog.Any("error", err), slog.Int64("blog_id", input.BlogID))

		return nil, err
	}

	srv.log(ctx).Info("Updated blog", slog.Int64("blog_id", blog.ID))

	return blog, nil
}

// Delete removes the caller's own blog; comments and likes cascade.
func (srv *blogService) Delete(ctx context.Context, blogID, authorID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if _, err := blogRepo.FindByIDAndAuthor(ctx, blogID, authorID); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound
			}

			return errors.Wrap(err, "failed to find blog")
		}

		return blogRepo.Delete(ctx, blogID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete blog", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return err
	}

	srv.log(ctx).Info("Deleted blog", slog.Int64("blog_id", blogID))

	return nil
}
