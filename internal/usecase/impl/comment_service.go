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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requirePublicBlog loads the blog and rejects private ones. An unknown blog
// is a 404 and a private one a 403 on every comment path.
func requirePublicBlog(ctx context.Context, repoFactory repository.RepositoryFactory, blogID int64) error {
	blog, err := repoFactory.BlogRepo().FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound
		}

		return errors.Wrap(err, "failed to find blog")
	}

	if !blog.IsPublic {
		return domainerrors.ErrBlogPrivate
	}

	return nil
}

// Create adds a comment to a public blog.
func (srv *commentService) Create(ctx context.Context, input usecase.CreateCommentInput) (*entity.Comment, error) {
	comment := &entity.Comment{
		AuthorID: input.AuthorID,
		BlogID:   input.BlogID,
		Body:     input.Body,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requirePublicBlog(ctx, repoFactory, input.BlogID); err != nil {
			return err
		}

		return repoFactory.CommentRepo().Create(ctx, comment)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create comment", slog.Any("error", err), slog.Int64("blog_id", input.BlogID))

		return nil, err
	}

	srv.log(ctx).Info("Created comment", slog.Int64("comment_id", comment.ID), slog.Int64("blog_id", comment.BlogID))

	return comment, nil
}

// ListByBlog returns a page of a public blog's comments with author info.
func (srv *commentService) ListByBlog(ctx context.Context, blogID int64, page usecase.Page) (*usecase.CommentListOutput, error) {
	page = page.Normalize()

	var (
		comments []*entity.Comment
		total    int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requirePublicBlog(ctx, repoFactory, blogID); err != nil {
			return err
		}

		var err error
		comments, total, err = repoFactory.CommentRepo().ListByBlog(ctx, blogID, page.Page, page.Limit)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to list comments", slog.Any("error", err), slog.Int64("blog_id", blogID))

		return nil, err
	}

	return &usecase.CommentListOutput{
		Comments:   comments,
		Pagination: usecase.NewPagination(total, page),
	}, nil
}

// Update edits a comment. Only the comment's author may edit, and only on a
// public blog.
func (srv *commentService) Update(ctx context.Context, input usecase.UpdateCommentInput) (*entity.Comment, error) {
	var comment *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requirePublicBlog(ctx, repoFactory, input.BlogID); err != nil {
			return err
		}

		commentRepo := repoFactory.CommentRepo()
		found, err := commentRepo.FindByIDAndBlog(ctx, input.CommentID, input.BlogID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if found.AuthorID != input.AuthorID {
			return domainerrors.ErrNotCommentAuthor
		}

		found.Body = input.Body
		if err := commentRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update comment")
		}
		comment = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update comment", slog.Any("error", err), slog.Int64("comment_id", input.CommentID))

		return nil, err
	}

	srv.log(ctx).Info("Updated comment", slog.Int64("comment_id", comment.ID))

	return comment, nil
}

// Delete removes the author's own comment. The store-level match on blog and
// author makes a non-author delete indistinguishable from a missing comment.
func (srv *commentService) Delete(ctx context.Context, commentID, blogID, authorID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requirePublicBlog(ctx, repoFactory, blogID); err != nil {
			return err
		}

		if err := repoFactory.CommentRepo().Delete(ctx, commentID, blogID, authorID); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete comment", slog.Any("error", err), slog.Int64("comment_id", commentID))

		return err
	}

	srv.log(ctx).Info("Deleted comment", slog.Int64("comment_id", commentID))

	return nil
}
