package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreateCommentInput defines the data required to comment on a blog.
type CreateCommentInput struct {
	AuthorID int64
	BlogID   int64
	Body     string
}

// UpdateCommentInput carries a comment edit scoped to its blog and author.
type UpdateCommentInput struct {
	CommentID int64
	BlogID    int64
	AuthorID  int64
	Body      string
}

// CommentListOutput is a page of comments with the pagination envelope.
type CommentListOutput struct {
	Comments   []*entity.Comment
	Pagination Pagination
}

// CommentUsecase defines the interface for comment-related business operations.
// Comments live on public blogs only; a private blog rejects every path here.
type CommentUsecase interface {
	Create(ctx context.Context, input CreateCommentInput) (*entity.Comment, error)
	ListByBlog(ctx context.Context, blogID int64, page Page) (*CommentListOutput, error)
	Update(ctx context.Context, input UpdateCommentInput) (*entity.Comment, error)
	Delete(ctx context.Context, commentID, blogID, authorID int64) error
}
