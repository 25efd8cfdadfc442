package impl

import (
	"context"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	factory     *mockRepo.MockRepositoryFactory
	blogRepo    *mockRepo.MockBlogRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := NewCommentService(&fakeTxManager{factory: factory}, discardLogger())

	return commentServiceFixtures{
		service:     service,
		factory:     factory,
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
	}
}

func TestCommentService_Create(t *testing.T) {
	publicBlog := &entity.Blog{ID: 42, AuthorID: 1, IsPublic: true}
	privateBlog := &entity.Blog{ID: 43, AuthorID: 1, IsPublic: false}

	t.Run("success on public blog", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.factory.On("CommentRepo").Return(fx.commentRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.commentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Comment).ID = 5
			}).
			Return(nil)

		comment, err := fx.service.Create(ctx, usecase.CreateCommentInput{
			AuthorID: 9,
			BlogID:   42,
			Body:     "Nice post",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), comment.ID)
		assert.Equal(t, int64(42), comment.BlogID)
	})

	t.Run("private blog is forbidden", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(43)).Return(privateBlog, nil)

		_, err := fx.service.Create(ctx, usecase.CreateCommentInput{AuthorID: 9, BlogID: 43, Body: "x"})

		require.ErrorIs(t, err, domainerrors.ErrBlogPrivate)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrBlogNotFound)

		_, err := fx.service.Create(ctx, usecase.CreateCommentInput{AuthorID: 9, BlogID: 99, Body: "x"})

		require.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
	})
}

func TestCommentService_Update(t *testing.T) {
	publicBlog := &entity.Blog{ID: 42, AuthorID: 1, IsPublic: true}

	t.Run("author edits own comment", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		existing := &entity.Comment{ID: 5, BlogID: 42, AuthorID: 9, Body: "Old"}

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.factory.On("CommentRepo").Return(fx.commentRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.commentRepo.On("FindByIDAndBlog", ctx, int64(5), int64(42)).Return(existing, nil)
		fx.commentRepo.On("Update", ctx, existing).Return(nil)

		comment, err := fx.service.Update(ctx, usecase.UpdateCommentInput{
			CommentID: 5,
			BlogID:    42,
			AuthorID:  9,
			Body:      "New",
		})

		require.NoError(t, err)
		assert.Equal(t, "New", comment.Body)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		existing := &entity.Comment{ID: 5, BlogID: 42, AuthorID: 9, Body: "Old"}

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.factory.On("CommentRepo").Return(fx.commentRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.commentRepo.On("FindByIDAndBlog", ctx, int64(5), int64(42)).Return(existing, nil)

		_, err := fx.service.Update(ctx, usecase.UpdateCommentInput{
			CommentID: 5,
			BlogID:    42,
			AuthorID:  8,
			Body:      "New",
		})

		require.ErrorIs(t, err, domainerrors.ErrNotCommentAuthor)
	})
}

func TestCommentService_Delete(t *testing.T) {
	publicBlog := &entity.Blog{ID: 42, AuthorID: 1, IsPublic: true}

	t.Run("success", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.factory.On("CommentRepo").Return(fx.commentRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.commentRepo.On("Delete", ctx, int64(5), int64(42), int64(9)).Return(nil)

		err := fx.service.Delete(ctx, 5, 42, 9)

		require.NoError(t, err)
	})

	t.Run("someone else's comment masks as not found", func(t *testing.T) {
		fx := createTestCommentService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.factory.On("CommentRepo").Return(fx.commentRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.commentRepo.On("Delete", ctx, int64(5), int64(42), int64(8)).
			Return(repository.ErrCommentNotFound)

		err := fx.service.Delete(ctx, 5, 42, 8)

		require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}

func TestCommentService_ListByBlog_Pagination(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	publicBlog := &entity.Blog{ID: 42, AuthorID: 1, IsPublic: true}
	comments := []*entity.Comment{{ID: 2}, {ID: 1}}

	fx.factory.On("BlogRepo").Return(fx.blogRepo)
	fx.factory.On("CommentRepo").Return(fx.commentRepo)
	fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
	fx.commentRepo.On("ListByBlog", ctx, int64(42), 2, 10).Return(comments, int64(12), nil)

	output, err := fx.service.ListByBlog(ctx, 42, usecase.Page{Page: 2})

	require.NoError(t, err)
	assert.Len(t, output.Comments, 2)
	assert.Equal(t, int64(12), output.Pagination.Total)
	assert.Equal(t, 2, output.Pagination.Page)
	assert.Equal(t, 2, output.Pagination.TotalPages)
}
