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

type blogServiceFixtures struct {
	service  usecase.BlogUsecase
	factory  *mockRepo.MockRepositoryFactory
	blogRepo *mockRepo.MockBlogRepository
	likeRepo *mockRepo.MockLikeRepository
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)

	service := NewBlogService(&fakeTxManager{factory: factory}, likeRepo, discardLogger())

	return blogServiceFixtures{
		service:  service,
		factory:  factory,
		blogRepo: blogRepo,
		likeRepo: likeRepo,
	}
}

func TestBlogService_Create_Success(t *testing.T) {
	fx := createTestBlogService(t)
	ctx := context.Background()

	fx.factory.On("BlogRepo").Return(fx.blogRepo)
	fx.blogRepo.On("Create", ctx, mock.AnythingOfType("*entity.Blog")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Blog).ID = 42
		}).
		Return(nil)

	blog, err := fx.service.Create(ctx, usecase.CreateBlogInput{
		AuthorID: 1,
		Title:    "First post",
		Body:     "Hello",
		IsPublic: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), blog.ID)
	assert.Equal(t, int64(1), blog.AuthorID)
}

func TestBlogService_GetPublic(t *testing.T) {
	publicBlog := &entity.Blog{ID: 42, AuthorID: 1, Title: "Post", IsPublic: true}
	privateBlog := &entity.Blog{ID: 43, AuthorID: 1, Title: "Secret", IsPublic: false}

	t.Run("anonymous viewer gets like count only", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.likeRepo.On("CountByBlog", ctx, int64(42)).Return(int64(3), nil)

		output, err := fx.service.GetPublic(ctx, 42, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(3), output.LikeCount)
		assert.False(t, output.LikedByMe)
	})

	t.Run("authenticated viewer gets likedByMe", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(42)).Return(publicBlog, nil)
		fx.likeRepo.On("CountByBlog", ctx, int64(42)).Return(int64(3), nil)
		fx.likeRepo.On("Exists", ctx, int64(9), int64(42)).Return(true, nil)

		output, err := fx.service.GetPublic(ctx, 42, 9)

		require.NoError(t, err)
		assert.True(t, output.LikedByMe)
	})

	t.Run("private blog is forbidden for strangers", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(43)).Return(privateBlog, nil)

		_, err := fx.service.GetPublic(ctx, 43, 9)

		require.ErrorIs(t, err, domainerrors.ErrBlogPrivate)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrBlogNotFound)

		_, err := fx.service.GetPublic(ctx, 99, 0)

		require.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
	})
}

// Non-ownership and absence both mask as not found on the private lookup.
func TestBlogService_GetPrivate_Masking(t *testing.T) {
	fx := createTestBlogService(t)
	ctx := context.Background()

	fx.factory.On("BlogRepo").Return(fx.blogRepo)
	fx.blogRepo.On("FindPrivateByIDAndAuthor", ctx, int64(43), int64(9)).
		Return(nil, repository.ErrBlogNotFound)

	_, err := fx.service.GetPrivate(ctx, 43, 9)

	require.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestBlogService_Update(t *testing.T) {
	t.Run("owner applies partial edit", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		existing := &entity.Blog{ID: 42, AuthorID: 1, Title: "Old", Body: "Body", IsPublic: true}
		newTitle := "New"

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByIDAndAuthor", ctx, int64(42), int64(1)).Return(existing, nil)
		fx.blogRepo.On("Update", ctx, existing).Return(nil)

		blog, err := fx.service.Update(ctx, usecase.UpdateBlogInput{
			BlogID:   42,
			AuthorID: 1,
			Title:    &newTitle,
		})

		require.NoError(t, err)
		assert.Equal(t, "New", blog.Title)
		assert.Equal(t, "Body", blog.Body)
	})

	t.Run("non-owner masks as not found", func(t *testing.T) {
		fx := createTestBlogService(t)
		ctx := context.Background()

		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.blogRepo.On("FindByIDAndAuthor", ctx, int64(42), int64(9)).
			Return(nil, repository.ErrBlogNotFound)

		_, err := fx.service.Update(ctx, usecase.UpdateBlogInput{BlogID: 42, AuthorID: 9})

		require.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
	})
}

func TestBlogService_ListOwn_Pagination(t *testing.T) {
	fx := createTestBlogService(t)
	ctx := context.Background()

	blogs := []*entity.Blog{{ID: 2}, {ID: 1}}

	fx.factory.On("BlogRepo").Return(fx.blogRepo)
	fx.blogRepo.On("ListByAuthor", ctx, int64(1), 1, 10).Return(blogs, int64(25), nil)

	output, err := fx.service.ListOwn(ctx, 1, usecase.Page{})

	require.NoError(t, err)
	assert.Len(t, output.Blogs, 2)
	assert.Equal(t, int64(25), output.Pagination.Total)
	assert.Equal(t, 3, output.Pagination.TotalPages)
}
