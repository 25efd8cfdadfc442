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
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	factory  *mockRepo.MockRepositoryFactory
	userRepo *mockRepo.MockUserRepository
	blogRepo *mockRepo.MockBlogRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)

	service := NewUserService(&fakeTxManager{factory: factory}, userRepo, discardLogger())

	return userServiceFixtures{
		service:  service,
		factory:  factory,
		userRepo: userRepo,
		blogRepo: blogRepo,
	}
}

func TestUserService_GetProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		user := &entity.User{ID: 7, Email: "me@example.com"}
		fx.userRepo.On("FindByID", ctx, int64(7)).Return(user, nil)

		got, err := fx.service.GetProfile(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetProfile(ctx, 99)

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 7, FirstName: "Old", LastName: "Name"}
	newFirst := "New"

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)
	fx.userRepo.On("Update", ctx, existing).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID:    7,
		FirstName: &newFirst,
	})

	require.NoError(t, err)
	assert.Equal(t, "New", user.FirstName)
	assert.Equal(t, "Name", user.LastName)
}

func TestUserService_DeleteAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("Delete", ctx, int64(7)).Return(nil)

		err := fx.service.DeleteAccount(ctx, 7)

		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("Delete", ctx, int64(99)).Return(repository.ErrUserNotFound)

		err := fx.service.DeleteAccount(ctx, 99)

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_PublicBlogs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		user := &entity.User{ID: 2}
		blogs := []*entity.Blog{{ID: 10, AuthorID: 2, IsPublic: true}}

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.factory.On("BlogRepo").Return(fx.blogRepo)
		fx.userRepo.On("FindByID", ctx, int64(2)).Return(user, nil)
		fx.blogRepo.On("ListPublicByAuthor", ctx, int64(2)).Return(blogs, nil)

		got, err := fx.service.PublicBlogs(ctx, 2)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(10), got[0].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.PublicBlogs(ctx, 99)

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
