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

type followServiceFixtures struct {
	service    usecase.FollowUsecase
	userRepo   *mockRepo.MockUserRepository
	followRepo *mockRepo.MockFollowRepository
}

func createTestFollowService(t *testing.T) followServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)

	service := NewFollowService(userRepo, followRepo, discardLogger())

	return followServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func TestFollowService_Follow(t *testing.T) {
	target := &entity.User{ID: 2, Email: "target@example.com"}

	t.Run("success", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		fx.userRepo.On("FindByID", ctx, int64(2)).Return(target, nil)
		fx.followRepo.On("Exists", ctx, int64(1), int64(2)).Return(false, nil)
		fx.followRepo.On("Create", ctx, mock.AnythingOfType("*entity.Follow")).Return(nil)

		err := fx.service.Follow(ctx, 1, 2)

		require.NoError(t, err)
	})

	t.Run("self follow is rejected before any lookup", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		err := fx.service.Follow(ctx, 1, 1)

		require.ErrorIs(t, err, domainerrors.ErrSelfFollow)
	})

	t.Run("unknown target", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		fx.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

		err := fx.service.Follow(ctx, 1, 99)

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("already following", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		fx.userRepo.On("FindByID", ctx, int64(2)).Return(target, nil)
		fx.followRepo.On("Exists", ctx, int64(1), int64(2)).Return(true, nil)

		err := fx.service.Follow(ctx, 1, 2)

		require.ErrorIs(t, err, domainerrors.ErrAlreadyFollowing)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		fx.followRepo.On("Delete", ctx, int64(1), int64(2)).Return(nil)

		err := fx.service.Unfollow(ctx, 1, 2)

		require.NoError(t, err)
	})

	t.Run("no relation to remove", func(t *testing.T) {
		fx := createTestFollowService(t)
		ctx := context.Background()

		fx.followRepo.On("Delete", ctx, int64(1), int64(2)).Return(repository.ErrFollowNotFound)

		err := fx.service.Unfollow(ctx, 1, 2)

		require.ErrorIs(t, err, domainerrors.ErrFollowNotFound)
	})
}

func TestFollowService_Followers(t *testing.T) {
	fx := createTestFollowService(t)
	ctx := context.Background()

	follows := []*entity.Follow{
		{FollowerID: 3, FollowingID: 1, Follower: &entity.User{ID: 3}},
		{FollowerID: 4, FollowingID: 1, Follower: &entity.User{ID: 4}},
	}

	fx.followRepo.On("ListFollowers", ctx, int64(1), 1, 10).Return(follows, int64(2), nil)

	output, err := fx.service.Followers(ctx, 1, usecase.Page{})

	require.NoError(t, err)
	require.Len(t, output.Users, 2)
	assert.Equal(t, int64(3), output.Users[0].ID)
	assert.Equal(t, int64(2), output.Pagination.Total)
}

func TestFollowService_Followings(t *testing.T) {
	fx := createTestFollowService(t)
	ctx := context.Background()

	follows := []*entity.Follow{
		{FollowerID: 1, FollowingID: 5, Following: &entity.User{ID: 5}},
	}

	fx.followRepo.On("ListFollowings", ctx, int64(1), 1, 10).Return(follows, int64(1), nil)

	output, err := fx.service.Followings(ctx, 1, usecase.Page{})

	require.NoError(t, err)
	require.Len(t, output.Users, 1)
	assert.Equal(t, int64(5), output.Users[0].ID)
}
