// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) OtpRepo() repository.OneTimeCodeRepository {
	return m.Called().Get(0).(repository.OneTimeCodeRepository)
}

func (m *MockRepositoryFactory) BlogRepo() repository.BlogRepository {
	return m.Called().Get(0).(repository.BlogRepository)
}

func (m *MockRepositoryFactory) CommentRepo() repository.CommentRepository {
	return m.Called().Get(0).(repository.CommentRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockOneTimeCodeRepository mocks repository.OneTimeCodeRepository.
type MockOneTimeCodeRepository struct {
	mock.Mock
}

func NewMockOneTimeCodeRepository(t testingT) *MockOneTimeCodeRepository {
	m := &MockOneTimeCodeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOneTimeCodeRepository) Upsert(ctx context.Context, email string, code int) error {
	return m.Called(ctx, email, code).Error(0)
}

func (m *MockOneTimeCodeRepository) FindByEmailAndCode(ctx context.Context, email string, code int) (*entity.OneTimeCode, error) {
	args := m.Called(ctx, email, code)
	if otp, ok := args.Get(0).(*entity.OneTimeCode); ok {
		return otp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOneTimeCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// MockBlogRepository mocks repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func NewMockBlogRepository(t testingT) *MockBlogRepository {
	m := &MockBlogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	if blog, ok := args.Get(0).(*entity.Blog); ok {
		return blog, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBlogRepository) FindByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error) {
	args := m.Called(ctx, id, authorID)
	if blog, ok := args.Get(0).(*entity.Blog); ok {
		return blog, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBlogRepository) FindPrivateByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Blog, error) {
	args := m.Called(ctx, id, authorID)
	if blog, ok := args.Get(0).(*entity.Blog); ok {
		return blog, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, authorID int64, page, limit int) ([]*entity.Blog, int64, error) {
	args := m.Called(ctx, authorID, page, limit)
	blogs, _ := args.Get(0).([]*entity.Blog)

	return blogs, args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) ListPublicByAuthor(ctx context.Context, authorID int64) ([]*entity.Blog, error) {
	args := m.Called(ctx, authorID)
	blogs, _ := args.Get(0).([]*entity.Blog)

	return blogs, args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockCommentRepository mocks repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository(t testingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) FindByIDAndBlog(ctx context.Context, id, blogID int64) (*entity.Comment, error) {
	args := m.Called(ctx, id, blogID)
	if comment, ok := args.Get(0).(*entity.Comment); ok {
		return comment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCommentRepository) ListByBlog(ctx context.Context, blogID int64, page, limit int) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, blogID, page, limit)
	comments, _ := args.Get(0).([]*entity.Comment)

	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id, blogID, authorID int64) error {
	return m.Called(ctx, id, blogID, authorID).Error(0)
}

// MockLikeRepository mocks repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository(t testingT) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, blogID int64) (bool, error) {
	args := m.Called(ctx, userID, blogID)

	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, blogID int64) error {
	return m.Called(ctx, userID, blogID).Error(0)
}

func (m *MockLikeRepository) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	args := m.Called(ctx, blogID)

	return args.Get(0).(int64), args.Error(1)
}

// MockFollowRepository mocks repository.FollowRepository.
type MockFollowRepository struct {
	mock.Mock
}

func NewMockFollowRepository(t testingT) *MockFollowRepository {
	m := &MockFollowRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return m.Called(ctx, follow).Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	return m.Called(ctx, followerID, followingID).Error(0)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	follows, _ := args.Get(0).([]*entity.Follow)

	return follows, args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepository) ListFollowings(ctx context.Context, userID int64, page, limit int) ([]*entity.Follow, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	follows, _ := args.Get(0).([]*entity.Follow)

	return follows, args.Get(1).(int64), args.Error(2)
}
