package impl

import (
	"context"
	"testing"

	"quill/config"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	factory  *mockRepo.MockRepositoryFactory
	userRepo *mockRepo.MockUserRepository
	otpRepo  *mockRepo.MockOneTimeCodeRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
	codes    *mockSvc.MockCodeGenerator
	mailer   *mockSvc.MockMailDispatcher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	otpRepo := mockRepo.NewMockOneTimeCodeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	codes := mockSvc.NewMockCodeGenerator(t)
	mailer := mockSvc.NewMockMailDispatcher(t)

	cfg := &config.Config{OTP: &config.OTPConfig{Digits: 6}}
	service := NewAuthService(&fakeTxManager{factory: factory}, hasher, tokens, codes, mailer, cfg, discardLogger())

	return authServiceFixtures{
		service:  service,
		factory:  factory,
		userRepo: userRepo,
		otpRepo:  otpRepo,
		hasher:   hasher,
		tokens:   tokens,
		codes:    codes,
		mailer:   mailer,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.codes.On("Generate", 6).Return(123456, nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("OtpRepo").Return(fx.otpRepo)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 7
		}).
		Return(nil)
	fx.otpRepo.On("Upsert", ctx, "new@example.com", 123456).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, "new@example.com", 123456).Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:     "new@example.com",
		Password:  "secret-pass",
		FirstName: "New",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.User.ID)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.False(t, output.User.IsVerified)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.codes.On("Generate", 6).Return(123456, nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:     "taken@example.com",
		Password:  "secret-pass",
		FirstName: "Dup",
	})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
}

func TestAuthService_Register_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "secret-pass").Return("hashed", nil)
	fx.codes.On("Generate", 6).Return(123456, nil)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("OtpRepo").Return(fx.otpRepo)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.otpRepo.On("Upsert", ctx, "new@example.com", 123456).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, "new@example.com", 123456).
		Return(assert.AnError)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:     "new@example.com",
		Password:  "secret-pass",
		FirstName: "New",
	})

	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "a@example.com", IsVerified: false}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("OtpRepo").Return(fx.otpRepo)
	fx.otpRepo.On("FindByEmailAndCode", ctx, "a@example.com", 123456).
		Return(&entity.OneTimeCode{Email: "a@example.com", Code: 123456}, nil)
	fx.userRepo.On("FindByEmail", ctx, "a@example.com").Return(user, nil)
	fx.userRepo.On("Update", ctx, user).Return(nil)
	fx.otpRepo.On("DeleteByEmail", ctx, "a@example.com").Return(nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Email: "a@example.com", Code: 123456})

	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestAuthService_VerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("OtpRepo").Return(fx.otpRepo)
	fx.otpRepo.On("FindByEmailAndCode", ctx, "a@example.com", 123456).
		Return(nil, repository.ErrCodeNotFound)
	fx.userRepo.On("FindByEmail", ctx, "a@example.com").
		Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: true}, nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Email: "a@example.com", Code: 123456})

	require.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
}

// The failure branch must not reveal whether the email or the code was wrong.
func TestAuthService_VerifyEmail_AmbiguousFailure(t *testing.T) {
	tests := []struct {
		name      string
		userErr   error
		userFound bool
	}{
		{name: "unknown email", userErr: repository.ErrUserNotFound},
		{name: "wrong code for unverified user", userFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.factory.On("UserRepo").Return(fx.userRepo)
			fx.factory.On("OtpRepo").Return(fx.otpRepo)
			fx.otpRepo.On("FindByEmailAndCode", ctx, "a@example.com", 999999).
				Return(nil, repository.ErrCodeNotFound)
			if tt.userFound {
				fx.userRepo.On("FindByEmail", ctx, "a@example.com").
					Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: false}, nil)
			} else {
				fx.userRepo.On("FindByEmail", ctx, "a@example.com").Return(nil, tt.userErr)
			}

			err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Email: "a@example.com", Code: 999999})

			require.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
		})
	}
}

func TestAuthService_ResendVerificationCode(t *testing.T) {
	t.Run("success overwrites previous code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.codes.On("Generate", 6).Return(654321, nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.factory.On("OtpRepo").Return(fx.otpRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").
			Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: false}, nil)
		fx.otpRepo.On("Upsert", ctx, "a@example.com", 654321).Return(nil)
		fx.mailer.On("SendVerificationCode", ctx, "a@example.com", 654321).Return(nil)

		output, err := fx.service.ResendVerificationCode(ctx, "a@example.com")

		require.NoError(t, err)
		assert.Equal(t, 654321, output.Code)
	})

	t.Run("unregistered email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.codes.On("Generate", 6).Return(654321, nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResendVerificationCode(ctx, "nobody@example.com")

		require.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.codes.On("Generate", 6).Return(654321, nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").
			Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: true}, nil)

		_, err := fx.service.ResendVerificationCode(ctx, "a@example.com")

		require.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})
}

// Login gates fire in a fixed order: existence, verification, password.
func TestAuthService_Login(t *testing.T) {
	verifiedUser := &entity.User{
		ID:           1,
		Email:        "a@example.com",
		PasswordHash: "hashed",
		IsVerified:   true,
	}

	t.Run("unregistered email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
			Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		require.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
	})

	t.Run("unverified account", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").
			Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: false}, nil)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "x"})

		require.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").Return(verifiedUser, nil)
		fx.hasher.On("Check", "wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "wrong"})

		require.ErrorIs(t, err, domainerrors.ErrWrongPassword)
	})

	t.Run("success issues both tokens", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").Return(verifiedUser, nil)
		fx.hasher.On("Check", "right", "hashed").Return(true)
		fx.tokens.On("IssueAccessToken", int64(1), "a@example.com").Return("access", nil)
		fx.tokens.On("IssueRefreshToken", int64(1), "a@example.com").Return("refresh", nil)

		output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@example.com", Password: "right"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
		assert.Equal(t, verifiedUser, output.User)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.codes.On("Generate", 6).Return(111222, nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.factory.On("OtpRepo").Return(fx.otpRepo)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").
			Return(&entity.User{ID: 1, Email: "a@example.com", IsVerified: true}, nil)
		fx.otpRepo.On("Upsert", ctx, "a@example.com", 111222).Return(nil)
		fx.mailer.On("SendPasswordResetCode", ctx, "a@example.com", 111222).Return(nil)

		require.NoError(t, fx.service.RequestPasswordReset(ctx, "a@example.com"))
	})

	t.Run("unregistered email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.codes.On("Generate", 6).Return(111222, nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.userRepo.On("FindByEmail", ctx, "nobody@example.com").
			Return(nil, repository.ErrUserNotFound)

		err := fx.service.RequestPasswordReset(ctx, "nobody@example.com")

		require.ErrorIs(t, err, domainerrors.ErrEmailNotRegistered)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("success consumes the code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		user := &entity.User{ID: 1, Email: "a@example.com", PasswordHash: "old-hash"}

		fx.hasher.On("Hash", "new-password").Return("new-hash", nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.factory.On("OtpRepo").Return(fx.otpRepo)
		fx.otpRepo.On("FindByEmailAndCode", ctx, "a@example.com", 111222).
			Return(&entity.OneTimeCode{Email: "a@example.com", Code: 111222}, nil)
		fx.userRepo.On("FindByEmail", ctx, "a@example.com").Return(user, nil)
		fx.userRepo.On("Update", ctx, user).Return(nil)
		fx.otpRepo.On("DeleteByEmail", ctx, "a@example.com").Return(nil)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
			Email:       "a@example.com",
			Code:        111222,
			NewPassword: "new-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})

	t.Run("absent pair fails not found", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.hasher.On("Hash", "new-password").Return("new-hash", nil)
		fx.factory.On("UserRepo").Return(fx.userRepo)
		fx.factory.On("OtpRepo").Return(fx.otpRepo)
		fx.otpRepo.On("FindByEmailAndCode", ctx, "a@example.com", 999999).
			Return(nil, repository.ErrCodeNotFound)

		err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
			Email:       "a@example.com",
			Code:        999999,
			NewPassword: "new-password",
		})

		require.ErrorIs(t, err, domainerrors.ErrResetCodeNotFound)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("valid token rotates the pair", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.On("VerifyRefreshToken", "old-refresh").
			Return(&service.Claims{UserID: 7, Email: "a@example.com"}, nil)
		fx.tokens.On("IssueAccessToken", int64(7), "a@example.com").Return("new-access", nil)
		fx.tokens.On("IssueRefreshToken", int64(7), "a@example.com").Return("new-refresh", nil)

		output, err := fx.service.Refresh(ctx, "old-refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
		assert.Equal(t, "new-refresh", output.RefreshToken)
	})

	t.Run("invalid token fails unauthorized", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokens.On("VerifyRefreshToken", "tampered").
			Return(nil, domainerrors.ErrInvalidToken)

		_, err := fx.service.Refresh(ctx, "tampered")

		require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}
