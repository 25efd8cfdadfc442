// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	codes     service.CodeGenerator
	mailer    service.MailDispatcher
	otpDigits int
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	codes service.CodeGenerator,
	mailer service.MailDispatcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		codes:     codes,
		mailer:    mailer,
		otpDigits: cfg.OTP.Digits,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified account and sends out a verification code.
// Mail dispatch happens after the transaction commits; a delivery failure is
// logged and never unwinds the created user.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	code, err := srv.codes.Generate(srv.otpDigits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Insert the user; the unique email constraint is the conflict check.
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyUsed
			}

			return errors.Wrap(err, "failed to create user")
		}

		// 2. Store the verification code, overwriting any prior one.
		if err := repoFactory.OtpRepo().Upsert(ctx, user.Email, code); err != nil {
			return errors.Wrap(err, "failed to store verification code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register user", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	if err := srv.mailer.SendVerificationCode(ctx, user.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.Any("error", err), slog.String("email", user.Email))
	}

	srv.log(ctx).Info("Successfully registered user", slog.Int64("user_id", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// VerifyEmail flips isVerified exactly once and consumes the code. The
// failure branch never reveals whether the email or the code was wrong,
// except for accounts that are already verified.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) error {
	srv.log(ctx).Info("Verifying email", slog.String("email", input.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		otpRepo := repoFactory.OtpRepo()

		_, err := otpRepo.FindByEmailAndCode(ctx, input.Email, input.Code)
		if err != nil {
			if !errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(err, "failed to look up verification code")
			}

			// No matching code. Distinguish only the already-verified case.
			user, findErr := userRepo.FindByEmail(ctx, input.Email)
			if findErr == nil && user.IsVerified {
				return domainerrors.ErrAlreadyVerified
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to find user")
			}

			return domainerrors.ErrVerificationFailed
		}

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Orphan code without an account behind it.
				return domainerrors.ErrVerificationFailed
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.IsVerified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}

		// Single-use semantics: the code is gone once it worked.
		if err := otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to consume verification code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err), slog.String("email", input.Email))

		return err
	}

	srv.log(ctx).Info("Successfully verified email", slog.String("email", input.Email))

	return nil
}

// ResendVerificationCode regenerates and re-sends the code for an
// unverified account. The returned plaintext code is a development-only
// debug aid; the handler decides whether to expose it.
func (srv *authService) ResendVerificationCode(ctx context.Context, email string) (*usecase.ResendCodeOutput, error) {
	srv.log(ctx).Info("Resending verification code", slog.String("email", email))

	code, err := srv.codes.Generate(srv.otpDigits)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrEmailNotRegistered
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.IsVerified {
			return domainerrors.ErrAlreadyVerified
		}

		if err := repoFactory.OtpRepo().Upsert(ctx, email, code); err != nil {
			return errors.Wrap(err, "failed to store verification code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resend verification code", slog.Any("error", err), slog.String("email", email))

		return nil, err
	}

	if err := srv.mailer.SendVerificationCode(ctx, email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.Any("error", err), slog.String("email", email))
	}

	return &usecase.ResendCodeOutput{Code: code}, nil
}

// Login checks the account in a fixed order: existence, verification state,
// password. Each gate fails with its own status so the client can react.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Logging in user", slog.String("email", input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrEmailNotRegistered
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrWrongPassword
	}

	accessToken, err := srv.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := srv.tokens.IssueRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Info("Successfully logged in user", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RequestPasswordReset issues a reset code to a registered email. The code
// lands in the same store as verification codes, so requesting a reset
// invalidates any outstanding verification code for the address.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	srv.log(ctx).Info("Requesting password reset", slog.String("email", email))

	code, err := srv.codes.Generate(srv.otpDigits)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByEmail(ctx, email); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrEmailNotRegistered
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.OtpRepo().Upsert(ctx, email, code); err != nil {
			return errors.Wrap(err, "failed to store reset code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to request password reset", slog.Any("error", err), slog.String("email", email))

		return err
	}

	if err := srv.mailer.SendPasswordResetCode(ctx, email, code); err != nil {
		srv.log(ctx).Error("Failed to send reset code", slog.Any("error", err), slog.String("email", email))
	}

	return nil
}

// ResetPassword exchanges a live (code, email) pair for a new password.
// Absence of the pair is the sole correctness check; consumption deletes the
// row, so replaying the same call fails the same way as a wrong code.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Resetting password", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		otpRepo := repoFactory.OtpRepo()

		if _, err := otpRepo.FindByEmailAndCode(ctx, input.Email, input.Code); err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrResetCodeNotFound
			}

			return errors.Wrap(err, "failed to look up reset code")
		}

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrResetCodeNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.PasswordHash = hash
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to consume reset code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to reset password", slog.Any("error", err), slog.String("email", input.Email))

		return err
	}

	srv.log(ctx).Info("Successfully reset password", slog.String("email", input.Email))

	return nil
}

// Refresh rotates the token pair. Verification alone authorizes the mint;
// the old refresh token stays valid until its own expiry because no
// server-side token store exists to revoke it.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, err
	}

	accessToken, err := srv.tokens.IssueAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	newRefreshToken, err := srv.tokens.IssueRefreshToken(claims.UserID, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Info("Rotated token pair", slog.Int64("user_id", claims.UserID))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
