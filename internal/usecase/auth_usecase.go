// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// VerifyEmailInput carries the (email, code) pair of a verification attempt.
type VerifyEmailInput struct {
	Email string
	Code  int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the (code, email) proof plus the new password.
type ResetPasswordInput struct {
	Email       string
	Code        int
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a freshly rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// ResendCodeOutput returns the regenerated verification code. The plaintext
// code is a development-only debug aid; the handler must not expose it in
// production.
type ResendCodeOutput struct {
	Code int
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	VerifyEmail(ctx context.Context, input VerifyEmailInput) error
	ResendVerificationCode(ctx context.Context, email string) (*ResendCodeOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
}
