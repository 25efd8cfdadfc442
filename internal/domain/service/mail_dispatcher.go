package service

import "context"

// MailDispatcher sends one-time codes out of band. Implementations are
// best-effort collaborators: callers log a dispatch failure and move on,
// they never roll back the operation that produced the code.
type MailDispatcher interface {
	// SendVerificationCode delivers an account verification code.
	SendVerificationCode(ctx context.Context, email string, code int) error

	// SendPasswordResetCode delivers a password reset code.
	SendPasswordResetCode(ctx context.Context, email string, code int) error
}
