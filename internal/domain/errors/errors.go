// Package errors defines the application error taxonomy. Every failure a
// usecase can produce maps to a stable HTTP status plus a business error code.
package errors

import (
	"net/http"

	"quill/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration and verification
	ErrEmailAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_USED",
		"Email already used",
		"",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_REGISTERED",
		"The email is not registered!",
		"",
	)

	ErrAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_VERIFIED",
		"Email already verified, You can login",
		"",
	)

	// Deliberately ambiguous between "unknown email" and "wrong code" so the
	// endpoint never confirms which one is true.
	ErrVerificationFailed = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_FAILED",
		"Something wrong, Either the Email is not registered or the otp is wrong",
		"",
	)

	// Login and tokens
	ErrEmailNotVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email before logging in.",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Wrong password!",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING",
		"Refresh token cookie is missing",
		"",
	)

	// Password reset
	ErrResetCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"RESET_CODE_NOT_FOUND",
		"No matching reset code for this email",
		"",
	)

	// Blogs, comments, likes, follows
	ErrBlogNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOG_NOT_FOUND",
		"Blog not found",
		"",
	)

	ErrBlogPrivate = NewBaseError(
		http.StatusForbidden,
		"BLOG_PRIVATE",
		"Blog is private",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrNotCommentAuthor = NewBaseError(
		http.StatusForbidden,
		"NOT_COMMENT_AUTHOR",
		"You only can update your own comments",
		"",
	)

	ErrAlreadyLiked = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_LIKED",
		"You have already liked this blog",
		"",
	)

	ErrOwnBlogLike = NewBaseError(
		http.StatusBadRequest,
		"OWN_BLOG_LIKE",
		"You cannot like your own blog",
		"",
	)

	ErrLikeNotFound = NewBaseError(
		http.StatusNotFound,
		"LIKE_NOT_FOUND",
		"You have not liked this blog",
		"",
	)

	ErrSelfFollow = NewBaseError(
		http.StatusBadRequest,
		"SELF_FOLLOW",
		"You can't follow yourself.",
		"",
	)

	ErrAlreadyFollowing = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_FOLLOWING",
		"You are already following this user.",
		"",
	)

	ErrFollowNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOW_NOT_FOUND",
		"You do not follow this user",
		"",
	)

	// General errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected error occurred",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
