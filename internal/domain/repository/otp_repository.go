package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrCodeNotFound is returned when no live one-time code matches a lookup.
// A consumed or overwritten code is indistinguishable from one that never
// existed; absence is the single-use guard.
var ErrCodeNotFound = errors.New("one-time code not found")

// OneTimeCodeRepository defines persistence for the shared verification /
// password-reset code store.
type OneTimeCodeRepository interface {
	// Upsert inserts a code for the email or overwrites the existing one.
	// The store performs the insert-or-update atomically on the unique email
	// key, so concurrent regenerations resolve to last-writer-wins.
	Upsert(ctx context.Context, email string, code int) error

	// FindByEmailAndCode retrieves the live code matching both values.
	// Returns ErrCodeNotFound when absent or stale.
	FindByEmailAndCode(ctx context.Context, email string, code int) (*entity.OneTimeCode, error)

	// DeleteByEmail removes the outstanding code for an email, if any.
	DeleteByEmail(ctx context.Context, email string) error
}
