package postgres

import (
	"context"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// oneTimeCodeRepository implements the domain.OneTimeCodeRepository interface using GORM.
// A non-zero ttl treats codes older than the cutoff as absent on lookup.
type oneTimeCodeRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewOneTimeCodeRepository is the constructor for oneTimeCodeRepository.
// ttl of zero disables staleness checks entirely.
func NewOneTimeCodeRepository(db *gorm.DB, ttl time.Duration) repository.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db, ttl: ttl}
}

// Upsert inserts a code for the email or overwrites the existing one.
// The ON CONFLICT clause on the unique email column makes the
// insert-or-update a single atomic statement, so concurrent regenerations
// resolve to last-writer-wins without a read-modify-write race.
func (repo *oneTimeCodeRepository) Upsert(ctx context.Context, email string, code int) error {
	otpM := model.OneTimeCodeModel{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "created_at"}),
	}).Create(&otpM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert one-time code")
	}

	return nil
}

// FindByEmailAndCode retrieves the live code matching both values.
func (repo *oneTimeCodeRepository) FindByEmailAndCode(ctx context.Context, email string, code int) (*entity.OneTimeCode, error) {
	var otpM model.OneTimeCodeModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find one-time code")
	}

	// A stale code is indistinguishable from a missing one.
	if repo.ttl > 0 && time.Since(otpM.CreatedAt) > repo.ttl {
		return nil, repository.ErrCodeNotFound
	}

	return toOneTimeCodeDomain(&otpM), nil
}

// DeleteByEmail removes the outstanding code for an email, if any.
// Deleting a non-existent code is not an error; consumption is idempotent.
func (repo *oneTimeCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.OneTimeCodeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete one-time code")
	}

	return nil
}

// toOneTimeCodeDomain converts a GORM OneTimeCodeModel to a domain OneTimeCode entity.
func toOneTimeCodeDomain(data *model.OneTimeCodeModel) *entity.OneTimeCode {
	if data == nil {
		return nil
	}

	return &entity.OneTimeCode{
		ID:        data.ID,
		Email:     data.Email,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
	}
}
