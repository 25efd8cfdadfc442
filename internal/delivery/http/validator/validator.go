// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "quill/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo's c.Validate calls.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct tag validation and maps failures onto the domain's
// validation error so the HTTP error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
