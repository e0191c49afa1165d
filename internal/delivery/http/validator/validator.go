// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "petsfeed/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator validates request payloads bound by Echo handlers.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates a validator with struct-tag based rules.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as a validation
// AppError so the error handler renders a 400 with field details.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
