// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can rely on struct tags for request validation.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the default tag-based rules.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
