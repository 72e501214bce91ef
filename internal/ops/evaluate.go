package ops

import (
	"github.com/mzaglia/passmint/internal/breach"
	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/strength"
)

// EvaluateInput contains parameters for the Evaluate operation.
type EvaluateInput struct {
	Password string
}

// Evaluate scores a password. A nil checker skips the breach lookup.
func Evaluate(input EvaluateInput, checker breach.Checker) (*strength.Result, error) {
	if input.Password == "" {
		return nil, errors.NewInvalidRequest("password is required")
	}
	result := strength.Evaluate(input.Password, checker)
	return &result, nil
}
