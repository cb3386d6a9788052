package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invalid caller input: empty sequences, non-positive sample sizes,
	// out-of-range probabilities, mismatched table dimensions.
	ErrInvalidInput = errors.New("invalid input")

	// Degenerate correlation structure with no usable pseudo-inverse,
	// e.g. a constant column in the raw data.
	ErrSingularMatrix = errors.New("singular matrix")
)

// Error constructors with context
func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

func NewSingularMatrixError(reason string) error {
	return fmt.Errorf("%w: %s", ErrSingularMatrix, reason)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsSingularMatrix(err error) bool {
	return errors.Is(err, ErrSingularMatrix)
}
