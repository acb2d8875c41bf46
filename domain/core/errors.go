package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameters covers every precondition violation: out-of-range,
	// inconsistent, or missing required values. Raised before any arithmetic runs.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrCalculation wraps unexpected arithmetic failures occurring during an
	// otherwise-valid computation.
	ErrCalculation = errors.New("calculation failed")
)

// NewInvalidParameters builds an ErrInvalidParameters naming the offending
// value(s) and the violated constraint.
func NewInvalidParameters(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}

// NewCalculationError wraps err with context. Invalid-parameter roots pass
// through unchanged so callers always see the original constraint message.
func NewCalculationError(context string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidParameters) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrCalculation, context, err)
}

// Error checking helpers
func IsInvalidParameters(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}

func IsCalculationError(err error) bool {
	return errors.Is(err, ErrCalculation)
}
