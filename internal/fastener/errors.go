package fastener

import (
	"errors"
	"fmt"
)

// Domain errors for fastener calculations.
var (
	// ErrInvalidThreadSpec indicates that zero or both of pitch and threads per inch were given.
	ErrInvalidThreadSpec = errors.New("fastener: exactly one of pitch or threads per inch is required")

	// ErrInvalidGeometry indicates a non-positive stiffness denominator or grip length.
	ErrInvalidGeometry = errors.New("fastener: invalid joint geometry")

	// ErrInvalidMaterial indicates a non-positive Young's modulus.
	ErrInvalidMaterial = errors.New("fastener: invalid material property")

	// ErrInvalidJointConstant indicates c >= 1 where 1-c is a divisor.
	ErrInvalidJointConstant = errors.New("fastener: joint constant out of range")

	// ErrInvalidArea indicates a non-positive tensile stress area.
	ErrInvalidArea = errors.New("fastener: tensile stress area must be positive")

	// ErrLengthMismatch indicates series inputs of differing lengths within one call.
	ErrLengthMismatch = errors.New("fastener: series length mismatch")

	// ErrEmptySeries indicates a series input without elements.
	ErrEmptySeries = errors.New("fastener: empty series")
)

// CalcError wraps an error with the operation that raised it.
type CalcError struct {
	Op      string
	Index   int
	Wrapped error
}

func (e *CalcError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %v", e.Op, e.Index, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

func (e *CalcError) Unwrap() error {
	return e.Wrapped
}

func opError(op string, err error) error {
	return &CalcError{Op: op, Index: -1, Wrapped: err}
}
