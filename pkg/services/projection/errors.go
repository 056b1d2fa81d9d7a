package projection

import (
	"errors"
	"fmt"
)

// ErrInvalidInput rejects a (plan, year) pair before any arithmetic runs:
// out-of-range percentages, non-positive capacity, non-finite numbers.
var ErrInvalidInput = errors.New("invalid input")

// ErrDivisionByZero is the subset of invalid input that would make a derived
// figure undefined (depreciation, RevPAR, GOPPAR). It wraps ErrInvalidInput,
// so errors.Is(err, ErrInvalidInput) holds for both kinds; callers that want
// to render "N/A" instead of a validation message match this one first.
var ErrDivisionByZero = fmt.Errorf("division by zero: %w", ErrInvalidInput)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func divisionByZerof(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrDivisionByZero)...)
}
