package quantity

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrEmpty            = errors.New("empty quantity")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidUnit      = errors.New("invalid unit expression")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrUnitMismatch     = errors.New("incompatible units")
	ErrExponentOverflow = errors.New("unit exponent out of range")
	ErrInvalidRoot      = errors.New("invalid root")
	ErrDuplicateUnit    = errors.New("unit already defined")
	ErrInvalidSymbol    = errors.New("invalid unit symbol")
	ErrInvalidFactor    = errors.New("invalid unit factor")
)

// MismatchError reports an addition or subtraction between values of
// different dimensions.
type MismatchError struct {
	Op          string
	Left, Right Dimension
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"%s: cannot %s %s and %s",
		ErrUnitMismatch, e.Op, e.Left.describe(), e.Right.describe(),
	)
}

// Unwrap returns [ErrUnitMismatch].
func (e *MismatchError) Unwrap() error { return ErrUnitMismatch }
