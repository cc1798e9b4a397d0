package num

import "github.com/zeebo/errs"

// Error classes returned by operations in this package. Use Has to test an
// error against a class:
//
//	if num.ErrDivisionByZero.Has(err) { ... }
var (
	// ErrDivisionByZero is returned when dividing a U256 or a Scaled by zero.
	ErrDivisionByZero = errs.Class("num: division by zero")

	// ErrOverflow is returned when a narrowing conversion cannot hold the
	// value being converted.
	ErrOverflow = errs.Class("num: overflow")

	// ErrInvalidOperand is returned when an input cannot be interpreted as a
	// number at all.
	ErrInvalidOperand = errs.Class("num: invalid operand")
)
