package decint

import "github.com/pkg/errors"

var (
	// ErrMalformedNumber is returned when text violates the integer grammar:
	// more than one minus sign, a minus sign after the first position,
	// more than one period, or a non-zero digit after the period.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrNoDigits is returned when text contains no decimal digit.
	ErrNoDigits = errors.New("no digits")
	// ErrDivisionByZero is returned when a divisor or modulus is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeExponent is returned when an exponent is less than 0.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrOverflow is returned when an integer does not fit a fixed-width type.
	ErrOverflow = errors.New("integer overflow")
	// ErrUnknownOperation is returned by [Calculator.Eval] for an operation
	// name it does not know or a wrong number of operands.
	ErrUnknownOperation = errors.New("unknown operation")
)
