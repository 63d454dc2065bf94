/*
Package decint implements immutable arbitrary-precision integers stored as
decimal digits.
Integers are parsed from human-readable text, computed on digit by digit
without conversion to binary, and rendered back to text.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Coefficient: the decimal digits of the absolute value, one digit per
    element, least-significant digit first.

Every integer has exactly one representation:
the coefficient has no leading zeros, and 0 is never negative.
There is no upper bound on the number of digits.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [Int.String], [Int.Display], [Int.Format].
  - from/to int64:
    [New], [Int.Int64].
  - from/to [big.Int]:
    [NewFromBigInt], [Int.BigInt].
  - from/to [uint256.Int]:
    [NewFromUint256], [Int.Uint256].

[Parse] ignores every character other than digits, a period and a minus sign,
so grouping commas, spaces and the 'd' suffix of display text are accepted.
A fractional part is accepted only if all of its digits are zeros.

[Int.Display] groups integers of four or more digits by three digits with
commas (56,789) and appends a 'd' suffix to shorter integers (789d).

# Operations

Arithmetic operations are implemented with schoolbook algorithms:

  - [Int.Add], [Int.Sub], [Int.Neg]:
    digit by digit with a carry or borrow.
  - [Int.Mul]:
    single-digit products shifted and accumulated.
  - [Int.QuoRem], [Int.Quo], [Int.Rem]:
    long division with a normalized divisor and quotient digit correction,
    with a fast path for single-digit divisors.
  - [Int.Pow], [Int.PowMod]:
    square-and-multiply.

Division rounds the quotient towards negative infinity, so the remainder is
either 0 or has the sign of the divisor.

The [Calculator] type and the package-level functions [Add], [Sub], [Neg],
[Mul], [Quo], [Rem], [Pow], [PowMod], [Less], [LessEq], [Equal], [GreaterEq]
and [Greater] accept operands as text and return display text.
[Calculator.Eval] dispatches the same operations by name.
A calculator can trace operations to a [slog.Logger].

# Errors

All methods are pure and, except for the Must variants, panic-free.
Errors are returned in the following cases:

  - [ErrMalformedNumber], [ErrNoDigits]:
    text cannot be parsed as an integer.
  - [ErrDivisionByZero]:
    [Int.QuoRem], [Int.Quo], [Int.Rem] with a zero divisor, or
    [Int.PowMod] with a zero modulus.
  - [ErrNegativeExponent]:
    [Int.Pow] or [Int.PowMod] with a negative exponent.
  - [ErrOverflow]:
    conversion to a fixed-width type that cannot hold the value.
  - [ErrUnknownOperation]:
    [Calculator.Eval] with an unknown name or a wrong number of operands.

Returned errors carry context and can be matched with [errors.Is].

[uint256.Int]: https://pkg.go.dev/github.com/holiman/uint256#Int
*/
package decint
