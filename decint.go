package decint

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Int type is a representation of an arbitrary-precision signed integer
// stored as a sequence of decimal digits.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines:
// every operation returns a new Int and never modifies its operands.
//
// An Int is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Coefficient: the decimal digits of the absolute value.
//
// Each integer has exactly one representation: the coefficient has no
// leading zeros, and 0 is never negative.
type Int struct {
	neg  bool // indicates whether the integer is negative
	coef coef // the decimal digits of the absolute value
}

var one = Int{coef: coef{1}}

// newInt returns the canonical integer with the given sign and digits.
func newInt(neg bool, c coef) Int {
	c = c.norm()
	if c.isZero() {
		neg = false
	}
	return Int{neg: neg, coef: c}
}

// Parse converts a string to an integer.
// Every character other than a digit, a period or a minus sign is ignored,
// so the following strings all denote the same value:
//
//	-1234567
//	-1,234,567
//	  -1 234 567.000
//
// The formal EBNF grammar for the remaining characters is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	zeros          ::= { '0' }
//	numeric-string ::= ['-'] digits ['.' zeros]
//
// Parse accepts the output of [Int.String] and [Int.Display].
//
// Parse returns error:
//   - [ErrMalformedNumber] if there is more than one minus sign, a minus sign
//     after the first position, more than one period, or a non-zero digit
//     after the period;
//   - [ErrNoDigits] if the string has no decimal digits.
func Parse(s string) (Int, error) {
	x, err := parse(s)
	if err != nil {
		return Int{}, errors.Wrapf(err, "parsing %q", s)
	}
	return x, nil
}

func parse(s string) (Int, error) {
	var (
		pos    int    // position among admitted characters
		neg    bool   // minus sign seen
		point  bool   // period seen
		hasdig bool   // at least one digit seen
		digits []byte // integer digits, most significant first
	)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '-':
			switch {
			case neg:
				return Int{}, errors.Wrap(ErrMalformedNumber, "more than one minus sign")
			case pos != 0:
				return Int{}, errors.Wrapf(ErrMalformedNumber, "minus sign at position %v", pos)
			}
			neg = true
		case c == '.':
			if point {
				return Int{}, errors.Wrap(ErrMalformedNumber, "more than one period")
			}
			point = true
		case '0' <= c && c <= '9':
			hasdig = true
			switch {
			case point && c != '0':
				return Int{}, errors.Wrapf(ErrMalformedNumber, "fractional digit %q", c)
			case !point:
				digits = append(digits, c-'0')
			}
		default:
			continue
		}
		pos++
	}

	if !hasdig {
		return Int{}, ErrNoDigits
	}
	return canonicalize(neg, digits), nil
}

// canonicalize builds an integer from the sign and the digits, most
// significant first, stripping leading zeros.
func canonicalize(neg bool, digits []byte) Int {
	c := make(coef, len(digits))
	for i, d := range digits {
		c[len(digits)-1-i] = d
	}
	return newInt(neg, c)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of an integer: an optional minus sign
// followed by the digits without leading zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, len(x.coef)+1)
	if x.neg {
		buf = append(buf, '-')
	}
	for i := len(x.coef) - 1; i >= 0; i-- {
		buf = append(buf, x.coef[i]+'0')
	}
	return string(buf)
}

// Display returns the human-readable representation of an integer.
// Integers with four or more digits are grouped by three digits with commas,
// shorter integers get a 'd' suffix:
//
//	0         -> 0d
//	-789      -> -789d
//	56789     -> 56,789
//	-1234567  -> -1,234,567
//
// The result can be converted back with [Parse].
func (x Int) Display() string {
	n := max(x.Prec(), 1)
	buf := make([]byte, 0, n+n/3+2)
	if x.neg {
		buf = append(buf, '-')
	}
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, x.coef.digitAt(i)+'0')
		if n > 3 && i > 0 && i%3 == 0 {
			buf = append(buf, ',')
		}
	}
	if n <= 3 {
		buf = append(buf, 'd')
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// See also constructor [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = Parse(value)
	case []byte:
		*x, err = Parse(string(value))
	case int64:
		*x = New(value)
	case nil:
		err = errors.Errorf("%T does not support null values", x)
	default:
		err = errors.Errorf("failed to convert from %T to %T", value, Int{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Int.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -1234567
//	%q:        "-1234567"
//	%D:         -1,234,567
//
// The '+' and ' ' flags print the sign of non-negative integers.
// Width pads with spaces on the left, or on the right with the '-' flag.
// The '0' flag pads with zeros after the sign for %d, %s and %v.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	var digits string
	switch verb {
	case 'D':
		digits = x.Abs().Display()
	default:
		digits = x.Abs().String()
	}

	// Arithmetic sign
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' {
		quote = `"`
	}

	// Padding
	lspaces, tspaces, lzeroes := 0, 0, 0
	width := len(quote) + len(sign) + len(digits) + len(quote)
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'q' && verb != 'D':
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(quote)
	b.WriteString(sign)
	b.WriteString(strings.Repeat("0", lzeroes))
	b.WriteString(digits)
	b.WriteString(quote)
	b.WriteString(strings.Repeat(" ", tspaces))

	switch verb {
	case 'd', 's', 'v', 'q', 'D':
		io.WriteString(state, b.String())
	default:
		fmt.Fprintf(state, "%%!%c(decint.Int=%s)", verb, x.String())
	}
}

// Prec returns number of digits in the integer.
// Prec assumes that 0 has no digits.
func (x Int) Prec() int {
	return x.coef.prec()
}

// Digit returns the decimal digit of |x| at position i, where position 0 is
// the least-significant digit.
// Positions beyond the most-significant digit hold 0.
func (x Int) Digit(i int) int {
	return int(x.coef.digitAt(i))
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.coef.isZero():
		return 0
	}
	return 1
}

// IsNeg returns:
//
//	true  if x < 0
//	false otherwise
func (x Int) IsNeg() bool {
	return x.neg && !x.coef.isZero()
}

// IsPos returns:
//
//	true  if x > 0
//	false otherwise
func (x Int) IsPos() bool {
	return !x.neg && !x.coef.isZero()
}

// IsZero returns:
//
//	true  if x == 0
//	false otherwise
func (x Int) IsZero() bool {
	return x.coef.isZero()
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return x.coef.isOdd()
}

// IsEven returns true if x is divisible by 2.
func (x Int) IsEven() bool {
	return !x.coef.isOdd()
}

// Neg returns an integer with the opposite sign.
// Neg of 0 is 0.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.coef)
}

// Abs returns the absolute value of the integer.
func (x Int) Abs() Int {
	return newInt(false, x.coef)
}

// Add returns the sum of x and y.
func (x Int) Add(y Int) Int {
	switch {
	case x.neg == y.neg:
		return newInt(x.neg, x.coef.add(y.coef))
	case x.coef.cmp(y.coef) >= 0:
		return newInt(x.neg, x.coef.sub(y.coef))
	default:
		return newInt(y.neg, y.coef.sub(x.coef))
	}
}

// Sub returns the difference of x and y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns the product of x and y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, x.coef.mul(y.coef))
}

// QuoRem returns the quotient q and remainder r of x and y such that
// x = q * y + r, where q is rounded towards negative infinity.
// The remainder is 0 or has the sign of y, and |r| < |y|:
//
//	-10 / 9  = -2, remainder 8
//	10 / -9  = -2, remainder -8
//	-10 / -9 = 1, remainder -1
//
// QuoRem returns [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}

	// Magnitudes
	var qcoef, rcoef coef
	if y.Prec() == 1 {
		var rdig byte
		qcoef, rdig = x.coef.quoRemDigit(y.coef[0])
		rcoef = newCoef(uint64(rdig))
	} else {
		qcoef, rcoef = x.coef.quoRem(y.coef)
	}
	q, r = newInt(false, qcoef), newInt(false, rcoef)

	// Signs
	switch {
	case x.neg && y.neg:
		r = r.Neg()
	case x.neg:
		q = q.Neg()
		if !r.IsZero() {
			q = q.Sub(one)
			r = y.Sub(r)
		}
	case y.neg:
		q = q.Neg()
		if !r.IsZero() {
			q = q.Sub(one)
			r = r.Add(y)
		}
	}
	return q, r, nil
}

// Quo returns the quotient of x and y rounded towards negative infinity.
// See [Int.QuoRem] for details.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder of x and y, which is 0 or has the sign of y.
// See [Int.QuoRem] for details.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// half returns ⌊x / 2⌋ for non-negative x.
func (x Int) half() Int {
	q, _ := x.coef.quoRemDigit(2)
	return newInt(false, q)
}

// Pow returns x raised to the power of e.
// Pow(x, 0) is 1 for every x, including 0.
//
// Pow returns [ErrNegativeExponent] if e is less than 0.
func (x Int) Pow(e Int) (Int, error) {
	if e.IsNeg() {
		return Int{}, ErrNegativeExponent
	}
	z := one
	for !e.IsZero() {
		if e.IsOdd() {
			z = z.Mul(x)
			e = e.Sub(one)
		} else {
			x = x.Mul(x)
			e = e.half()
		}
	}
	return z, nil
}

// PowMod returns x raised to the power of e, reduced modulo m.
// The result is 0 or has the sign of m, as with [Int.Rem].
// Intermediate values never exceed m^2 in absolute value,
// however large e is.
//
// PowMod returns error:
//   - [ErrNegativeExponent] if e is less than 0;
//   - [ErrDivisionByZero] if m is 0.
func (x Int) PowMod(e, m Int) (Int, error) {
	switch {
	case e.IsNeg():
		return Int{}, ErrNegativeExponent
	case m.IsZero():
		return Int{}, ErrDivisionByZero
	}
	z := one.mod(m)
	x = x.mod(m)
	for !e.IsZero() {
		if e.IsOdd() {
			z = z.Mul(x).mod(m)
			e = e.Sub(one)
		} else {
			x = x.Mul(x).mod(m)
			e = e.half()
		}
	}
	return z, nil
}

// mod returns the remainder of x and non-zero m.
func (x Int) mod(m Int) Int {
	_, r, _ := x.QuoRem(m)
	return r
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	switch {
	case x.Sign() < y.Sign():
		return -1
	case y.Sign() < x.Sign():
		return 1
	case x.neg:
		return y.coef.cmp(x.coef)
	default:
		return x.coef.cmp(y.coef)
	}
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// LessEq returns true if x <= y.
func (x Int) LessEq(y Int) bool {
	return !y.Less(x)
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return !x.Less(y) && !y.Less(x)
}

// GreaterEq returns true if x >= y.
func (x Int) GreaterEq(y Int) bool {
	return !x.Less(y)
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return y.Less(x)
}

// Max returns maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Less(y) {
		return y
	}
	return x
}

// Min returns minimum of x and y.
func (x Int) Min(y Int) Int {
	if y.Less(x) {
		return y
	}
	return x
}
