package decint

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Calculator evaluates operations on integers given as text and returns
// results as display text (see [Int.Display]).
// Operands may be raw text, canonical text or display text; they are
// converted with [Parse] before evaluation.
//
// A Calculator holds no mutable state and is safe for concurrent use.
type Calculator struct {
	log *slog.Logger
}

// Option configures a [Calculator].
type Option func(*Calculator)

// WithLogger makes the calculator trace every operation, its operands and
// its outcome to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		c.log = l
	}
}

// NewCalculator returns a calculator configured with the given options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// std is used by the package-level functions and traces nothing.
var std = NewCalculator()

// operands parses every argument of op.
func operands(op string, args ...string) ([]Int, error) {
	xs := make([]Int, len(args))
	for i, a := range args {
		x, err := Parse(a)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: operand %v", op, i+1)
		}
		xs[i] = x
	}
	return xs, nil
}

func (c *Calculator) trace(op string, args []string, res any, err error) {
	if c.log == nil {
		return
	}
	if err != nil {
		c.log.Debug("operation failed", "op", op, "args", args, "err", err.Error())
		return
	}
	c.log.Debug("operation", "op", op, "args", args, "result", res)
}

// unary evaluates a single-operand operation.
func (c *Calculator) unary(op string, a string, f func(x Int) (Int, error)) (string, error) {
	return c.eval(op, []string{a}, func(xs []Int) (Int, error) {
		return f(xs[0])
	})
}

// binary evaluates a two-operand operation.
func (c *Calculator) binary(op string, a, b string, f func(x, y Int) (Int, error)) (string, error) {
	return c.eval(op, []string{a, b}, func(xs []Int) (Int, error) {
		return f(xs[0], xs[1])
	})
}

func (c *Calculator) eval(op string, args []string, f func(xs []Int) (Int, error)) (string, error) {
	xs, err := operands(op, args...)
	if err != nil {
		c.trace(op, args, nil, err)
		return "", err
	}
	z, err := f(xs)
	if err != nil {
		err = errors.Wrap(err, op)
		c.trace(op, args, nil, err)
		return "", err
	}
	res := z.Display()
	c.trace(op, args, res, nil)
	return res, nil
}

// compare evaluates a comparison.
func (c *Calculator) compare(op string, a, b string, f func(x, y Int) bool) (bool, error) {
	args := []string{a, b}
	xs, err := operands(op, args...)
	if err != nil {
		c.trace(op, args, nil, err)
		return false, err
	}
	res := f(xs[0], xs[1])
	c.trace(op, args, res, nil)
	return res, nil
}

// Add returns a + b.
func (c *Calculator) Add(a, b string) (string, error) {
	return c.binary("add", a, b, func(x, y Int) (Int, error) {
		return x.Add(y), nil
	})
}

// Sub returns a - b.
func (c *Calculator) Sub(a, b string) (string, error) {
	return c.binary("sub", a, b, func(x, y Int) (Int, error) {
		return x.Sub(y), nil
	})
}

// Neg returns -a.
func (c *Calculator) Neg(a string) (string, error) {
	return c.unary("neg", a, func(x Int) (Int, error) {
		return x.Neg(), nil
	})
}

// Mul returns a * b.
func (c *Calculator) Mul(a, b string) (string, error) {
	return c.binary("mul", a, b, func(x, y Int) (Int, error) {
		return x.Mul(y), nil
	})
}

// Quo returns the quotient of a and b rounded towards negative infinity.
// See [Int.QuoRem].
func (c *Calculator) Quo(a, b string) (string, error) {
	return c.binary("quo", a, b, Int.Quo)
}

// Rem returns the remainder of a and b, which is 0 or has the sign of b.
// See [Int.QuoRem].
func (c *Calculator) Rem(a, b string) (string, error) {
	return c.binary("rem", a, b, Int.Rem)
}

// Pow returns a raised to the power of b.
func (c *Calculator) Pow(a, b string) (string, error) {
	return c.binary("pow", a, b, Int.Pow)
}

// PowMod returns a raised to the power of b, reduced modulo m.
func (c *Calculator) PowMod(a, b, m string) (string, error) {
	return c.eval("powmod", []string{a, b, m}, func(xs []Int) (Int, error) {
		return xs[0].PowMod(xs[1], xs[2])
	})
}

// Less reports whether a < b.
func (c *Calculator) Less(a, b string) (bool, error) {
	return c.compare("lt", a, b, Int.Less)
}

// LessEq reports whether a <= b.
func (c *Calculator) LessEq(a, b string) (bool, error) {
	return c.compare("le", a, b, Int.LessEq)
}

// Equal reports whether a == b.
func (c *Calculator) Equal(a, b string) (bool, error) {
	return c.compare("eq", a, b, Int.Equal)
}

// GreaterEq reports whether a >= b.
func (c *Calculator) GreaterEq(a, b string) (bool, error) {
	return c.compare("ge", a, b, Int.GreaterEq)
}

// Greater reports whether a > b.
func (c *Calculator) Greater(a, b string) (bool, error) {
	return c.compare("gt", a, b, Int.Greater)
}

// operation describes an entry of the operation table used by [Calculator.Eval].
type operation struct {
	arity int
	eval  func(c *Calculator, args []string) (string, error)
}

func comparison(f func(c *Calculator, a, b string) (bool, error)) operation {
	return operation{2, func(c *Calculator, args []string) (string, error) {
		ok, err := f(c, args[0], args[1])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil
	}}
}

var operations = map[string]operation{
	"add": {2, func(c *Calculator, args []string) (string, error) { return c.Add(args[0], args[1]) }},
	"sub": {2, func(c *Calculator, args []string) (string, error) { return c.Sub(args[0], args[1]) }},
	"neg": {1, func(c *Calculator, args []string) (string, error) { return c.Neg(args[0]) }},
	"mul": {2, func(c *Calculator, args []string) (string, error) { return c.Mul(args[0], args[1]) }},
	"quo": {2, func(c *Calculator, args []string) (string, error) { return c.Quo(args[0], args[1]) }},
	"rem": {2, func(c *Calculator, args []string) (string, error) { return c.Rem(args[0], args[1]) }},
	"pow": {2, func(c *Calculator, args []string) (string, error) { return c.Pow(args[0], args[1]) }},
	"powmod": {3, func(c *Calculator, args []string) (string, error) {
		return c.PowMod(args[0], args[1], args[2])
	}},
	"lt": comparison((*Calculator).Less),
	"le": comparison((*Calculator).LessEq),
	"eq": comparison((*Calculator).Equal),
	"ge": comparison((*Calculator).GreaterEq),
	"gt": comparison((*Calculator).Greater),
}

func init() {
	operations["divide"] = operations["quo"]
	operations["mod"] = operations["rem"]
}

// Operations returns the names accepted by [Calculator.Eval] in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates the operation named op on args.
// Arithmetic operations return display text, comparisons return
// "true" or "false".
// The names are add, sub, neg, mul, quo, rem, pow, powmod, lt, le, eq, ge
// and gt; divide and mod are aliases of quo and rem.
//
// Eval returns [ErrUnknownOperation] if op is not one of these names or
// args has the wrong number of operands.
func (c *Calculator) Eval(op string, args ...string) (string, error) {
	o, ok := operations[op]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOperation, "%q", op)
	}
	if len(args) != o.arity {
		return "", errors.Wrapf(ErrUnknownOperation, "%v takes %v operands, got %v", op, o.arity, len(args))
	}
	return o.eval(c, args)
}

// Eval evaluates the operation named op on args with a silent calculator.
// See [Calculator.Eval].
func Eval(op string, args ...string) (string, error) { return std.Eval(op, args...) }

// Add returns a + b as display text.
// See [Calculator.Add].
func Add(a, b string) (string, error) { return std.Add(a, b) }

// Sub returns a - b as display text.
func Sub(a, b string) (string, error) { return std.Sub(a, b) }

// Neg returns -a as display text.
func Neg(a string) (string, error) { return std.Neg(a) }

// Mul returns a * b as display text.
func Mul(a, b string) (string, error) { return std.Mul(a, b) }

// Quo returns the floor quotient of a and b as display text.
func Quo(a, b string) (string, error) { return std.Quo(a, b) }

// Rem returns the floor remainder of a and b as display text.
func Rem(a, b string) (string, error) { return std.Rem(a, b) }

// Pow returns a^b as display text.
func Pow(a, b string) (string, error) { return std.Pow(a, b) }

// PowMod returns a^b mod m as display text.
func PowMod(a, b, m string) (string, error) { return std.PowMod(a, b, m) }

// Less reports whether a < b.
func Less(a, b string) (bool, error) { return std.Less(a, b) }

// LessEq reports whether a <= b.
func LessEq(a, b string) (bool, error) { return std.LessEq(a, b) }

// Equal reports whether a == b.
func Equal(a, b string) (bool, error) { return std.Equal(a, b) }

// GreaterEq reports whether a >= b.
func GreaterEq(a, b string) (bool, error) { return std.GreaterEq(a, b) }

// Greater reports whether a > b.
func Greater(a, b string) (bool, error) { return std.Greater(a, b) }
