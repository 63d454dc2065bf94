package decint

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// New returns an integer equal to v.
func New(v int64) Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return newInt(v < 0, newCoef(u))
}

// Int64 returns the integer as int64.
// Int64 returns [ErrOverflow] if x does not fit into int64.
func (x Int) Int64() (int64, error) {
	if x.Prec() > 19 {
		return 0, errors.Wrapf(ErrOverflow, "%v does not fit into int64", x)
	}
	var u uint64
	for i := len(x.coef) - 1; i >= 0; i-- {
		u = u*10 + uint64(x.coef[i])
	}
	switch {
	case x.neg && u > -math.MinInt64:
		return 0, errors.Wrapf(ErrOverflow, "%v does not fit into int64", x)
	case x.neg:
		return int64(-u), nil
	case u > math.MaxInt64:
		return 0, errors.Wrapf(ErrOverflow, "%v does not fit into int64", x)
	}
	return int64(u), nil
}

// NewFromBigInt returns an integer equal to b.
// A nil b is treated as 0.
func NewFromBigInt(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	x, err := parse(b.String())
	if err != nil {
		panic(err) // big.Int.String output is always parsable
	}
	return x
}

// BigInt returns the integer as a newly allocated *big.Int.
func (x Int) BigInt() *big.Int {
	b, _ := new(big.Int).SetString(x.String(), 10)
	return b
}

// NewFromUint256 returns an integer equal to u.
// A nil u is treated as 0.
func NewFromUint256(u *uint256.Int) Int {
	if u == nil {
		return Int{}
	}
	x, err := parse(u.Dec())
	if err != nil {
		panic(err) // uint256.Int.Dec output is always parsable
	}
	return x
}

// Uint256 returns the integer as a 256-bit unsigned integer.
// Uint256 returns [ErrOverflow] if x is negative or greater than 2^256 - 1.
func (x Int) Uint256() (*uint256.Int, error) {
	if x.IsNeg() {
		return nil, errors.Wrapf(ErrOverflow, "%v is negative", x)
	}
	u, err := uint256.FromDecimal(x.String())
	if err != nil {
		return nil, errors.Wrapf(ErrOverflow, "%v does not fit into 256 bits: %v", x, err)
	}
	return u, nil
}
