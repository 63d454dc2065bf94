package decint

import "fmt"

// MustQuoRem is like [Int.QuoRem] but panics if y is 0.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v, %v) failed: %v", x, y, err))
	}
	return q, r
}

// MustQuo is like [Int.Quo] but panics if y is 0.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", x, y, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if y is 0.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v, %v) failed: %v", x, y, err))
	}
	return r
}

// MustPow is like [Int.Pow] but panics if e is negative.
func (x Int) MustPow(e Int) Int {
	z, err := x.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v, %v) failed: %v", x, e, err))
	}
	return z
}

// MustPowMod is like [Int.PowMod] but panics if e is negative or m is 0.
func (x Int) MustPowMod(e, m Int) Int {
	z, err := x.PowMod(e, m)
	if err != nil {
		panic(fmt.Sprintf("MustPowMod(%v, %v, %v) failed: %v", x, e, m, err))
	}
	return z
}
