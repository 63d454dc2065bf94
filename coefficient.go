package decint

// coef (COEFficient) is the magnitude of an integer stored as decimal digits,
// one digit value 0..9 per element, least-significant digit first:
//
//	x = x[n-1]*10^(n-1) + ... + x[1]*10 + x[0]
//
// A coef is normalized if it has no most-significant zero digits.
// The normalized representation of 0 is the empty or nil slice.
// Methods never modify their receiver or arguments.
type coef []byte

// newCoef returns the digits of u.
func newCoef(u uint64) coef {
	var z coef
	for u != 0 {
		z = append(z, byte(u%10))
		u /= 10
	}
	return z
}

// norm truncates most-significant zero digits.
func (x coef) norm() coef {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x coef) prec() int {
	return len(x)
}

func (x coef) isZero() bool {
	return len(x) == 0
}

func (x coef) isOdd() bool {
	return x.digitAt(0)&1 != 0
}

// digitAt returns the digit at position i, where position 0 is the
// least-significant digit. Positions outside of x hold the digit 0.
func (x coef) digitAt(i int) byte {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// digitRange returns the value formed by digits at positions hi down to lo
// inclusive, most-significant first.
func (x coef) digitRange(lo, hi int) int {
	v := 0
	for i := hi; i >= lo; i-- {
		v = v*10 + int(x.digitAt(i))
	}
	return v
}

// cmp compares normalized x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x coef) cmp(y coef) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case y[i] < x[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x coef) add(y coef) coef {
	n := max(len(x), len(y))
	z := make(coef, n+1)
	var c byte
	for i := 0; i < n; i++ {
		s := x.digitAt(i) + y.digitAt(i) + c
		z[i], c = s%10, s/10
	}
	z[n] = c
	return z.norm()
}

// sub calculates x - y.
// sub assumes that x >= y.
func (x coef) sub(y coef) coef {
	z := make(coef, len(x))
	b := 0
	for i := range x {
		v := int(x[i]) - int(y.digitAt(i)) + b
		b = 0
		if v < 0 {
			v += 10
			b = -1
		}
		z[i] = byte(v)
	}
	return z.norm()
}

// lsh (Left Shift) calculates x * 10^shift.
func (x coef) lsh(shift int) coef {
	if shift <= 0 || x.isZero() {
		return x
	}
	z := make(coef, shift+len(x))
	copy(z[shift:], x)
	return z
}

// mulDigit calculates x * d, where 0 <= d <= 9.
func (x coef) mulDigit(d byte) coef {
	if d == 0 || x.isZero() {
		return nil
	}
	z := make(coef, len(x)+1)
	var c byte
	for i, xi := range x {
		p := xi*d + c
		z[i], c = p%10, p/10
	}
	z[len(x)] = c
	return z.norm()
}

// mul calculates x * y by accumulating shifted single-digit partial products.
func (x coef) mul(y coef) coef {
	var z coef
	for i, d := range y {
		z = z.add(x.mulDigit(d).lsh(i))
	}
	return z
}

// quoRemDigit calculates q = ⌊x / d⌋ and r = x - d * q, where 1 <= d <= 9.
func (x coef) quoRemDigit(d byte) (q coef, r byte) {
	q = make(coef, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		n := r*10 + x[i]
		q[i], r = n/d, n%d
	}
	return q.norm(), r
}

// normMultiplier returns a multiplier m such that the leading digit of
// m * y is at least 5 and m * y has the same number of digits as y,
// given the leading digit of y.
func normMultiplier(lead byte) byte {
	switch {
	case lead >= 5:
		return 1
	case lead == 1:
		return 5
	case lead == 2:
		return 3
	default:
		return 2
	}
}

// quoRem calculates q = ⌊x / y⌋ and r = x - y * q.
// quoRem assumes that y has at least two digits.
//
// This is Algorithm D from Knuth, TAOCP Vol. 2, section 4.3.1, in base 10.
// Both operands are scaled so the leading digit of the divisor is at least 5,
// which keeps every estimated quotient digit at most 2 above the true digit.
func (x coef) quoRem(y coef) (q, r coef) {
	if x.cmp(y) < 0 {
		return nil, x
	}

	// Normalization
	n := len(y)
	m := normMultiplier(y[n-1])
	v := y.mulDigit(m)
	u := make(coef, len(x)+1)
	copy(u, x.mulDigit(m))
	v1, v2 := int(v[n-1]), int(v[n-2])

	q = make(coef, len(u)-n)
	for j := len(u) - n - 1; j >= 0; j-- {
		w := u[j : j+n+1] // current window, the top digit brought down last

		// Estimation
		qhat, rhat := w.digitRange(n-1, n)/v1, w.digitRange(n-1, n)%v1
		for qhat >= 10 || (rhat < 10 && qhat*v2 > rhat*10+int(w.digitAt(n-2))) {
			qhat--
			rhat += v1
		}

		// Multiplication and subtraction
		c, b := 0, 0
		for i := 0; i < n; i++ {
			p := qhat*int(v[i]) + c
			c = p / 10
			t := int(w[i]) - p%10 + b
			b = 0
			if t < 0 {
				t += 10
				b = -1
			}
			w[i] = byte(t)
		}
		top := int(w[n]) - c + b

		// Adding back
		for top < 0 {
			qhat--
			c = 0
			for i := 0; i < n; i++ {
				s := int(w[i]) + int(v[i]) + c
				w[i], c = byte(s%10), s/10
			}
			top += c
		}
		w[n] = byte(top)
		q[j] = byte(qhat)
	}

	// Denormalization
	r = u[:n].norm()
	if m != 1 {
		r, _ = r.quoRemDigit(m)
	}
	return q.norm(), r
}
