// Package intmath implements the integer number theory used by fraction
// reduction: greatest common divisor, least common multiple and
// overflow-aware arithmetic on fixed width signed integers.
package intmath

import (
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The result is never negative, so GCD(a, 0) == Abs(a) and
// GCD(0, b) == Abs(b). GCD(0, 0) is 0.
//
// The one exception is when the divisor is the minimum value of T, whose
// absolute value is not representable; the result is then that minimum value.
func GCD[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// LCM returns the least common multiple of a and b, computed as
// a / GCD(a, b) * b. The result is never negative. LCM(0, x) is 0.
// The product may wrap around if it does not fit in T.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a / GCD(a, b) * b)
}

// Abs returns the absolute value of v. Abs of the minimum value of T is
// the minimum value itself.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Pow returns base raised to exp by repeated squaring. Like the builtin
// operators it wraps around silently on overflow.
func Pow[T constraints.Signed](base T, exp uint) T {
	result := T(1)
	for exp > 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		if exp > 0 {
			base *= base
		}
	}
	return result
}

// AddChecked returns a+b and false if the sum overflowed T.
func AddChecked[T constraints.Signed](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

// SubChecked returns a-b and false if the difference overflowed T.
func SubChecked[T constraints.Signed](a, b T) (T, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return c, false
	}
	return c, true
}

// MulChecked returns a*b and false if the product overflowed T.
func MulChecked[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return c, false
	}
	// min * -1 wraps back to min and survives the division check.
	if b == -1 && a < 0 && c < 0 {
		return c, false
	}
	return c, true
}

// PowChecked is Pow that reports false if any intermediate product overflowed.
func PowChecked[T constraints.Signed](base T, exp uint) (T, bool) {
	result := T(1)
	var ok bool
	for exp > 0 {
		if exp&1 != 0 {
			result, ok = MulChecked(result, base)
			if !ok {
				return result, false
			}
		}
		exp >>= 1
		if exp > 0 {
			base, ok = MulChecked(base, base)
			if !ok {
				return result, false
			}
		}
	}
	return result, true
}

// Narrow converts v to T and reports whether the conversion preserved the value.
func Narrow[T constraints.Signed](v int64) (T, bool) {
	t := T(v)
	return t, int64(t) == v
}
