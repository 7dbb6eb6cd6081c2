package fraction

import (
	"fmt"

	"github.com/soypat/fraction/intmath"
)

// TryAdd returns a+b with the same formula as [Frac.AddAssign], or an error
// wrapping ErrOverflow if any intermediate result does not fit in N.
func TryAdd[N Int](a, b Fraction[N]) (Pair[N], error) {
	an, ad, bn, bd := a.Numerator(), a.Denominator(), b.Numerator(), b.Denominator()
	if ad == bd {
		num, ok := intmath.AddChecked(an, bn)
		if !ok {
			return Pair[N]{}, overflow(a, "+", b)
		}
		return Pair[N]{Num: num, Den: ad}, nil
	}
	x, ok1 := intmath.MulChecked(an, bd)
	y, ok2 := intmath.MulChecked(bn, ad)
	num, ok3 := intmath.AddChecked(x, y)
	den, ok4 := intmath.MulChecked(ad, bd)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Pair[N]{}, overflow(a, "+", b)
	}
	return Pair[N]{Num: num, Den: den}, nil
}

// TrySub returns a-b, or an error wrapping ErrOverflow.
func TrySub[N Int](a, b Fraction[N]) (Pair[N], error) {
	an, ad, bn, bd := a.Numerator(), a.Denominator(), b.Numerator(), b.Denominator()
	if ad == bd {
		num, ok := intmath.SubChecked(an, bn)
		if !ok {
			return Pair[N]{}, overflow(a, "-", b)
		}
		return Pair[N]{Num: num, Den: ad}, nil
	}
	x, ok1 := intmath.MulChecked(an, bd)
	y, ok2 := intmath.MulChecked(bn, ad)
	num, ok3 := intmath.SubChecked(x, y)
	den, ok4 := intmath.MulChecked(ad, bd)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Pair[N]{}, overflow(a, "-", b)
	}
	return Pair[N]{Num: num, Den: den}, nil
}

// TryMul returns a*b, or an error wrapping ErrOverflow.
func TryMul[N Int](a, b Fraction[N]) (Pair[N], error) {
	num, ok1 := intmath.MulChecked(a.Numerator(), b.Numerator())
	den, ok2 := intmath.MulChecked(a.Denominator(), b.Denominator())
	if !ok1 || !ok2 {
		return Pair[N]{}, overflow(a, "*", b)
	}
	return Pair[N]{Num: num, Den: den}, nil
}

// TryDiv returns a/b, or an error wrapping ErrDivideByZero or ErrOverflow.
func TryDiv[N Int](a, b Fraction[N]) (Pair[N], error) {
	if b.Numerator() == 0 {
		return Pair[N]{}, fmt.Errorf("%w: %s / %s", ErrDivideByZero, a, b)
	}
	num, ok1 := intmath.MulChecked(a.Numerator(), b.Denominator())
	den, ok2 := intmath.MulChecked(a.Denominator(), b.Numerator())
	if !ok1 || !ok2 {
		return Pair[N]{}, overflow(a, "/", b)
	}
	return Pair[N]{Num: num, Den: den}, nil
}

// TryPow returns f raised to exp, or an error wrapping ErrOverflow or
// ErrDivideByZero. See [Exponentiate].
func TryPow[N Int](f Fraction[N], exp int) (Pair[N], error) {
	num, den := f.Numerator(), f.Denominator()
	if exp < 0 {
		if num == 0 {
			return Pair[N]{}, fmt.Errorf("%w: %s^%d", ErrDivideByZero, f, exp)
		}
		num, den = den, num
		exp = -exp
	}
	num, ok1 := intmath.PowChecked(num, uint(exp))
	den, ok2 := intmath.PowChecked(den, uint(exp))
	if !ok1 || !ok2 {
		return Pair[N]{}, fmt.Errorf("%w: %s^%d", ErrOverflow, f, exp)
	}
	return Pair[N]{Num: num, Den: den}, nil
}

func overflow[N Int](a Fraction[N], op string, b Fraction[N]) error {
	return fmt.Errorf("%w: %s %s %s", ErrOverflow, a, op, b)
}
