package fraction

import (
	"fmt"

	"github.com/soypat/fraction/intmath"
)

// Frac is the mutable fraction core. It is not reduced automatically and
// must not be used concurrently with writes without external locking.
type Frac[N Int] struct {
	num N
	den N
}

var _ Mutable[int64] = (*Frac[int64])(nil)

// NewFrac returns num/den as a plain mutable fraction.
func NewFrac[N Int](num, den N) (*Frac[N], error) {
	if den == 0 {
		return nil, fmt.Errorf("%w: %d/%d", ErrZeroDenominator, num, den)
	}
	return &Frac[N]{num: num, den: den}, nil
}

func (f *Frac[N]) Numerator() N   { return f.num }
func (f *Frac[N]) Denominator() N { return f.den }
func (f *Frac[N]) Sign() int      { return sign(f.num, f.den) }

func (f *Frac[N]) Set(num, den N) error {
	if den == 0 {
		return fmt.Errorf("%w: %d/%d", ErrZeroDenominator, num, den)
	}
	f.num, f.den = num, den
	return nil
}

// AddAssign sets f to f + other. Equal denominators are added without
// growing the denominator.
func (f *Frac[N]) AddAssign(other Fraction[N]) {
	on, od := other.Numerator(), other.Denominator()
	if f.den == od {
		f.num += on
		return
	}
	f.num = f.num*od + on*f.den
	f.den *= od
}

// SubAssign sets f to f - other.
func (f *Frac[N]) SubAssign(other Fraction[N]) {
	on, od := other.Numerator(), other.Denominator()
	if f.den == od {
		f.num -= on
		return
	}
	f.num = f.num*od - on*f.den
	f.den *= od
}

// MulAssign sets f to f * other.
func (f *Frac[N]) MulAssign(other Fraction[N]) {
	f.num *= other.Numerator()
	f.den *= other.Denominator()
}

// DivAssign sets f to f / other, that is f times the reciprocal of other.
func (f *Frac[N]) DivAssign(other Fraction[N]) {
	on := other.Numerator()
	if on == 0 {
		panic(ErrDivideByZero)
	}
	f.num *= other.Denominator()
	f.den *= on
}

func (f *Frac[N]) Reduce() {
	g := intmath.GCD(f.num, f.den)
	if g != 1 {
		f.num /= g
		f.den /= g
	}
	// -MinInt wraps to MinInt; flipping would change the sign of the value.
	if f.num < 0 && f.den < 0 && f.num != -f.num && f.den != -f.den {
		f.num, f.den = -f.num, -f.den
	}
}

func (f *Frac[N]) Add(other Fraction[N]) Fraction[N] {
	c := f.Clone()
	c.AddAssign(other)
	return c
}

func (f *Frac[N]) Sub(other Fraction[N]) Fraction[N] {
	c := f.Clone()
	c.SubAssign(other)
	return c
}

func (f *Frac[N]) Mul(other Fraction[N]) Fraction[N] {
	c := f.Clone()
	c.MulAssign(other)
	return c
}

func (f *Frac[N]) Div(other Fraction[N]) Fraction[N] {
	c := f.Clone()
	c.DivAssign(other)
	return c
}

func (f *Frac[N]) Compare(other Fraction[N]) int {
	if Fraction[N](f) == other {
		return 0
	}
	return compare(f.num, f.den, other.Numerator(), other.Denominator())
}

func (f *Frac[N]) Equal(other Fraction[N]) bool { return equal[N](f, other) }
func (f *Frac[N]) Hash() uint64                 { return hash(f.num, f.den) }
func (f *Frac[N]) Float32() float32             { return float32(f.num) / float32(f.den) }
func (f *Frac[N]) Float64() float64             { return float64(f.num) / float64(f.den) }
func (f *Frac[N]) String() string               { return format(f.num, f.den) }

func (f *Frac[N]) Copy() Fraction[N] { return f.Clone() }

func (f *Frac[N]) Clone() Mutable[N] {
	return &Frac[N]{num: f.num, den: f.den}
}
