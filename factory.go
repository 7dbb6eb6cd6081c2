package fraction

import (
	"fmt"

	"github.com/soypat/fraction/intmath"
)

// Option configures the fractions built by the constructors in this package.
type Option func(*options)

type options struct {
	autoReduce bool
}

// WithAutoReduce selects whether the constructed fraction keeps itself in
// lowest terms. Auto-reduction is on by default.
func WithAutoReduce(enabled bool) Option {
	return func(o *options) { o.autoReduce = enabled }
}

func buildOptions(opts []Option) options {
	o := options{autoReduce: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MutableOf returns num/den as a mutable fraction. It fails if den is zero.
func MutableOf[N Int](num, den N, opts ...Option) (Mutable[N], error) {
	f, err := NewFrac(num, den)
	if err != nil {
		return nil, err
	}
	if buildOptions(opts).autoReduce {
		return NewAutoReduce[N](f), nil
	}
	return f, nil
}

// Of returns num/den as an immutable fraction. It fails if den is zero.
func Of[N Int](num, den N, opts ...Option) (Fraction[N], error) {
	m, err := MutableOf(num, den, opts...)
	if err != nil {
		return nil, err
	}
	return &ReadOnly[N]{m: m}, nil
}

// MustOf is like Of but panics if den is zero. It is meant for constants
// and tests.
func MustOf[N Int](num, den N, opts ...Option) Fraction[N] {
	f, err := Of(num, den, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns v/1.
func FromInt[N Int](v N, opts ...Option) Fraction[N] {
	return MustOf(v, 1, opts...)
}

// MutableFromInt returns v/1 as a mutable fraction.
func MutableFromInt[N Int](v N, opts ...Option) Mutable[N] {
	m, err := MutableOf(v, 1, opts...)
	if err != nil {
		panic(err) // unreachable, denominator is 1.
	}
	return m
}

// FromPair returns p.Num/p.Den.
func FromPair[N Int](p Pair[N], opts ...Option) (Fraction[N], error) {
	return Of(p.Num, p.Den, opts...)
}

// MutableFromPair returns p.Num/p.Den as a mutable fraction.
func MutableFromPair[N Int](p Pair[N], opts ...Option) (Mutable[N], error) {
	return MutableOf(p.Num, p.Den, opts...)
}

// ToMutable returns a mutable copy of f. Copies of auto-reducing fractions
// keep auto-reducing. Fractions from other implementations become a [Frac].
func ToMutable[N Int](f Fraction[N]) Mutable[N] {
	switch v := f.(type) {
	case *ReadOnly[N]:
		return v.Mutable()
	case Mutable[N]:
		return v.Clone()
	default:
		return &Frac[N]{num: f.Numerator(), den: f.Denominator()}
	}
}

// Reduced returns f in lowest terms as an immutable fraction.
func Reduced[N Int](f Fraction[N]) Fraction[N] {
	m := ToMutable(f)
	m.Reduce()
	return &ReadOnly[N]{m: m}
}

// Negate flips the sign of m by negating its denominator.
func Negate[N Int](m Mutable[N]) {
	if err := m.Set(m.Numerator(), -m.Denominator()); err != nil {
		panic(err) // unreachable, -d is zero only if d is.
	}
}

// Negated returns -f as an immutable fraction. The sign lands in the
// denominator: Negated(1/2) is 1/-2.
func Negated[N Int](f Fraction[N]) Fraction[N] {
	m := ToMutable(f)
	Negate(m)
	return &ReadOnly[N]{m: m}
}

// Exponentiate raises numerator and denominator of m to exp using exact
// integer arithmetic. A negative exp raises the reciprocal. Results wrap
// around on overflow; Exponentiate panics with ErrOverflow if the
// denominator wraps to zero and with ErrDivideByZero when raising a zero
// fraction to a negative power. Use [TryPow] to detect overflow.
func Exponentiate[N Int](m Mutable[N], exp int) {
	num, den := m.Numerator(), m.Denominator()
	if exp < 0 {
		if num == 0 {
			panic(ErrDivideByZero)
		}
		num, den = den, num
		exp = -exp
	}
	if err := m.Set(intmath.Pow(num, uint(exp)), intmath.Pow(den, uint(exp))); err != nil {
		panic(fmt.Errorf("%w: denominator of %s wrapped to zero: %v", ErrOverflow, m, err))
	}
}

// Exponentiated returns f raised to exp as an immutable fraction.
// See [Exponentiate].
func Exponentiated[N Int](f Fraction[N], exp int) Fraction[N] {
	m := ToMutable(f)
	Exponentiate(m, exp)
	return &ReadOnly[N]{m: m}
}
