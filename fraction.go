// Package fraction implements exact ratios of fixed width signed integers.
//
// A fraction is a numerator/denominator pair of the same integer kind N
// (int32 or int64, or a type defined on one of them). Three representations
// share the [Fraction] contract:
//
//   - [Frac] is the mutable core. Its fields change in place through the
//     compound operators (AddAssign, SubAssign, MulAssign, DivAssign).
//   - [AutoReduce] wraps a mutable fraction and reduces it to lowest terms
//     at construction and after every mutation.
//   - [ReadOnly] owns a private copy of a mutable fraction and exposes no
//     mutators. It is safe to share between goroutines.
//
// Arithmetic is carried out in N and wraps around silently on overflow, like
// Go's builtin integer operators. Use [TryAdd] and friends when overflow must
// be detected. Fractions are not reduced unless asked to: 2/4 and 1/2 are
// different values for [Fraction.Equal] until one of them is reduced.
package fraction

import (
	"cmp"
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Int is the set of integer kinds a fraction can be built on.
type Int interface {
	~int32 | ~int64
}

// Errors returned (or panicked with) by this package. Test for them with errors.Is.
var (
	ErrZeroDenominator = errors.New("fraction: zero denominator")
	ErrDivideByZero    = errors.New("fraction: division by zero")
	ErrOverflow        = errors.New("fraction: integer overflow")
)

// Fraction is the read contract shared by all fraction representations.
// The pure arithmetic methods never modify the receiver or the operand;
// they return a new fraction of the receiver's representation.
type Fraction[N Int] interface {
	Numerator() N
	// Denominator is never zero.
	Denominator() N
	// Sign returns 0 if the numerator is zero, 1 if numerator and
	// denominator share sign and -1 otherwise.
	Sign() int

	Add(other Fraction[N]) Fraction[N]
	Sub(other Fraction[N]) Fraction[N]
	Mul(other Fraction[N]) Fraction[N]
	// Div panics with ErrDivideByZero if other is zero.
	Div(other Fraction[N]) Fraction[N]

	// Compare returns -1, 0 or 1 depending on whether the receiver's value is
	// less than, equal to or greater than other's, by cross multiplication.
	Compare(other Fraction[N]) int
	// Equal reports whether numerators and denominators are pairwise equal.
	Equal(other Fraction[N]) bool
	// Hash is consistent with Equal.
	Hash() uint64

	Float32() float32
	Float64() float64

	// Copy returns an independent fraction of the same representation.
	Copy() Fraction[N]
	// String returns "numerator/denominator" without any normalization.
	String() string
}

// Mutable is a fraction that can be modified in place.
type Mutable[N Int] interface {
	Fraction[N]
	// Set replaces both fields. It fails if den is zero.
	Set(num, den N) error
	AddAssign(other Fraction[N])
	SubAssign(other Fraction[N])
	MulAssign(other Fraction[N])
	// DivAssign panics with ErrDivideByZero if other is zero.
	DivAssign(other Fraction[N])
	// Reduce divides numerator and denominator by their greatest common
	// divisor. If both end up negative, both are made positive. A lone
	// negative sign is left in place. When either field is the minimum
	// value of N its sign cannot be flipped, so MinInt/-1 stays MinInt/-1.
	Reduce()
	// Clone returns an independent copy of the same representation.
	Clone() Mutable[N]
}

// Pair is a numerator/denominator pair. Unlike a [Fraction] it is comparable
// with == and can be used as a map key.
type Pair[N Int] struct {
	Num N
	Den N
}

// PairOf returns the fields of f.
func PairOf[N Int](f Fraction[N]) Pair[N] {
	return Pair[N]{Num: f.Numerator(), Den: f.Denominator()}
}

// String returns "Num/Den".
func (p Pair[N]) String() string {
	return format(p.Num, p.Den)
}

// Compare is [Fraction.Compare] as a function, suitable for slices.SortFunc.
func Compare[N Int](a, b Fraction[N]) int {
	return a.Compare(b)
}

func sign[N Int](num, den N) int {
	switch {
	case num == 0:
		return 0
	case (num > 0) == (den > 0):
		return 1
	default:
		return -1
	}
}

// compare orders a/b against c/d by comparing a*d with c*b. The result is
// flipped when exactly one denominator is negative.
func compare[N Int](a, b, c, d N) int {
	r := cmp.Compare(a*d, c*b)
	if (b < 0) != (d < 0) {
		r = -r
	}
	return r
}

func equal[N Int](f, other Fraction[N]) bool {
	if other == nil {
		return false
	}
	return f.Numerator() == other.Numerator() && f.Denominator() == other.Denominator()
}

func hash[N Int](num, den N) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(num))
	binary.LittleEndian.PutUint64(buf[8:], uint64(den))
	return xxhash.Sum64(buf[:])
}

func format[N Int](num, den N) string {
	return strconv.FormatInt(int64(num), 10) + "/" + strconv.FormatInt(int64(den), 10)
}
