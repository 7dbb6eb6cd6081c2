package unstable

import (
	"fmt"

	"github.com/soypat/fraction"
	"github.com/soypat/fraction/intmath"
)

// FromFloat32 returns v as an immutable fraction with a power of ten
// denominator. The fraction is not reduced unless fraction.WithAutoReduce(true)
// is passed: 0.5 converts to 5/10.
func FromFloat32[N fraction.Int](v float32, opts ...fraction.Option) (fraction.Fraction[N], error) {
	num, den, err := split[N](float64(v), 32)
	if err != nil {
		return nil, err
	}
	return fraction.Of(num, den, rawOptions(opts)...)
}

// FromFloat64 is FromFloat32 for float64 values.
func FromFloat64[N fraction.Int](v float64, opts ...fraction.Option) (fraction.Fraction[N], error) {
	num, den, err := split[N](v, 64)
	if err != nil {
		return nil, err
	}
	return fraction.Of(num, den, rawOptions(opts)...)
}

// MutableFromFloat32 returns v as a mutable fraction. See [FromFloat32].
func MutableFromFloat32[N fraction.Int](v float32, opts ...fraction.Option) (fraction.Mutable[N], error) {
	num, den, err := split[N](float64(v), 32)
	if err != nil {
		return nil, err
	}
	return fraction.MutableOf(num, den, rawOptions(opts)...)
}

// MutableFromFloat64 returns v as a mutable fraction. See [FromFloat32].
func MutableFromFloat64[N fraction.Int](v float64, opts ...fraction.Option) (fraction.Mutable[N], error) {
	num, den, err := split[N](v, 64)
	if err != nil {
		return nil, err
	}
	return fraction.MutableOf(num, den, rawOptions(opts)...)
}

// Rat returns the numerator and denominator described by p:
// ±(Integer*10^Length + Fractional) over 10^Length.
func (p Parts) Rat() (num, den int64, err error) {
	den, ok := intmath.PowChecked(int64(10), uint(p.Length))
	if !ok || p.Integer > 1<<63-1 {
		return 0, 0, fraction.ErrOverflow
	}
	num, ok1 := intmath.MulChecked(int64(p.Integer), den)
	num, ok2 := intmath.AddChecked(num, int64(p.Fractional))
	if !ok1 || !ok2 || p.Fractional > 1<<63-1 {
		return 0, 0, fraction.ErrOverflow
	}
	if p.Negative {
		num = -num
	}
	return num, den, nil
}

func rawOptions(opts []fraction.Option) []fraction.Option {
	return append([]fraction.Option{fraction.WithAutoReduce(false)}, opts...)
}

func split[N fraction.Int](v float64, bitSize int) (num, den N, err error) {
	p, err := Decompose(v, bitSize)
	if err != nil {
		return 0, 0, err
	}
	n, d, err := p.Rat()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", err, v)
	}
	num, ok1 := intmath.Narrow[N](n)
	den, ok2 := intmath.Narrow[N](d)
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("%w: %d/%d from %v", fraction.ErrOverflow, n, d, v)
	}
	return num, den, nil
}
