package fraction

// ReadOnly is an immutable view over a private copy of a mutable fraction.
// It never shares storage with the fraction it was created from, so later
// mutations of the source are not visible through it.
type ReadOnly[N Int] struct {
	m Mutable[N]
}

var _ Fraction[int64] = (*ReadOnly[int64])(nil)

// Snapshot returns a read-only view over a copy of m. If m auto-reduces,
// so do the results of arithmetic on the view.
func Snapshot[N Int](m Mutable[N]) *ReadOnly[N] {
	return &ReadOnly[N]{m: m.Clone()}
}

func (r *ReadOnly[N]) Numerator() N   { return r.m.Numerator() }
func (r *ReadOnly[N]) Denominator() N { return r.m.Denominator() }
func (r *ReadOnly[N]) Sign() int      { return r.m.Sign() }

func (r *ReadOnly[N]) Add(other Fraction[N]) Fraction[N] {
	c := r.m.Clone()
	c.AddAssign(other)
	return &ReadOnly[N]{m: c}
}

func (r *ReadOnly[N]) Sub(other Fraction[N]) Fraction[N] {
	c := r.m.Clone()
	c.SubAssign(other)
	return &ReadOnly[N]{m: c}
}

func (r *ReadOnly[N]) Mul(other Fraction[N]) Fraction[N] {
	c := r.m.Clone()
	c.MulAssign(other)
	return &ReadOnly[N]{m: c}
}

func (r *ReadOnly[N]) Div(other Fraction[N]) Fraction[N] {
	c := r.m.Clone()
	c.DivAssign(other)
	return &ReadOnly[N]{m: c}
}

func (r *ReadOnly[N]) Compare(other Fraction[N]) int {
	if Fraction[N](r) == other {
		return 0
	}
	return r.m.Compare(other)
}

func (r *ReadOnly[N]) Equal(other Fraction[N]) bool { return r.m.Equal(other) }
func (r *ReadOnly[N]) Hash() uint64                 { return r.m.Hash() }
func (r *ReadOnly[N]) Float32() float32             { return r.m.Float32() }
func (r *ReadOnly[N]) Float64() float64             { return r.m.Float64() }
func (r *ReadOnly[N]) String() string               { return r.m.String() }

// Copy returns another read-only view over a fresh copy.
func (r *ReadOnly[N]) Copy() Fraction[N] {
	return &ReadOnly[N]{m: r.m.Clone()}
}

// Mutable returns a mutable copy of the viewed fraction, keeping its
// auto-reduce behaviour.
func (r *ReadOnly[N]) Mutable() Mutable[N] {
	return r.m.Clone()
}
