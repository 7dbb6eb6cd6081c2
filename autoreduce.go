package fraction

// AutoReduce keeps a mutable fraction in lowest terms. The wrapped fraction
// is reduced once when the AutoReduce is created and again after every
// mutation, so readers never observe an unreduced value.
type AutoReduce[N Int] struct {
	m Mutable[N]
}

var _ Mutable[int32] = (*AutoReduce[int32])(nil)

// NewAutoReduce wraps m and reduces it. The AutoReduce takes ownership of m;
// callers must not mutate m directly afterwards.
func NewAutoReduce[N Int](m Mutable[N]) *AutoReduce[N] {
	m.Reduce()
	return &AutoReduce[N]{m: m}
}

func (a *AutoReduce[N]) Numerator() N   { return a.m.Numerator() }
func (a *AutoReduce[N]) Denominator() N { return a.m.Denominator() }
func (a *AutoReduce[N]) Sign() int      { return a.m.Sign() }

func (a *AutoReduce[N]) Set(num, den N) error {
	if err := a.m.Set(num, den); err != nil {
		return err
	}
	a.m.Reduce()
	return nil
}

func (a *AutoReduce[N]) AddAssign(other Fraction[N]) {
	a.m.AddAssign(other)
	a.m.Reduce()
}

func (a *AutoReduce[N]) SubAssign(other Fraction[N]) {
	a.m.SubAssign(other)
	a.m.Reduce()
}

func (a *AutoReduce[N]) MulAssign(other Fraction[N]) {
	a.m.MulAssign(other)
	a.m.Reduce()
}

func (a *AutoReduce[N]) DivAssign(other Fraction[N]) {
	a.m.DivAssign(other)
	a.m.Reduce()
}

func (a *AutoReduce[N]) Reduce() { a.m.Reduce() }

func (a *AutoReduce[N]) Add(other Fraction[N]) Fraction[N] {
	c := a.Clone()
	c.AddAssign(other)
	return c
}

func (a *AutoReduce[N]) Sub(other Fraction[N]) Fraction[N] {
	c := a.Clone()
	c.SubAssign(other)
	return c
}

func (a *AutoReduce[N]) Mul(other Fraction[N]) Fraction[N] {
	c := a.Clone()
	c.MulAssign(other)
	return c
}

func (a *AutoReduce[N]) Div(other Fraction[N]) Fraction[N] {
	c := a.Clone()
	c.DivAssign(other)
	return c
}

func (a *AutoReduce[N]) Compare(other Fraction[N]) int {
	if Fraction[N](a) == other {
		return 0
	}
	return a.m.Compare(other)
}

func (a *AutoReduce[N]) Equal(other Fraction[N]) bool { return a.m.Equal(other) }
func (a *AutoReduce[N]) Hash() uint64                 { return a.m.Hash() }
func (a *AutoReduce[N]) Float32() float32             { return a.m.Float32() }
func (a *AutoReduce[N]) Float64() float64             { return a.m.Float64() }
func (a *AutoReduce[N]) String() string               { return a.m.String() }

func (a *AutoReduce[N]) Copy() Fraction[N] { return a.Clone() }

// Clone returns a new AutoReduce over a clone of the wrapped fraction.
func (a *AutoReduce[N]) Clone() Mutable[N] {
	return NewAutoReduce(a.m.Clone())
}
