package fraction

import (
	"math"
	"testing"

	"github.com/soypat/fraction/intmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryOperators(t *testing.T) {
	half, third := MustOf[int32](1, 2), MustOf[int32](1, 3)
	testCases := []struct {
		desc     string
		op       func(a, b Fraction[int32]) (Pair[int32], error)
		a, b     Fraction[int32]
		expected Pair[int32]
		err      error
	}{
		{desc: "add", op: TryAdd[int32], a: half, b: third, expected: Pair[int32]{5, 6}},
		{desc: "sub", op: TrySub[int32], a: half, b: third, expected: Pair[int32]{1, 6}},
		{desc: "mul", op: TryMul[int32], a: half, b: third, expected: Pair[int32]{1, 6}},
		{desc: "div", op: TryDiv[int32], a: half, b: third, expected: Pair[int32]{3, 2}},
		{desc: "add same denominator", op: TryAdd[int32], a: half, b: half, expected: Pair[int32]{2, 2}},
		{desc: "add overflow", op: TryAdd[int32], a: FromInt[int32](math.MaxInt32), b: FromInt[int32](1), err: ErrOverflow},
		{desc: "sub overflow", op: TrySub[int32], a: FromInt[int32](math.MinInt32), b: FromInt[int32](1), err: ErrOverflow},
		{desc: "cross multiply overflow", op: TryAdd[int32], a: MustOf[int32](1, 65536), b: MustOf[int32](1, 65537), err: ErrOverflow},
		{desc: "mul overflow", op: TryMul[int32], a: FromInt[int32](65536), b: FromInt[int32](65536), err: ErrOverflow},
		{desc: "negate min overflow", op: TryMul[int32], a: FromInt[int32](math.MinInt32), b: FromInt[int32](-1), err: ErrOverflow},
		{desc: "div by zero", op: TryDiv[int32], a: half, b: FromInt[int32](0), err: ErrDivideByZero},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, err := tC.op(tC.a, tC.b)
			if tC.err != nil {
				require.ErrorIs(t, err, tC.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tC.expected, got)
		})
	}
}

func TestTryPow(t *testing.T) {
	got, err := TryPow(MustOf[int32](2, 3), -2)
	require.NoError(t, err)
	assert.Equal(t, Pair[int32]{9, 4}, got)

	got64, err := TryPow(MustOf[int64](-2, 5), 3)
	require.NoError(t, err)
	assert.Equal(t, Pair[int64]{-8, 125}, got64)

	_, err = TryPow(FromInt[int32](10), 10)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = TryPow(FromInt[int64](0), -3)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func FuzzReduce(f *testing.F) {
	f.Add(int64(2), int64(4))
	f.Add(int64(-3), int64(-9))
	f.Add(int64(0), int64(-5))
	f.Add(int64(123456), int64(1000000))
	f.Fuzz(func(t *testing.T, num, den int64) {
		if den == 0 || num == math.MinInt64 || den == math.MinInt64 {
			t.Skip()
		}
		fr, err := NewFrac(num, den)
		require.NoError(t, err)
		before := fr.Float64()
		fr.Reduce()
		n, d := fr.Numerator(), fr.Denominator()
		require.NotZero(t, d)
		require.False(t, n < 0 && d < 0, "both fields negative after reduce: %s", fr)
		require.EqualValues(t, 1, intmath.GCD(n, d), "not in lowest terms: %s", fr)
		assert.Equal(t, Pair[int64]{n, d}, PairOf[int64](Reduced[int64](fr)), "reduce must be idempotent")
		assert.Equal(t, sign(num, den), fr.Sign())
		assert.InDelta(t, before, fr.Float64(), math.Abs(before)*1e-9+1e-12)
	})
}
