package fraction_test

import (
	"math/big"
	"testing"

	"github.com/soypat/fraction"
)

// Partial sums of 1/1 + 1/2 + ... + 1/n with n small enough to stay in int64.

const harmonicTerms = 20

func BenchmarkThisPackage_Harmonic(b *testing.B) {
	terms := make([]fraction.Fraction[int64], harmonicTerms)
	for i := range terms {
		terms[i] = fraction.MustOf[int64](1, int64(i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := fraction.MutableFromInt[int64](0)
		for _, t := range terms {
			sum.AddAssign(t)
		}
	}
}

func BenchmarkThisPackage_HarmonicUnreduced(b *testing.B) {
	terms := make([]fraction.Fraction[int64], 12)
	for i := range terms {
		terms[i] = fraction.MustOf[int64](1, int64(i+1))
	}
	noReduce := fraction.WithAutoReduce(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := fraction.MutableFromInt[int64](0, noReduce)
		for _, t := range terms {
			sum.AddAssign(t)
		}
	}
}

func BenchmarkBigRat_Harmonic(b *testing.B) {
	terms := make([]*big.Rat, harmonicTerms)
	for i := range terms {
		terms[i] = big.NewRat(1, int64(i+1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := new(big.Rat)
		for _, t := range terms {
			sum.Add(sum, t)
		}
	}
}

func BenchmarkThisPackage_Compare(b *testing.B) {
	x, y := fraction.MustOf[int64](355, 113), fraction.MustOf[int64](22, 7)
	for i := 0; i < b.N; i++ {
		x.Compare(y)
	}
}

func BenchmarkBigRat_Compare(b *testing.B) {
	x, y := big.NewRat(355, 113), big.NewRat(22, 7)
	for i := 0; i < b.N; i++ {
		x.Cmp(y)
	}
}
