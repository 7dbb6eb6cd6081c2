// Package unstable converts binary floating point values to fractions by way
// of their shortest decimal representation.
//
// The API in this package is experimental: the rounding rules and the
// precision limit may change between releases without notice.
package unstable

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/fraction"
)

// MaxFractionDigits is the number of decimal places kept after the point.
// Further digits are rounded half away from zero.
const MaxFractionDigits = 6

// ErrNotFinite is returned when converting NaN or an infinity.
var ErrNotFinite = errors.New("unstable: value is not finite")

// Parts is the decimal decomposition of a float: the value equals
// ±(Integer + Fractional / 10^Length).
type Parts struct {
	Negative   bool
	Integer    uint64
	Fractional uint64
	// Length is the number of decimal digits in the fractional part,
	// leading zeros included. Zero when the value is an integer.
	Length int
}

// Decompose splits v into its integer part and at most MaxFractionDigits
// fractional digits. bitSize is 32 or 64 and selects the precision used to
// find the shortest decimal form of v.
func Decompose(v float64, bitSize int) (Parts, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Parts{}, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	neg, intDigits, fracDigits := expand(v, bitSize, MaxFractionDigits)
	integer, err := strconv.ParseUint(intDigits, 10, 64)
	if err != nil {
		return Parts{}, fmt.Errorf("%w: integer part of %v does not fit 64 bits", fraction.ErrOverflow, v)
	}
	p := Parts{Negative: neg, Integer: integer, Length: len(fracDigits)}
	if p.Length > 0 {
		p.Fractional, err = strconv.ParseUint(fracDigits, 10, 64)
		if err != nil {
			return Parts{}, err // unreachable, at most MaxFractionDigits digits.
		}
	}
	return p, nil
}

// FormatFixed returns v in plain decimal notation with at most digits
// fractional digits and no trailing zeros. A negative digits keeps every
// digit of the shortest representation. NaN and infinities are formatted
// as by strconv.
func FormatFixed(v float64, bitSize, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, bitSize)
	}
	neg, intDigits, fracDigits := expand(v, bitSize, digits)
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(intDigits)
	if fracDigits != "" {
		sb.WriteByte('.')
		sb.WriteString(fracDigits)
	}
	return sb.String()
}

// expand returns the integer and fractional digits of v. The fractional
// digits are rounded to maxFrac places and carry into the integer digits.
// Negative zero, and values that round to zero, are reported as positive.
func expand(v float64, bitSize, maxFrac int) (neg bool, intDigits, fracDigits string) {
	s := strconv.FormatFloat(v, 'e', -1, bitSize)
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, expStr, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		panic(err) // strconv always emits a decimal exponent.
	}
	// Scientific form has exactly one digit before the point.
	digits := strings.Replace(mant, ".", "", 1)
	point := 1 + exp
	switch {
	case point <= 0:
		intDigits = "0"
		fracDigits = strings.Repeat("0", -point) + digits
	case point >= len(digits):
		intDigits = digits + strings.Repeat("0", point-len(digits))
	default:
		intDigits, fracDigits = digits[:point], digits[point:]
	}

	if maxFrac >= 0 && len(fracDigits) > maxFrac {
		roundUp := fracDigits[maxFrac] >= '5'
		fracDigits = fracDigits[:maxFrac]
		if roundUp {
			var carry bool
			fracDigits, carry = increment(fracDigits)
			if carry {
				intDigits, carry = increment(intDigits)
				if carry {
					intDigits = "1" + intDigits
				}
			}
		}
	}
	fracDigits = strings.TrimRight(fracDigits, "0")
	if fracDigits == "" && strings.Trim(intDigits, "0") == "" {
		neg = false
		intDigits = "0"
	}
	return neg, intDigits, fracDigits
}

// increment adds one to the decimal digit string and reports whether the
// carry ran out of digits.
func increment(digits string) (string, bool) {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return string(b), true
}
