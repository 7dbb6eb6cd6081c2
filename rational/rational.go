// Package rational encodes and decodes fractions in the 8 byte RATIONAL and
// SRATIONAL formats of TIFF and EXIF: a 32 bit numerator followed by a 32 bit
// denominator in the byte order of the file.
package rational

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fraction"
)

// Size is the length in bytes of an encoded rational.
const Size = 8

var (
	ErrShortBuffer = errors.New("rational: buffer too short")
	ErrOutOfRange  = errors.New("rational: value out of range")
	ErrType        = errors.New("rational: unsupported type")
)

// rawOptions makes decoded fractions keep the stored representation unless
// the caller asks otherwise.
func rawOptions(opts []fraction.Option) []fraction.Option {
	return append([]fraction.Option{fraction.WithAutoReduce(false)}, opts...)
}

// DecodeSigned decodes an SRATIONAL. The fraction is not reduced unless
// fraction.WithAutoReduce(true) is passed.
func DecodeSigned(order binary.ByteOrder, b []byte, opts ...fraction.Option) (fraction.Fraction[int32], error) {
	if len(b) < Size {
		return nil, ErrShortBuffer
	}
	numerator := int32(order.Uint32(b))
	denominator := int32(order.Uint32(b[4:]))
	return fraction.Of(numerator, denominator, rawOptions(opts)...)
}

// DecodeUnsigned decodes a RATIONAL. Both fields are unsigned 32 bit
// integers so they are widened to int64.
func DecodeUnsigned(order binary.ByteOrder, b []byte, opts ...fraction.Option) (fraction.Fraction[int64], error) {
	if len(b) < Size {
		return nil, ErrShortBuffer
	}
	numerator := int64(order.Uint32(b))
	denominator := int64(order.Uint32(b[4:]))
	return fraction.Of(numerator, denominator, rawOptions(opts)...)
}

// PutSigned encodes f into b as an SRATIONAL.
func PutSigned(order binary.ByteOrder, b []byte, f fraction.Fraction[int32]) error {
	if len(b) < Size {
		return ErrShortBuffer
	}
	order.PutUint32(b, uint32(f.Numerator()))
	order.PutUint32(b[4:], uint32(f.Denominator()))
	return nil
}

// PutUnsigned encodes f into b as a RATIONAL. Both fields must be in
// [0, MaxUint32].
func PutUnsigned(order binary.ByteOrder, b []byte, f fraction.Fraction[int64]) error {
	if len(b) < Size {
		return ErrShortBuffer
	}
	num, den, err := unsignedFields(f)
	if err != nil {
		return err
	}
	order.PutUint32(b, num)
	order.PutUint32(b[4:], den)
	return nil
}

// AppendSigned appends the SRATIONAL encoding of f to dst.
func AppendSigned(order binary.AppendByteOrder, dst []byte, f fraction.Fraction[int32]) []byte {
	dst = order.AppendUint32(dst, uint32(f.Numerator()))
	return order.AppendUint32(dst, uint32(f.Denominator()))
}

// AppendUnsigned appends the RATIONAL encoding of f to dst.
func AppendUnsigned(order binary.AppendByteOrder, dst []byte, f fraction.Fraction[int64]) ([]byte, error) {
	num, den, err := unsignedFields(f)
	if err != nil {
		return dst, err
	}
	dst = order.AppendUint32(dst, num)
	return order.AppendUint32(dst, den), nil
}

func unsignedFields(f fraction.Fraction[int64]) (num, den uint32, err error) {
	n, d := f.Numerator(), f.Denominator()
	if n < 0 || d < 0 || n > math.MaxUint32 || d > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: %s is not an unsigned 32 bit rational", ErrOutOfRange, f)
	}
	return uint32(n), uint32(d), nil
}
