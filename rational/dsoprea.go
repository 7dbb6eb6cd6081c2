package rational

import (
	"encoding/binary"
	"fmt"

	exifcommon "github.com/dsoprea/go-exif/v3/common"
	"github.com/soypat/fraction"
)

// FromExifRational converts a go-exif RATIONAL value. The fraction keeps the
// stored fields unless auto-reduction is requested.
func FromExifRational(r exifcommon.Rational, opts ...fraction.Option) (fraction.Fraction[int64], error) {
	return fraction.Of(int64(r.Numerator), int64(r.Denominator), rawOptions(opts)...)
}

// FromExifSignedRational converts a go-exif SRATIONAL value.
func FromExifSignedRational(r exifcommon.SignedRational, opts ...fraction.Option) (fraction.Fraction[int32], error) {
	return fraction.Of(r.Numerator, r.Denominator, rawOptions(opts)...)
}

// ToExifRational converts f to a go-exif RATIONAL. It fails with
// ErrOutOfRange if a field is negative or does not fit 32 bits.
func ToExifRational(f fraction.Fraction[int64]) (exifcommon.Rational, error) {
	num, den, err := unsignedFields(f)
	if err != nil {
		return exifcommon.Rational{}, err
	}
	return exifcommon.Rational{Numerator: num, Denominator: den}, nil
}

// ToExifSignedRational converts f to a go-exif SRATIONAL.
func ToExifSignedRational(f fraction.Fraction[int32]) exifcommon.SignedRational {
	return exifcommon.SignedRational{Numerator: f.Numerator(), Denominator: f.Denominator()}
}

// EncodeSigned encodes fs as consecutive SRATIONAL values using the go-exif
// value encoder.
func EncodeSigned(order binary.ByteOrder, fs ...fraction.Fraction[int32]) ([]byte, error) {
	values := make([]exifcommon.SignedRational, len(fs))
	for i, f := range fs {
		values[i] = ToExifSignedRational(f)
	}
	ed, err := exifcommon.NewValueEncoder(order).Encode(values)
	if err != nil {
		return nil, fmt.Errorf("encoding %d signed rationals: %w", len(fs), err)
	}
	return ed.Encoded, nil
}

// EncodeUnsigned encodes fs as consecutive RATIONAL values using the go-exif
// value encoder.
func EncodeUnsigned(order binary.ByteOrder, fs ...fraction.Fraction[int64]) ([]byte, error) {
	values := make([]exifcommon.Rational, len(fs))
	for i, f := range fs {
		r, err := ToExifRational(f)
		if err != nil {
			return nil, fmt.Errorf("rational %d: %w", i, err)
		}
		values[i] = r
	}
	ed, err := exifcommon.NewValueEncoder(order).Encode(values)
	if err != nil {
		return nil, fmt.Errorf("encoding %d rationals: %w", len(fs), err)
	}
	return ed.Encoded, nil
}

// DecodeSignedSlice parses count SRATIONAL values with the go-exif parser.
func DecodeSignedSlice(order binary.ByteOrder, data []byte, count int, opts ...fraction.Option) ([]fraction.Fraction[int32], error) {
	if len(data) < count*Size {
		return nil, ErrShortBuffer
	}
	values, err := new(exifcommon.Parser).ParseSignedRationals(data, uint32(count), order)
	if err != nil {
		return nil, err
	}
	fs := make([]fraction.Fraction[int32], len(values))
	for i, v := range values {
		fs[i], err = FromExifSignedRational(v, opts...)
		if err != nil {
			return nil, fmt.Errorf("signed rational %d: %w", i, err)
		}
	}
	return fs, nil
}

// DecodeUnsignedSlice parses count RATIONAL values with the go-exif parser.
func DecodeUnsignedSlice(order binary.ByteOrder, data []byte, count int, opts ...fraction.Option) ([]fraction.Fraction[int64], error) {
	if len(data) < count*Size {
		return nil, ErrShortBuffer
	}
	values, err := new(exifcommon.Parser).ParseRationals(data, uint32(count), order)
	if err != nil {
		return nil, err
	}
	fs := make([]fraction.Fraction[int64], len(values))
	for i, v := range values {
		fs[i], err = FromExifRational(v, opts...)
		if err != nil {
			return nil, fmt.Errorf("rational %d: %w", i, err)
		}
	}
	return fs, nil
}
