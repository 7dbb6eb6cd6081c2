package rational

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/soypat/fraction"
	"github.com/soypat/fraction/unstable"
)

// Type is a TIFF field type, numbered as in TIFF 6.0 and EXIF 2.3.
type Type uint16

const (
	_ Type = iota
	// TypeUint8 can be found as Byte type in the EXIF standard.
	TypeUint8
	// TypeString a.k.a. ASCII.
	TypeString
	TypeUint16
	TypeUint32
	// TypeURational64 is RATIONAL: two uint32.
	TypeURational64
	TypeInt8
	TypeUndefined
	TypeInt16
	TypeInt32
	// TypeRational64 is SRATIONAL: two int32.
	TypeRational64
	TypeFloat32
	// TypeFloat64 can be found as the double type in the EXIF standard.
	TypeFloat64
)

type typeInfo struct {
	name   string
	size   uint8
	signed bool
}

var typeTable = [...]typeInfo{
	TypeUint8:       {name: "uint8", size: 1},
	TypeString:      {name: "string", size: 1},
	TypeUint16:      {name: "uint16", size: 2},
	TypeUint32:      {name: "uint32", size: 4},
	TypeURational64: {name: "urational", size: 8},
	TypeInt8:        {name: "int8", size: 1, signed: true},
	TypeUndefined:   {name: "undefined", size: 1},
	TypeInt16:       {name: "int16", size: 2, signed: true},
	TypeInt32:       {name: "int32", size: 4, signed: true},
	TypeRational64:  {name: "rational", size: 8, signed: true},
	TypeFloat32:     {name: "float32", size: 4, signed: true},
	TypeFloat64:     {name: "float64", size: 8, signed: true},
}

func (tp Type) info() typeInfo {
	if int(tp) >= len(typeTable) {
		return typeInfo{}
	}
	return typeTable[tp]
}

// Size returns the size in bytes of one value of the type: 1, 2, 4 or 8,
// or 0 for unknown types.
func (tp Type) Size() uint8 { return tp.info().size }

// String returns a Go-like name of the type, "unknown" for unknown types.
func (tp Type) String() string {
	if name := tp.info().name; name != "" {
		return name
	}
	return "unknown"
}

// IsInt reports whether tp is a signed or unsigned integer type.
func (tp Type) IsInt() bool {
	return tp == TypeInt8 || tp == TypeInt16 || tp == TypeInt32 ||
		tp == TypeUint8 || tp == TypeUint16 || tp == TypeUint32
}

// IsFloat reports whether tp is float32 (single) or float64 (double).
func (tp Type) IsFloat() bool {
	return tp == TypeFloat32 || tp == TypeFloat64
}

// IsRational reports whether tp is RATIONAL or SRATIONAL.
func (tp Type) IsRational() bool {
	return tp == TypeRational64 || tp == TypeURational64
}

// DecodeTypeData decodes a single numeric value of type tp as a fraction.
// Rationals keep their stored fields, integers decode as n/1 and floats go
// through [unstable.FromFloat64], keeping the decimal form (0.125 is
// 125/1000). Strings and undefined data have no numeric value and return
// ErrType.
func DecodeTypeData(tp Type, order binary.ByteOrder, data []byte) (fraction.Fraction[int64], error) {
	sz := tp.Size()
	if sz == 0 {
		return nil, fmt.Errorf("%w: invalid type %d", ErrType, uint16(tp))
	}
	if len(data) != int(sz) {
		return nil, fmt.Errorf("%w: %d bytes for %s", ErrShortBuffer, len(data), tp)
	}
	switch {
	case tp.IsInt():
		return fraction.FromInt(decodeInt(tp, order, data)), nil
	case tp.IsFloat():
		if tp == TypeFloat32 {
			return unstable.FromFloat32[int64](math.Float32frombits(order.Uint32(data)))
		}
		return unstable.FromFloat64[int64](math.Float64frombits(order.Uint64(data)))
	case tp.IsRational():
		if tp == TypeURational64 {
			return DecodeUnsigned(order, data)
		}
		f, err := DecodeSigned(order, data)
		if err != nil {
			return nil, err
		}
		return fraction.Of(int64(f.Numerator()), int64(f.Denominator()), fraction.WithAutoReduce(false))
	}
	return nil, fmt.Errorf("%w: %s has no numeric value", ErrType, tp)
}

// decodeInt sign-extends or zero-extends an integer of tp.Size() bytes.
func decodeInt(tp Type, order binary.ByteOrder, data []byte) int64 {
	var u uint64
	switch tp.Size() {
	case 1:
		u = uint64(data[0])
	case 2:
		u = uint64(order.Uint16(data))
	case 4:
		u = uint64(order.Uint32(data))
	}
	if !tp.info().signed {
		return int64(u)
	}
	shift := 64 - 8*uint(tp.Size())
	return int64(u<<shift) >> shift
}
