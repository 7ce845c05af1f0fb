package layout

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/ftype"
)

// Pack encodes values, one per field of item in declaration order, into a
// buffer of exactly item.ItemSize bytes. Trailing alignment padding (if
// any) is zero. Returns errs.ErrArityMismatch if len(values) != number of
// fields.
func Pack(item *desc.ItemDescription, values []any) ([]byte, error) {
	if len(values) != len(item.Fields) {
		return nil, fmt.Errorf("%w: %d fields, %d values", errs.ErrArityMismatch, len(item.Fields), len(values))
	}

	buf := make([]byte, item.ItemSize)
	for i, f := range item.Fields {
		if err := putField(buf, f, values[i]); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// Unpack decodes a buffer of exactly item.ItemSize bytes into one value per
// field, in declaration order. Trailing padding bytes are ignored.
func Unpack(item *desc.ItemDescription, buf []byte) ([]any, error) {
	if len(buf) != item.ItemSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrItemSizeMismatch, item.ItemSize, len(buf))
	}

	values := make([]any, len(item.Fields))
	for i, f := range item.Fields {
		values[i] = getField(buf, f)
	}

	return values, nil
}

func putField(buf []byte, f desc.Field, v any) error {
	b := buf[f.Offset : f.Offset+f.Type.Size()]

	switch f.Type {
	case ftype.Int8:
		b[0] = byte(asInt64(v))
	case ftype.UInt8:
		b[0] = byte(asUint64(v))
	case ftype.Int16:
		binary.LittleEndian.PutUint16(b, uint16(asInt64(v))) //nolint:gosec
	case ftype.UInt16:
		binary.LittleEndian.PutUint16(b, uint16(asUint64(v))) //nolint:gosec
	case ftype.Int32:
		binary.LittleEndian.PutUint32(b, uint32(asInt64(v))) //nolint:gosec
	case ftype.UInt32:
		binary.LittleEndian.PutUint32(b, uint32(asUint64(v))) //nolint:gosec
	case ftype.Int64:
		binary.LittleEndian.PutUint64(b, uint64(asInt64(v))) //nolint:gosec
	case ftype.UInt64:
		binary.LittleEndian.PutUint64(b, asUint64(v))
	case ftype.Float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(asFloat64(v))))
	case ftype.Float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(asFloat64(v)))
	default:
		return errs.ErrInvalidFieldType
	}

	return nil
}

func getField(buf []byte, f desc.Field) any {
	b := buf[f.Offset : f.Offset+f.Type.Size()]

	switch f.Type {
	case ftype.Int8:
		return int8(b[0]) //nolint:gosec
	case ftype.UInt8:
		return b[0]
	case ftype.Int16:
		return int16(binary.LittleEndian.Uint16(b)) //nolint:gosec
	case ftype.UInt16:
		return binary.LittleEndian.Uint16(b)
	case ftype.Int32:
		return int32(binary.LittleEndian.Uint32(b)) //nolint:gosec
	case ftype.UInt32:
		return binary.LittleEndian.Uint32(b)
	case ftype.Int64:
		return int64(binary.LittleEndian.Uint64(b)) //nolint:gosec
	case ftype.UInt64:
		return binary.LittleEndian.Uint64(b)
	case ftype.Float32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case ftype.Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default:
		return nil
	}
}

// asInt64 widens any signed/unsigned integer value to int64 for encoding.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n) //nolint:gosec
	default:
		return 0
	}
}

// asUint64 widens any signed/unsigned integer value to uint64 for encoding.
func asUint64(v any) uint64 {
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	default:
		return 0
	}
}

// asFloat64 widens a float32/float64 value to float64 for encoding.
func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
