package section

import (
	"fmt"

	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
)

// WriteNameValues writes the NameValue section (§4.6): Int32 count, then
// that many tagged key/value records.
func WriteNameValues(fc *codec.FormattedCodec, nv *desc.NameValues) error {
	return WriteSection(fc, IDNameValue, func(fc *codec.FormattedCodec) error {
		if err := fc.WriteInt32(int32(nv.Len())); err != nil { //nolint:gosec
			return err
		}

		for _, key := range nv.Keys() {
			v, _ := nv.Get(key)
			rec, err := toRecord(key, v)
			if err != nil {
				return err
			}
			if err := fc.WriteNameValue(rec); err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadNameValues parses a NameValue section payload of exactly
// h.PayloadSize bytes.
func ReadNameValues(fc *codec.FormattedCodec, h Header) (*desc.NameValues, error) {
	before, err := fc.Pos()
	if err != nil {
		return nil, err
	}

	count, err := fc.ReadInt32()
	if err != nil {
		return nil, err
	}

	nv := desc.NewNameValues()
	for i := int32(0); i < count; i++ {
		rec, err := fc.ReadNameValue()
		if err != nil {
			return nil, err
		}
		nv.Set(rec.Key, fromRecord(rec))
	}

	after, err := fc.Pos()
	if err != nil {
		return nil, err
	}
	if err := checkOverrun(before, after, h.PayloadSize); err != nil {
		return nil, err
	}

	return nv, nil
}

// toRecord converts an in-memory NameValues entry to its wire record,
// inferring the Kind tag from the value's Go type.
func toRecord(key string, v any) (codec.NameValue, error) {
	switch val := v.(type) {
	case int32:
		return codec.NameValue{Key: key, Kind: codec.KindInt32, Int32Val: val}, nil
	case float64:
		return codec.NameValue{Key: key, Kind: codec.KindFloat64, Float64Val: val}, nil
	case string:
		return codec.NameValue{Key: key, Kind: codec.KindText, TextVal: val}, nil
	case [codec.UUIDSize]byte:
		return codec.NameValue{Key: key, Kind: codec.KindUUID, UUIDVal: val}, nil
	default:
		return codec.NameValue{}, fmt.Errorf("%w: unsupported value type for key %q", errs.ErrUnknownValueKind, key)
	}
}

func fromRecord(rec codec.NameValue) any {
	switch rec.Kind {
	case codec.KindInt32:
		return rec.Int32Val
	case codec.KindFloat64:
		return rec.Float64Val
	case codec.KindText:
		return rec.TextVal
	case codec.KindUUID:
		return rec.UUIDVal
	default:
		return nil
	}
}
