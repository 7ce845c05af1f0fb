package section

import (
	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/ftype"
)

// WriteItem writes the Item section (§4.6): Int32 itemsize, text itemname,
// Int32 fieldcount, then per field: Int32 type-tag, Int32 offset, text
// name.
func WriteItem(fc *codec.FormattedCodec, item *desc.ItemDescription) error {
	return WriteSection(fc, IDItem, func(fc *codec.FormattedCodec) error {
		if err := fc.WriteInt32(int32(item.ItemSize)); err != nil { //nolint:gosec
			return err
		}
		if err := fc.WriteText(item.Name); err != nil {
			return err
		}
		if err := fc.WriteInt32(int32(len(item.Fields))); err != nil { //nolint:gosec
			return err
		}

		for _, f := range item.Fields {
			if err := fc.WriteInt32(int32(f.Type)); err != nil { //nolint:gosec
				return err
			}
			if err := fc.WriteInt32(int32(f.Offset)); err != nil { //nolint:gosec
				return err
			}
			if err := fc.WriteText(f.Name); err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadItem parses an Item section payload of exactly h.PayloadSize bytes,
// starting at the caller's current position in fc. Returns
// errs.ErrSectionOverrun if more bytes than declared were consumed.
func ReadItem(fc *codec.FormattedCodec, h Header) (*desc.ItemDescription, error) {
	before, err := fc.Pos()
	if err != nil {
		return nil, err
	}

	itemSize, err := fc.ReadInt32()
	if err != nil {
		return nil, err
	}
	name, err := fc.ReadText()
	if err != nil {
		return nil, err
	}
	fieldCount, err := fc.ReadInt32()
	if err != nil {
		return nil, err
	}

	fields := make([]desc.Field, fieldCount)
	for i := range fields {
		tag, err := fc.ReadInt32()
		if err != nil {
			return nil, err
		}
		t, err := ftype.FromTag(tag)
		if err != nil {
			return nil, err
		}
		offset, err := fc.ReadInt32()
		if err != nil {
			return nil, err
		}
		fieldName, err := fc.ReadText()
		if err != nil {
			return nil, err
		}

		fields[i] = desc.Field{
			Name:   fieldName,
			Index:  i,
			Type:   t,
			Offset: int(offset),
		}
	}

	after, err := fc.Pos()
	if err != nil {
		return nil, err
	}
	if err := checkOverrun(before, after, h.PayloadSize); err != nil {
		return nil, err
	}

	if fieldCount == 0 {
		return nil, errs.ErrNoFields
	}

	return &desc.ItemDescription{
		Name:     name,
		ItemSize: int(itemSize),
		Fields:   fields,
	}, nil
}
