// Package header implements the HeaderManager (§4.7): it composes a
// TeaFileDescription into the on-disk header envelope on create, and
// parses that envelope back into a TeaFileDescription on open.
package header

import (
	"fmt"

	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/section"
)

// BOM is the byte-order-mark literal that identifies a TeaFile and its
// little-endian encoding (§4.7).
const BOM = int64(0x0D0E0A0402080500)

// fixedPrefixSize is the byte size of BOM + itemAreaStart + itemAreaEnd +
// sectionCount, all Int64.
const fixedPrefixSize = 32

// Header is the parsed result of reading a TeaFile's on-disk header.
type Header struct {
	ItemAreaStart int64
	ItemAreaEnd   int64
	Desc          *desc.TeaFileDescription
}

// Write composes d into the header envelope and writes it to fc starting
// at the stream's current position (expected to be 0). itemAreaEnd is 0
// unless the caller preallocated the item area.
//
// Because sectionCount and itemAreaStart are not known until every
// section's payload has been produced, the section block is first
// assembled in an in-memory buffer (§4.7's "Write sequencing"), then the
// fixed prefix and that buffer are written to fc in one pass.
func Write(fc *codec.FormattedCodec, d *desc.TeaFileDescription, itemAreaEnd int64) (Header, error) {
	if !d.Valid() {
		return Header{}, errs.ErrNoFields
	}

	scratchBuf := codec.NewBuffer()
	scratch := codec.NewFormattedCodec(codec.NewByteCodec(scratchBuf))

	sectionCount := int64(0)

	// Section order follows the reference layout: item, content,
	// name/values, time. A reader never relies on this order since every
	// section is self-identifying, but matching it keeps headers laid out
	// the way the reference implementation produces them.
	if err := section.WriteItem(scratch, d.Item); err != nil {
		return Header{}, err
	}
	sectionCount++

	if d.Content != "" {
		if err := section.WriteContent(scratch, string(d.Content)); err != nil {
			return Header{}, err
		}
		sectionCount++
	}

	if d.NameValues != nil && d.NameValues.Len() > 0 {
		if err := section.WriteNameValues(scratch, d.NameValues); err != nil {
			return Header{}, err
		}
		sectionCount++
	}

	// The Time section is always emitted, even with zero time fields
	// (Open Question (ii)): with no time fields it carries the scale and a
	// count of 0, keeping such headers byte-identical to the reference.
	scale := desc.JavaScale
	if d.TimeScale != nil {
		scale = *d.TimeScale
	}

	var timeOffsets []int
	if f, ok := d.Item.EventTimeField(); ok {
		timeOffsets = append(timeOffsets, f.Offset)
	}
	for _, f := range d.Item.TimeFields() {
		if !f.IsEventTime {
			timeOffsets = append(timeOffsets, f.Offset)
		}
	}

	if err := section.WriteTime(scratch, scale, timeOffsets); err != nil {
		return Header{}, err
	}
	sectionCount++

	sectionsLen := int64(scratchBuf.Len())
	headerLen := fixedPrefixSize + sectionsLen
	padding := (8 - headerLen%8) % 8
	itemAreaStart := headerLen + padding

	if err := fc.WriteInt64(BOM); err != nil {
		return Header{}, err
	}
	if err := fc.WriteInt64(itemAreaStart); err != nil {
		return Header{}, err
	}
	if err := fc.WriteInt64(itemAreaEnd); err != nil {
		return Header{}, err
	}
	if err := fc.WriteInt64(sectionCount); err != nil {
		return Header{}, err
	}
	if err := fc.WriteBytes(scratchBuf.Bytes()); err != nil {
		return Header{}, err
	}
	if padding > 0 {
		if err := fc.WriteBytes(make([]byte, padding)); err != nil {
			return Header{}, err
		}
	}

	return Header{ItemAreaStart: itemAreaStart, ItemAreaEnd: itemAreaEnd, Desc: d}, nil
}

// itemAreaEndOffset is the fixed byte offset of the itemAreaEnd field
// within the header (past BOM and itemAreaStart).
const itemAreaEndOffset = 16

// PatchItemAreaEnd overwrites the itemAreaEnd field of an already-written
// header, for callers that only learn the final item-area size (e.g. after
// preallocating disk space) once Write has already returned. fc is left
// positioned just past the itemAreaEnd field; callers reposition it.
func PatchItemAreaEnd(fc *codec.FormattedCodec, itemAreaEnd int64) error {
	if err := fc.SeekTo(itemAreaEndOffset); err != nil {
		return err
	}
	if err := fc.WriteInt64(itemAreaEnd); err != nil {
		return err
	}

	return nil
}

// Read parses the header at fc's current position (expected to be 0) and
// positions fc at itemAreaStart on return.
func Read(fc *codec.FormattedCodec) (Header, error) {
	bom, err := fc.ReadInt64()
	if err != nil {
		return Header{}, err
	}
	if bom != BOM {
		return Header{}, errs.ErrBOMMismatch
	}

	itemAreaStart, err := fc.ReadInt64()
	if err != nil {
		return Header{}, err
	}
	itemAreaEnd, err := fc.ReadInt64()
	if err != nil {
		return Header{}, err
	}
	sectionCount, err := fc.ReadInt64()
	if err != nil {
		return Header{}, err
	}

	d := &desc.TeaFileDescription{}

	for i := int64(0); i < sectionCount; i++ {
		h, err := section.ReadHeader(fc)
		if err != nil {
			return Header{}, err
		}

		switch h.ID {
		case section.IDItem:
			item, err := section.ReadItem(fc, h)
			if err != nil {
				return Header{}, fmt.Errorf("header: item section: %w", err)
			}
			d.Item = item
		case section.IDTime:
			ts, err := section.ReadTime(fc, h)
			if err != nil {
				return Header{}, fmt.Errorf("header: time section: %w", err)
			}
			scale := ts.Scale
			d.TimeScale = &scale
			applyTimeOffsets(d.Item, ts.TimeFieldOffsets)
		case section.IDContent:
			content, err := section.ReadContent(fc, h)
			if err != nil {
				return Header{}, fmt.Errorf("header: content section: %w", err)
			}
			d.Content = desc.ContentDescription(content)
		case section.IDNameValue:
			nv, err := section.ReadNameValues(fc, h)
			if err != nil {
				return Header{}, fmt.Errorf("header: name/value section: %w", err)
			}
			d.NameValues = nv
		default:
			if err := section.Skip(fc, h); err != nil {
				return Header{}, err
			}
		}
	}

	if err := fc.SeekTo(itemAreaStart); err != nil {
		return Header{}, err
	}

	return Header{ItemAreaStart: itemAreaStart, ItemAreaEnd: itemAreaEnd, Desc: d}, nil
}

// applyTimeOffsets marks the fields at the given byte offsets as time
// fields, with the first offset in the list as the event-time field. A
// no-op if item hasn't been parsed yet (the Time section always follows
// the Item section in files written by this package, but a reader must
// tolerate other orderings).
func applyTimeOffsets(item *desc.ItemDescription, offsets []int) {
	if item == nil || len(offsets) == 0 {
		return
	}

	for i, off := range offsets {
		for fi := range item.Fields {
			if item.Fields[fi].Offset == off {
				item.Fields[fi].IsTime = true
				if i == 0 {
					item.Fields[fi].IsEventTime = true
				}
			}
		}
	}
}
