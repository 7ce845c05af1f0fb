// Package tea implements the TeaFile facade (§4.8): Create/OpenRead/
// OpenWrite build or parse the on-disk header via the header package, then
// hand back a File that reads and writes whole items through the layout
// package's pack/unpack routines.
package tea

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/desc"
	"github.com/teafile-go/teafile/errs"
	"github.com/teafile-go/teafile/header"
	"github.com/teafile-go/teafile/layout"
)

// File is an open TeaFile: its header metadata plus a cursor over the item
// area. A File is not safe for concurrent use from multiple goroutines.
type File struct {
	f             *os.File
	fc            *codec.FormattedCodec
	desc          *desc.TeaFileDescription
	path          string
	itemAreaStart int64
	itemAreaEnd   int64
	readOnly      bool
	closed        bool
	decorateTime  bool
}

// DecorateTime toggles whether Read wraps time-flagged field values as
// time.Time and whether Write accepts time.Time in their place (§4.9). It
// takes effect on the next Read/Write call.
func (tf *File) DecorateTime(decorate bool) {
	tf.decorateTime = decorate
}

// Create makes a new TeaFile at path whose items have one field per entry
// in fieldNames, and leaves the returned File positioned at the start of
// the (empty) item area, ready for Write. By default Create fails if path
// already exists; pass WithOverwrite(true) to truncate it instead.
func Create(path string, fieldNames []string, opts ...CreateOption) (*File, error) {
	cfg := newCreateConfig(opts)

	item, err := layout.Build(fieldNames, cfg.format, cfg.itemName)
	if err != nil {
		return nil, err
	}
	layout.MarkEventTime(item)

	d := &desc.TeaFileDescription{
		Item:       item,
		Content:    desc.ContentDescription(cfg.content),
		NameValues: cfg.nameValues,
		TimeScale:  cfg.timeScale,
	}

	flags := os.O_RDWR | os.O_CREATE | os.O_EXCL
	if cfg.overwrite {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644) //nolint:gosec
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileExists, path)
		}

		return nil, err
	}

	fc := codec.NewFormattedCodec(codec.NewByteCodec(f))

	h, err := header.Write(fc, d, 0)
	if err != nil {
		f.Close()

		return nil, err
	}

	if cfg.preallocate > 0 {
		itemAreaEnd := h.ItemAreaStart + cfg.preallocate*int64(item.ItemSize)
		if err := header.PatchItemAreaEnd(fc, itemAreaEnd); err != nil {
			f.Close()

			return nil, err
		}
		if err := preallocate(f, h.ItemAreaStart, itemAreaEnd); err != nil {
			f.Close()

			return nil, err
		}
		h.ItemAreaEnd = itemAreaEnd
	}

	if err := fc.SeekTo(h.ItemAreaStart); err != nil {
		f.Close()

		return nil, err
	}

	return &File{
		f: f, fc: fc, desc: h.Desc, path: path,
		itemAreaStart: h.ItemAreaStart, itemAreaEnd: h.ItemAreaEnd,
		decorateTime: cfg.decorateTime,
	}, nil
}

// preallocate zero-fills the item area from start to end so later
// in-place seeks land on real (if empty) bytes rather than past EOF.
func preallocate(f *os.File, start, end int64) error {
	if err := f.Truncate(end); err != nil {
		return err
	}

	_, err := f.Seek(start, io.SeekStart)

	return err
}

// OpenRead opens an existing TeaFile read-only, positioned at the start of
// the item area.
func OpenRead(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fc := codec.NewFormattedCodec(codec.NewByteCodec(f))

	h, err := header.Read(fc)
	if err != nil {
		f.Close()

		return nil, err
	}

	return &File{
		f: f, fc: fc, desc: h.Desc, path: path,
		itemAreaStart: h.ItemAreaStart, itemAreaEnd: h.ItemAreaEnd,
		readOnly: true, decorateTime: true,
	}, nil
}

// OpenWrite opens an existing TeaFile for reading and appending, positioned
// at the end of the current item area so the first Write call appends a
// new item. Use SeekItem to reposition for an in-place overwrite.
func OpenWrite(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0) //nolint:gosec
	if err != nil {
		return nil, err
	}

	fc := codec.NewFormattedCodec(codec.NewByteCodec(f))

	h, err := header.Read(fc)
	if err != nil {
		f.Close()

		return nil, err
	}

	tf := &File{
		f: f, fc: fc, desc: h.Desc, path: path,
		itemAreaStart: h.ItemAreaStart, itemAreaEnd: h.ItemAreaEnd,
		decorateTime: true,
	}
	if err := tf.SeekEnd(); err != nil {
		f.Close()

		return nil, err
	}

	return tf, nil
}

// Description returns the file's parsed header metadata.
func (tf *File) Description() *desc.TeaFileDescription {
	return tf.desc
}

// ItemSize returns the fixed byte size of one item.
func (tf *File) ItemSize() int {
	return tf.desc.Item.ItemSize
}

// fileSize stats the file by path rather than by handle, so it keeps
// working after Close (§4.8 itemcount contract).
func (tf *File) fileSize() (int64, error) {
	fi, err := os.Stat(tf.path)
	if err != nil {
		return 0, err
	}

	return fi.Size(), nil
}

// effectiveItemAreaEnd is the persisted itemAreaEnd if the item area was
// preallocated, else the file's current size (§3 "File image").
func (tf *File) effectiveItemAreaEnd() (int64, error) {
	if tf.itemAreaEnd != 0 {
		return tf.itemAreaEnd, nil
	}

	return tf.fileSize()
}

// ItemCount returns the number of whole items currently stored. It remains
// queryable after Close, since it stats the file by path.
func (tf *File) ItemCount() (int64, error) {
	end, err := tf.effectiveItemAreaEnd()
	if err != nil {
		return 0, err
	}

	itemSize := int64(tf.desc.Item.ItemSize)
	if itemSize == 0 {
		return 0, nil
	}

	return (end - tf.itemAreaStart) / itemSize, nil
}

// SeekItem positions the file at the idx-th item (0-based) for the next
// Read or Write call.
func (tf *File) SeekItem(idx int64) error {
	pos := tf.itemAreaStart + idx*int64(tf.desc.Item.ItemSize)

	return tf.fc.SeekTo(pos)
}

// SeekEnd positions the file just past the last whole item, for appending.
func (tf *File) SeekEnd() error {
	areaEnd, err := tf.effectiveItemAreaEnd()
	if err != nil {
		return err
	}

	itemSize := int64(tf.desc.Item.ItemSize)
	count := (areaEnd - tf.itemAreaStart) / itemSize
	end := tf.itemAreaStart + count*itemSize

	return tf.fc.SeekTo(end)
}

// Write packs values, one per field in declaration order, and appends them
// at the current position. Returns errs.ErrReadOnly on a File opened with
// OpenRead, and errs.ErrArityMismatch if len(values) doesn't match the
// item's field count.
func (tf *File) Write(values ...any) error {
	if tf.closed {
		return errs.ErrClosed
	}
	if tf.readOnly {
		return errs.ErrReadOnly
	}

	buf, err := layout.Pack(tf.desc.Item, tf.undecorateTime(values))
	if err != nil {
		return err
	}

	return tf.fc.WriteBytes(buf)
}

// undecorateTime replaces any time.Time value destined for a time-flagged
// field with its raw millisecond tick count (§4.9): on disk a time field is
// always the declared integer type, regardless of whether the caller wrote
// ticks directly or a time.Time. Values for non-time fields, and time.Time
// values supplied when decoration is disabled, pass through unchanged.
func (tf *File) undecorateTime(values []any) []any {
	if !tf.decorateTime || len(values) != len(tf.desc.Item.Fields) {
		return values
	}

	var out []any
	for i, f := range tf.desc.Item.Fields {
		t, ok := values[i].(time.Time)
		if !f.IsTime || !ok {
			continue
		}
		if out == nil {
			out = append([]any(nil), values...)
		}
		out[i] = TicksFromTime(t)
	}

	if out == nil {
		return values
	}

	return out
}

// Read unpacks and returns the item at the current position, then advances
// past it. ok is false with a nil error when the current position is at
// the end of the item area (no more items to read).
func (tf *File) Read() (values []any, ok bool, err error) {
	if tf.closed {
		return nil, false, errs.ErrClosed
	}

	size, err := tf.fileSize()
	if err != nil {
		return nil, false, err
	}

	pos, err := tf.fc.Pos()
	if err != nil {
		return nil, false, err
	}

	itemSize := int64(tf.desc.Item.ItemSize)
	if pos >= size {
		return nil, false, nil
	}
	if size-pos < itemSize {
		return nil, false, errs.ErrTruncatedFile
	}

	buf, err := tf.fc.ReadBytes(int(itemSize))
	if err != nil {
		return nil, false, err
	}

	values, err = layout.Unpack(tf.desc.Item, buf)
	if err != nil {
		return nil, false, err
	}

	return tf.decorateTimeValues(values), true, nil
}

// decorateTimeValues wraps the value of every time-flagged field as a
// time.Time when decoration is enabled (§4.9). Fields whose on-disk type
// isn't Int64 are left as-is, since a tick count narrower than a
// millisecond-resolution Int64 doesn't round-trip through time.Time.
func (tf *File) decorateTimeValues(values []any) []any {
	if !tf.decorateTime {
		return values
	}

	for i, f := range tf.desc.Item.Fields {
		if !f.IsTime {
			continue
		}
		if ticks, ok := values[i].(int64); ok {
			values[i] = TimeFromTicks(ticks)
		}
	}

	return values
}

// Items returns an iterator over the items in [start, end). A negative end
// means "through the last item currently stored". Each call to Items reads
// from its own independent cursor; it does not disturb the position used
// by Read/Write. The sequence stops early, without error, if the item
// count cannot be determined or an item cannot be read in full.
func (tf *File) Items(start, end int64) iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		if end < 0 {
			count, err := tf.ItemCount()
			if err != nil {
				return
			}
			end = count
		}

		itemSize := int64(tf.desc.Item.ItemSize)
		for idx := start; idx < end; idx++ {
			pos := tf.itemAreaStart + idx*itemSize

			buf := make([]byte, itemSize)
			if _, err := tf.f.ReadAt(buf, pos); err != nil {
				return
			}

			values, err := layout.Unpack(tf.desc.Item, buf)
			if err != nil {
				return
			}

			if !yield(tf.decorateTimeValues(values)) {
				return
			}
		}
	}
}

// Flush commits any buffered writes to stable storage.
func (tf *File) Flush() error {
	return tf.f.Sync()
}

// Close flushes and releases the underlying file handle. Close is
// idempotent.
func (tf *File) Close() error {
	if tf.closed {
		return nil
	}
	tf.closed = true

	var syncErr error
	if !tf.readOnly {
		syncErr = tf.f.Sync()
	}

	return errors.Join(syncErr, tf.f.Close())
}
