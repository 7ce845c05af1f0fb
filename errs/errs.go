// Package errs defines the sentinel errors returned across the teafile
// module. Call sites wrap these with fmt.Errorf("%w: ...", errs.ErrX, ...)
// to attach context; callers compare with errors.Is against the sentinel.
package errs

import "errors"

// Header and section format errors.
var (
	// ErrBOMMismatch is returned when the leading 8 bytes of a file do not
	// match the TeaFile byte-order-mark.
	ErrBOMMismatch = errors.New("teafile: byte-order-mark mismatch")

	// ErrSectionOverrun is returned when a section reader consumes more
	// bytes than the section's declared payload size advertised.
	ErrSectionOverrun = errors.New("teafile: section read past declared payload size")

	// ErrInvalidFieldType is returned when a persisted or requested field
	// type tag is outside the closed enumeration of scalar field types.
	ErrInvalidFieldType = errors.New("teafile: invalid field type tag")

	// ErrUnknownValueKind is returned when a NameValue record's kind tag
	// does not match one of the four known value kinds.
	ErrUnknownValueKind = errors.New("teafile: unknown name/value kind tag")

	// ErrInvalidEncoding is returned when length-prefixed text bytes are not
	// valid UTF-8.
	ErrInvalidEncoding = errors.New("teafile: text is not valid UTF-8")
)

// I/O errors.
var (
	// ErrTruncatedFile is returned when fewer bytes than requested could be
	// read before reaching EOF.
	ErrTruncatedFile = errors.New("teafile: truncated file")

	// ErrClosed is returned by Read and Write on a closed File. ItemCount
	// keeps working after Close; SeekItem, SeekEnd and Flush return the
	// underlying file's error instead, and Items yields no items.
	ErrClosed = errors.New("teafile: operation on closed file")
)

// Format-string and layout errors.
var (
	// ErrInvalidFormatString is returned when a format string contains a
	// character outside the type-code alphabet, a repetition count, or a
	// byte-order/alignment prefix.
	ErrInvalidFormatString = errors.New("teafile: invalid format string")

	// ErrFieldCountMismatch is returned when the number of field names does
	// not match the number of type codes in an explicit format string.
	ErrFieldCountMismatch = errors.New("teafile: field name count does not match format string length")

	// ErrNoFields is returned when an ItemDescription has zero fields.
	ErrNoFields = errors.New("teafile: item description has no fields")

	// ErrItemSizeMismatch is returned when a buffer handed to Unpack is not
	// exactly the item's declared size.
	ErrItemSizeMismatch = errors.New("teafile: buffer size does not match item size")

	// ErrDuplicateFieldName is returned when two fields sanitize to the same
	// identifier.
	ErrDuplicateFieldName = errors.New("teafile: duplicate field name")
)

// Facade/write-path errors.
var (
	// ErrArityMismatch is returned when Write is called with a number of
	// values different from the item's field count.
	ErrArityMismatch = errors.New("teafile: value count does not match field count")

	// ErrFileExists is returned by Create when the path already exists and
	// overwrite was not enabled.
	ErrFileExists = errors.New("teafile: file already exists")

	// ErrReadOnly is returned when a write operation is attempted on a
	// reader opened with OpenRead.
	ErrReadOnly = errors.New("teafile: file was opened read-only")
)
