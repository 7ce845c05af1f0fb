package codec

import (
	"unicode/utf8"

	"github.com/teafile-go/teafile/errs"
)

// Value kind tags for NameValue payloads (§4.2).
const (
	KindInt32   = int32(1)
	KindFloat64 = int32(2)
	KindText    = int32(3)
	KindUUID    = int32(4)
)

// UUIDSize is the fixed byte size of a raw UUID value (§4.2).
const UUIDSize = 16

// FormattedCodec layers length-prefixed UTF-8 text, raw UUIDs, and tagged
// name/value pairs on top of a ByteCodec.
type FormattedCodec struct {
	*ByteCodec
}

// NewFormattedCodec wraps an existing ByteCodec with the formatted
// (text/UUID/name-value) operations.
func NewFormattedCodec(bc *ByteCodec) *FormattedCodec {
	return &FormattedCodec{ByteCodec: bc}
}

// ReadText reads an Int32 byte count followed by that many UTF-8 bytes.
// Returns errs.ErrInvalidEncoding if the bytes are not valid UTF-8.
func (c *FormattedCodec) ReadText() (string, error) {
	n, err := c.ReadInt32()
	if err != nil {
		return "", err
	}

	buf, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(buf) {
		return "", errs.ErrInvalidEncoding
	}

	return string(buf), nil
}

// WriteText writes s as an Int32 byte count followed by its UTF-8 bytes.
func (c *FormattedCodec) WriteText(s string) error {
	if err := c.WriteInt32(int32(len(s))); err != nil { //nolint:gosec
		return err
	}

	return c.WriteBytes([]byte(s))
}

// ReadUUID reads a raw 16-byte UUID.
func (c *FormattedCodec) ReadUUID() ([UUIDSize]byte, error) {
	var out [UUIDSize]byte

	buf, err := c.ReadBytes(UUIDSize)
	if err != nil {
		return out, err
	}
	copy(out[:], buf)

	return out, nil
}

// WriteUUID writes a raw 16-byte UUID verbatim.
func (c *FormattedCodec) WriteUUID(id [UUIDSize]byte) error {
	return c.WriteBytes(id[:])
}

// NameValue is a single decoded key/value entry from a NameValue section.
// Exactly one of Int32Val, Float64Val, TextVal, or UUIDVal is meaningful,
// selected by Kind.
type NameValue struct {
	Key        string
	Kind       int32
	Int32Val   int32
	Float64Val float64
	TextVal    string
	UUIDVal    [UUIDSize]byte
}

// ReadNameValue reads one NameValue record: a text key, an Int32 kind tag,
// then the payload selected by that tag. Returns errs.ErrUnknownValueKind
// for any tag outside {1,2,3,4}.
func (c *FormattedCodec) ReadNameValue() (NameValue, error) {
	var nv NameValue

	key, err := c.ReadText()
	if err != nil {
		return nv, err
	}
	nv.Key = key

	kind, err := c.ReadInt32()
	if err != nil {
		return nv, err
	}
	nv.Kind = kind

	switch kind {
	case KindInt32:
		nv.Int32Val, err = c.ReadInt32()
	case KindFloat64:
		nv.Float64Val, err = c.ReadFloat64()
	case KindText:
		nv.TextVal, err = c.ReadText()
	case KindUUID:
		nv.UUIDVal, err = c.ReadUUID()
	default:
		return nv, errs.ErrUnknownValueKind
	}

	return nv, err
}

// WriteNameValue writes a NameValue record: its key, its Kind tag, then the
// payload selected by Kind.
func (c *FormattedCodec) WriteNameValue(nv NameValue) error {
	if err := c.WriteText(nv.Key); err != nil {
		return err
	}
	if err := c.WriteInt32(nv.Kind); err != nil {
		return err
	}

	switch nv.Kind {
	case KindInt32:
		return c.WriteInt32(nv.Int32Val)
	case KindFloat64:
		return c.WriteFloat64(nv.Float64Val)
	case KindText:
		return c.WriteText(nv.TextVal)
	case KindUUID:
		return c.WriteUUID(nv.UUIDVal)
	default:
		return errs.ErrUnknownValueKind
	}
}
