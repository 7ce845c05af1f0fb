package section

import (
	"fmt"

	"github.com/teafile-go/teafile/codec"
	"github.com/teafile-go/teafile/errs"
)

// encodePayload runs fn against a fresh in-memory FormattedCodec and
// returns everything it wrote. Used by WriteSection so callers never have
// to know the payload's length before it is produced.
func encodePayload(fn func(fc *codec.FormattedCodec) error) ([]byte, error) {
	buf := codec.NewBuffer()
	fc := codec.NewFormattedCodec(codec.NewByteCodec(buf))

	if err := fn(fc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteSection writes a complete section (id, payload length, payload) to
// fc. payload is produced by fn via encodePayload.
func WriteSection(fc *codec.FormattedCodec, id int32, fn func(fc *codec.FormattedCodec) error) error {
	payload, err := encodePayload(fn)
	if err != nil {
		return err
	}

	if err := fc.WriteInt32(id); err != nil {
		return err
	}
	if err := fc.WriteInt32(int32(len(payload))); err != nil { //nolint:gosec
		return err
	}

	return fc.WriteBytes(payload)
}

// Header is the Int32 id + Int32 payload-length pair every section begins
// with.
type Header struct {
	ID          int32
	PayloadSize int32
}

// ReadHeader reads the 8-byte id/payload-length prefix of the next
// section.
func ReadHeader(fc *codec.FormattedCodec) (Header, error) {
	id, err := fc.ReadInt32()
	if err != nil {
		return Header{}, err
	}
	size, err := fc.ReadInt32()
	if err != nil {
		return Header{}, err
	}

	return Header{ID: id, PayloadSize: size}, nil
}

// Skip discards h's entire payload, for sections with an id this reader
// does not recognize.
func Skip(fc *codec.FormattedCodec, h Header) error {
	return fc.Skip(int64(h.PayloadSize))
}

// checkOverrun verifies a section reader consumed no more than
// declared bytes of its own payload, per the §4.6 post-condition.
func checkOverrun(before, after int64, declared int32) error {
	consumed := after - before
	if consumed > int64(declared) {
		return fmt.Errorf("%w: consumed %d bytes, declared %d", errs.ErrSectionOverrun, consumed, declared)
	}

	return nil
}
