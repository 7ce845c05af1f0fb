// Package codec provides the fixed-width, little-endian scalar codec
// (ByteCodec) and the length-prefixed text/UUID/name-value codec
// (FormattedCodec) that the header and item layers are built on.
//
// All multi-byte values are little-endian regardless of host byte order,
// per the TeaFile format (§6): the file is always little-endian as
// written, so ByteCodec never consults host endianness.
package codec

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/teafile-go/teafile/errs"
)

// ByteCodec performs fixed-width integer, float, and raw-byte I/O on an
// underlying random-access stream (an *os.File in production, a
// codec.Buffer in tests). A short read before the requested byte count is
// reached is always reported as errs.ErrTruncatedFile.
type ByteCodec struct {
	rw io.ReadWriteSeeker
}

// NewByteCodec wraps rw with fixed-width scalar read/write helpers.
func NewByteCodec(rw io.ReadWriteSeeker) *ByteCodec {
	return &ByteCodec{rw: rw}
}

// Pos returns the current absolute byte position of the underlying stream.
func (c *ByteCodec) Pos() (int64, error) {
	return c.rw.Seek(0, io.SeekCurrent)
}

// SeekTo sets the absolute byte position of the underlying stream.
func (c *ByteCodec) SeekTo(pos int64) error {
	_, err := c.rw.Seek(pos, io.SeekStart)

	return err
}

// Skip advances the stream by n bytes without reading their contents.
func (c *ByteCodec) Skip(n int64) error {
	_, err := c.rw.Seek(n, io.SeekCurrent)

	return err
}

// ReadBytes reads exactly n raw bytes. Fewer bytes available before EOF is
// reported as errs.ErrTruncatedFile.
func (c *ByteCodec) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.rw, buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, errs.ErrTruncatedFile
		}

		return nil, err
	}

	return buf, nil
}

// WriteBytes writes the raw bytes of buf verbatim.
func (c *ByteCodec) WriteBytes(buf []byte) error {
	_, err := c.rw.Write(buf)

	return err
}

// ReadInt32 reads a little-endian 4-byte signed integer.
func (c *ByteCodec) ReadInt32() (int32, error) {
	buf, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(buf)), nil //nolint:gosec
}

// WriteInt32 writes v as a little-endian 4-byte signed integer.
func (c *ByteCodec) WriteInt32(v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v)) //nolint:gosec

	return c.WriteBytes(buf[:])
}

// ReadInt64 reads a little-endian 8-byte signed integer.
func (c *ByteCodec) ReadInt64() (int64, error) {
	buf, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(buf)), nil //nolint:gosec
}

// WriteInt64 writes v as a little-endian 8-byte signed integer.
func (c *ByteCodec) WriteInt64(v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec

	return c.WriteBytes(buf[:])
}

// ReadFloat64 reads a little-endian IEEE-754 double.
func (c *ByteCodec) ReadFloat64() (float64, error) {
	buf, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// WriteFloat64 writes v as a little-endian IEEE-754 double.
func (c *ByteCodec) WriteFloat64(v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))

	return c.WriteBytes(buf[:])
}
