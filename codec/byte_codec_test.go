package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teafile-go/teafile/errs"
)

func TestByteCodec_ScalarRoundTrip(t *testing.T) {
	buf := NewBuffer()
	c := NewByteCodec(buf)

	require.NoError(t, c.WriteInt32(-42))
	require.NoError(t, c.WriteInt64(1234567890123))
	require.NoError(t, c.WriteFloat64(3.14159))
	require.NoError(t, c.WriteBytes([]byte("raw")))

	require.NoError(t, c.SeekTo(0))

	i32, err := c.ReadInt32()
	require.NoError(t, err)
	require.EqualValues(t, -42, i32)

	i64, err := c.ReadInt64()
	require.NoError(t, err)
	require.EqualValues(t, 1234567890123, i64)

	f64, err := c.ReadFloat64()
	require.NoError(t, err)
	require.InDelta(t, 3.14159, f64, 1e-12)

	raw, err := c.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, "raw", string(raw))
}

func TestByteCodec_LittleEndian(t *testing.T) {
	buf := NewBuffer()
	c := NewByteCodec(buf)
	require.NoError(t, c.WriteInt32(1))

	require.Equal(t, []byte{1, 0, 0, 0}, buf.data)
}

func TestByteCodec_TruncatedRead(t *testing.T) {
	buf := NewBufferWithData([]byte{1, 2, 3})
	c := NewByteCodec(buf)

	_, err := c.ReadInt64()
	require.ErrorIs(t, err, errs.ErrTruncatedFile)
}
