package codec

import "io"

// Buffer is a minimal in-memory io.ReadWriteSeeker. The header manager uses
// it to assemble a section block in memory before it knows the final
// section count and header length (§4.7); tests use it to exercise codecs
// without touching the filesystem.
type Buffer struct {
	data []byte
	pos  int64
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferWithData returns a Buffer pre-seeded with data, positioned at
// its start.
func NewBufferWithData(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the buffer's current contents. Callers must not retain the
// slice across further writes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)

	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:end], p)
	b.pos += int64(n)

	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = b.pos + offset
	case io.SeekEnd:
		newPos = int64(len(b.data)) + offset
	}
	b.pos = newPos

	return b.pos, nil
}
