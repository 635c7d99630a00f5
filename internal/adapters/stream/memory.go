package stream

import (
	"io"

	"github.com/iamNilotpal/lazrs/pkg/errors"
)

// MemoryStream reads and writes a caller-owned region in place. The region
// never grows: writes past its end are short and fail.
type MemoryStream struct {
	data []byte
	pos  int64
}

func NewMemoryStream(data []byte) *MemoryStream {
	return &MemoryStream{data: data}
}

func (m *MemoryStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *MemoryStream) Write(p []byte) (int, error) {
	var n int
	if m.pos < int64(len(m.data)) {
		n = copy(m.data[m.pos:], p)
	}
	m.pos += int64(n)

	if n < len(p) {
		return n, errors.NewIOError("write", io.ErrShortWrite)
	}
	return n, nil
}

// Seek rejects positions before the start or past the end of the region.
func (m *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return m.pos, errors.Errorf(errors.ErrorIO, "seek", "invalid whence %d", whence)
	}

	target := base + offset
	if (offset > 0 && target < base) || target < 0 || target > int64(len(m.data)) {
		return m.pos, errors.NewIOError("seek", ErrOutOfRange)
	}

	m.pos = target
	return target, nil
}

func (m *MemoryStream) Flush() error {
	return nil
}

// Bytes returns the whole region.
func (m *MemoryStream) Bytes() []byte {
	return m.data
}
