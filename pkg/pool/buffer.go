// Package pool recycles the scratch buffers used while coding chunks.
package pool

import (
	"bytes"
	"sync"
)

// Buffers hands out scratch buffers sized for one chunk. A buffer that grew
// past twice the hint is dropped on Put instead of being retained.
type Buffers struct {
	hint int
	free sync.Pool
}

func NewBuffers(hint int) *Buffers {
	return &Buffers{hint: max(hint, 0)}
}

// Get returns an empty buffer with room for at least n bytes.
func (b *Buffers) Get(n int) *bytes.Buffer {
	buf, ok := b.free.Get().(*bytes.Buffer)
	if !ok {
		return bytes.NewBuffer(make([]byte, 0, max(n, b.hint)))
	}
	buf.Reset()
	buf.Grow(n)
	return buf
}

func (b *Buffers) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > 2*b.hint {
		return
	}
	b.free.Put(buf)
}

// Scratch returns n bytes of the buffer's spare capacity. The slice is only
// valid until the buffer is returned.
func Scratch(buf *bytes.Buffer, n int) []byte {
	buf.Grow(n)
	return buf.AvailableBuffer()[:n]
}
