package stream

import (
	"io"
	"unsafe"
)

// fakeStdio is an in-memory stdio file with switchable failures.
type fakeStdio struct {
	data      []byte
	pos       int64
	errFlag   int
	failRead  bool
	failWrite bool
	failSeek  bool
	failFlush bool
	tells     int
	seeks     int
}

func (f *fakeStdio) Fread(p []byte) int {
	if f.failRead {
		f.errFlag = 5
		return 0
	}
	if f.pos >= int64(len(f.data)) {
		return 0
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n
}

func (f *fakeStdio) Fwrite(p []byte) int {
	if f.failWrite {
		f.errFlag = 28
		return len(p) / 2
	}
	end := f.pos + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.pos:], p)
	f.pos = end
	return len(p)
}

func (f *fakeStdio) Ferror() int { return f.errFlag }

func (f *fakeStdio) Fseek(offset int64, whence int) int {
	f.seeks++
	if f.failSeek {
		return -1
	}
	switch whence {
	case io.SeekStart:
		f.pos = offset
	case io.SeekCurrent:
		f.pos += offset
	case io.SeekEnd:
		f.pos = int64(len(f.data)) + offset
	}
	return 0
}

func (f *fakeStdio) Ftell() int64 {
	f.tells++
	return f.pos
}

func (f *fakeStdio) Fflush() int {
	if f.failFlush {
		return -1
	}
	return 0
}

// fakeCallbacks implements both callback sets over a byte slice.
type fakeCallbacks struct {
	ctx      *int
	data     []byte
	pos      int64
	seekCode int
	flushRet int
	short    bool
	tells    int
	seenUD   []unsafe.Pointer
}

func newFakeCallbacks(data []byte) *fakeCallbacks {
	ctx := 7
	return &fakeCallbacks{ctx: &ctx, data: data}
}

func (c *fakeCallbacks) UserData() unsafe.Pointer {
	if c.ctx == nil {
		return nil
	}
	return unsafe.Pointer(c.ctx)
}

func (c *fakeCallbacks) Read(ud unsafe.Pointer, p []byte) uint64 {
	c.seenUD = append(c.seenUD, ud)
	if c.pos >= int64(len(c.data)) {
		return 0
	}
	n := copy(p, c.data[c.pos:])
	c.pos += int64(n)
	return uint64(n)
}

func (c *fakeCallbacks) Write(ud unsafe.Pointer, p []byte) uint64 {
	c.seenUD = append(c.seenUD, ud)
	if c.short {
		return uint64(len(p) - 1)
	}
	end := c.pos + int64(len(p))
	if end > int64(len(c.data)) {
		c.data = append(c.data, make([]byte, end-int64(len(c.data)))...)
	}
	copy(c.data[c.pos:], p)
	c.pos = end
	return uint64(len(p))
}

func (c *fakeCallbacks) Flush(ud unsafe.Pointer) int {
	c.seenUD = append(c.seenUD, ud)
	return c.flushRet
}

func (c *fakeCallbacks) Seek(ud unsafe.Pointer, offset int64, whence int) int {
	c.seenUD = append(c.seenUD, ud)
	if c.seekCode != 0 {
		return c.seekCode
	}
	switch whence {
	case io.SeekStart:
		c.pos = offset
	case io.SeekCurrent:
		c.pos += offset
	case io.SeekEnd:
		c.pos = int64(len(c.data)) + offset
	}
	return 0
}

func (c *fakeCallbacks) Tell(ud unsafe.Pointer) uint64 {
	c.seenUD = append(c.seenUD, ud)
	c.tells++
	return uint64(c.pos)
}
