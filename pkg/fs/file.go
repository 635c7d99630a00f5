package fs

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// DefaultBufferSize is the read buffer of files opened with OpenBuffered.
const DefaultBufferSize = 64 * 1024

var errNegativeOffset = errors.New("fs: negative seek position")

// bufferedFile pairs a bufio.Reader with the file it drains and keeps the
// logical position, which lags the file position by the buffered bytes.
type bufferedFile struct {
	file   *os.File
	reader *bufio.Reader
	pos    int64
}

func newBufferedFile(file *os.File, size int) *bufferedFile {
	return &bufferedFile{file: file, reader: bufio.NewReaderSize(file, size)}
}

func (b *bufferedFile) Read(p []byte) (int, error) {
	n, err := b.reader.Read(p)
	b.pos += int64(n)
	return n, err
}

// Seek repositions the file and drops the buffer. A zero move from the
// current position only reports the logical position.
func (b *bufferedFile) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		if offset == 0 {
			return b.pos, nil
		}
		target = b.pos + offset
	case io.SeekEnd:
		end, err := b.file.Seek(offset, io.SeekEnd)
		if err != nil {
			return b.pos, err
		}
		b.reader.Reset(b.file)
		b.pos = end
		return end, nil
	default:
		return b.pos, errors.New("fs: invalid whence")
	}

	if target < 0 {
		return b.pos, errNegativeOffset
	}

	if _, err := b.file.Seek(target, io.SeekStart); err != nil {
		return b.pos, err
	}
	b.reader.Reset(b.file)
	b.pos = target
	return target, nil
}

func (b *bufferedFile) Close() error {
	return b.file.Close()
}
