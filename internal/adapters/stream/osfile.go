package stream

import (
	"errors"
	"io"
	"os"
)

// OSFile exposes an *os.File through the stdio primitive set, so Go callers
// can use the file variants without a C runtime. The file is not closed.
type OSFile struct {
	file    *os.File
	errFlag int
}

func NewOSFile(file *os.File) *OSFile {
	return &OSFile{file: file}
}

// Fread fills p unless end of file or an error comes first.
func (f *OSFile) Fread(p []byte) int {
	n, err := io.ReadFull(f.file, p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		f.errFlag = 1
	}
	return n
}

func (f *OSFile) Fwrite(p []byte) int {
	n, err := f.file.Write(p)
	if err != nil {
		f.errFlag = 1
	}
	return n
}

func (f *OSFile) Ferror() int {
	return f.errFlag
}

func (f *OSFile) Fseek(offset int64, whence int) int {
	if _, err := f.file.Seek(offset, whence); err != nil {
		return -1
	}
	return 0
}

func (f *OSFile) Ftell() int64 {
	pos, err := f.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Fflush is a no-op: os.File does not buffer in user space.
func (f *OSFile) Fflush() int {
	return 0
}
