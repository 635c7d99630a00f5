// Package stream adapts the byte sources and sinks a foreign caller can hand
// over (stdio files, memory regions, callback sets) to the read-seek and
// write-seek contracts the codec engine consumes.
package stream

import (
	"io"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/pkg/errors"
)

// FileStream drives a stdio file. It serves as both a source and a
// destination; the file is owned by the caller and never closed here.
type FileStream struct {
	file ports.StdioFile
}

func NewFileStream(file ports.StdioFile) *FileStream {
	return &FileStream{file: file}
}

// Read transfers up to len(p) bytes. A short read with the error indicator
// set is an I/O failure; a short read without it is end of file.
func (s *FileStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := s.file.Fread(p)
	if n < len(p) {
		if code := s.file.Ferror(); code != 0 {
			return n, errors.NewIOError("fread", &StdioError{Op: "fread", Code: code})
		}
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

func (s *FileStream) Write(p []byte) (int, error) {
	n := s.file.Fwrite(p)
	if n < len(p) {
		if code := s.file.Ferror(); code != 0 {
			return n, errors.NewIOError("fwrite", &StdioError{Op: "fwrite", Code: code})
		}
		return n, errors.NewIOError("fwrite", io.ErrShortWrite)
	}
	return n, nil
}

// Seek moves the file position and reports the new one as given by ftell.
// A zero move relative to the current position only queries it.
func (s *FileStream) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekCurrent || offset != 0 {
		if code := s.file.Fseek(offset, whence); code != 0 {
			return 0, errors.NewIOError("fseek", &StdioError{Op: "fseek", Code: code})
		}
	}

	pos := s.file.Ftell()
	if pos < 0 {
		return 0, errors.NewIOError("ftell", &StdioError{Op: "ftell", Code: int(pos)})
	}
	return pos, nil
}

func (s *FileStream) Flush() error {
	if s.file.Fflush() != 0 {
		return errors.NewIOError("fflush", &StdioError{Op: "fflush", Code: s.file.Ferror()})
	}
	return nil
}
