package fs

import (
	"errors"
	"os"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

// LocalFileSystem serves path sources and configuration files from the
// operating system.
type LocalFileSystem struct {
	bufferSize int
}

// NewLocalFileSystem returns a file system whose buffered readers use
// bufferSize bytes. Sizes below DefaultBufferSize are raised to it.
func NewLocalFileSystem(bufferSize int) *LocalFileSystem {
	if bufferSize < DefaultBufferSize {
		bufferSize = DefaultBufferSize
	}
	return &LocalFileSystem{bufferSize: bufferSize}
}

// Opens a file read-only behind a seekable buffered reader.
func (lfs *LocalFileSystem) OpenBuffered(filePath string) (ports.ReadSeekCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return newBufferedFile(file, lfs.bufferSize), nil
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
