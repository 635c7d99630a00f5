package stream

import (
	"fmt"
	"io"
	"math"
	"unsafe"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/pkg/errors"
)

// CustomSourceStream forwards reads and seeks to caller supplied callbacks.
// Every call passes the caller's user context; invoking a callback with a
// null context panics.
type CustomSourceStream struct {
	callbacks ports.SourceCallbacks
}

func NewCustomSourceStream(callbacks ports.SourceCallbacks) *CustomSourceStream {
	return &CustomSourceStream{callbacks: callbacks}
}

func (s *CustomSourceStream) userData() unsafe.Pointer {
	ud := s.callbacks.UserData()
	if ud == nil {
		panic(errNullUserData)
	}
	return ud
}

// Read returns io.EOF once the callback reports zero bytes.
func (s *CustomSourceStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := s.callbacks.Read(s.userData(), p)
	if n > uint64(len(p)) {
		return 0, errors.Errorf(errors.ErrorIO, "read", "callback reported %d bytes for a %d byte buffer", n, len(p))
	}
	if n == 0 {
		return 0, io.EOF
	}
	return int(n), nil
}

func (s *CustomSourceStream) Seek(offset int64, whence int) (int64, error) {
	return seekWithTell(s.userData(), offset, whence, s.callbacks.Seek, s.callbacks.Tell)
}

// CustomDestinationStream forwards writes, flushes and seeks to caller
// supplied callbacks under the same user context rules as the source.
type CustomDestinationStream struct {
	callbacks ports.DestinationCallbacks
}

func NewCustomDestinationStream(callbacks ports.DestinationCallbacks) *CustomDestinationStream {
	return &CustomDestinationStream{callbacks: callbacks}
}

func (s *CustomDestinationStream) userData() unsafe.Pointer {
	ud := s.callbacks.UserData()
	if ud == nil {
		panic(errNullUserData)
	}
	return ud
}

func (s *CustomDestinationStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := s.callbacks.Write(s.userData(), p)
	if n < uint64(len(p)) {
		return int(n), errors.Errorf(errors.ErrorIO, "write", "callback wrote %d of %d bytes", n, len(p))
	}
	return len(p), nil
}

func (s *CustomDestinationStream) Flush() error {
	if code := s.callbacks.Flush(s.userData()); code != 0 {
		return errors.Errorf(errors.ErrorIO, "flush", "flush callback returned %d", code)
	}
	return nil
}

func (s *CustomDestinationStream) Seek(offset int64, whence int) (int64, error) {
	return seekWithTell(s.userData(), offset, whence, s.callbacks.Seek, s.callbacks.Tell)
}

// seekWithTell calls seek and, only when it succeeds, asks tell for the
// resulting position.
func seekWithTell(
	ud unsafe.Pointer,
	offset int64,
	whence int,
	seek func(unsafe.Pointer, int64, int) int,
	tell func(unsafe.Pointer) uint64,
) (int64, error) {
	if code := seek(ud, offset, whence); code != 0 {
		return 0, errors.Errorf(errors.ErrorIO, "seek", "seek callback returned %d", code)
	}

	pos := tell(ud)
	if pos > math.MaxInt64 {
		return 0, errors.NewIOError("tell", fmt.Errorf("position %d out of range", pos))
	}
	return int64(pos), nil
}
