package stream

import (
	"errors"
	"fmt"
)

const errNullUserData = "custom stream callback invoked with a null user context"

// ErrOutOfRange is returned by MemoryStream for seeks outside the region.
var ErrOutOfRange = errors.New("seek position out of range")

// StdioError carries the error indicator reported by a stdio file.
type StdioError struct {
	Op   string
	Code int
}

func (e *StdioError) Error() string {
	return fmt.Sprintf("%s failed with code %d", e.Op, e.Code)
}
