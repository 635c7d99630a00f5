package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the failures that can occur while a codec session
// is created or driven. The boundary maps categories onto result codes, so a
// category must describe where the failure came from, not how it was noticed.
type ErrorCategory int

const (
	// ErrorCodec indicates a failure reported by the codec engine itself,
	// such as an unknown item in the configuration record or a corrupt chunk.
	ErrorCodec ErrorCategory = iota + 1

	// ErrorIO indicates errors related to the underlying stream such as a
	// failed read, write, seek or open, or a short transfer.
	ErrorIO

	// ErrorConfig indicates invalid parameters supplied at session creation,
	// such as a nil file, an invalid path or an unsupported buffer length.
	ErrorConfig

	// ErrorInternal indicates a broken precondition inside the boundary,
	// such as operating on a handle that is not live.
	ErrorInternal
)

// String returns the string representation of the error category.
// This is useful for logging and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorCodec:
		return "codec"
	case ErrorIO:
		return "io"
	case ErrorConfig:
		return "config"
	case ErrorInternal:
		return "internal"
	default:
		return "unknown"
	}
}

type BoundaryError struct {
	Err       error
	Operation string
	Category  ErrorCategory
}

func New(category ErrorCategory, operation string, err error) *BoundaryError {
	return &BoundaryError{Err: err, Operation: operation, Category: category}
}

// NewIOError wraps err as a stream failure of the named operation.
func NewIOError(operation string, err error) *BoundaryError {
	return New(ErrorIO, operation, err)
}

// Errorf builds a BoundaryError whose cause is formatted like fmt.Errorf.
func Errorf(category ErrorCategory, operation, format string, args ...any) *BoundaryError {
	return New(category, operation, fmt.Errorf(format, args...))
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// CategoryOf reports the category of the outermost BoundaryError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var be *BoundaryError
	if errors.As(err, &be) {
		return be.Category, true
	}
	return 0, false
}

// IsIOError checks whether any BoundaryError in err's chain is an I/O failure.
func IsIOError(err error) bool {
	for err != nil {
		var be *BoundaryError
		if !errors.As(err, &be) {
			return false
		}
		if be.Category == ErrorIO {
			return true
		}
		err = be.Err
	}
	return false
}
