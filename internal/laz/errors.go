package laz

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the failure classes of the engine.
type ErrorKind int

const (
	KindUnknownLazItem ErrorKind = iota + 1
	KindUnsupportedLazItemVersion
	KindUnknownCompressorType
	KindUnsupportedCompressorType
	KindUnsupportedPointFormat
	KindIo
	KindMissingChunkTable
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownLazItem:
		return "unknown laz item"
	case KindUnsupportedLazItemVersion:
		return "unsupported laz item version"
	case KindUnknownCompressorType:
		return "unknown compressor type"
	case KindUnsupportedCompressorType:
		return "unsupported compressor type"
	case KindUnsupportedPointFormat:
		return "unsupported point format"
	case KindIo:
		return "io"
	case KindMissingChunkTable:
		return "missing chunk table"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Error is returned by every engine operation that fails.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("laz: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("laz: %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// ioError wraps a stream failure.
func ioError(op string, err error) *Error {
	return newError(KindIo, op, err)
}

// KindOf reports the kind of the first engine error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return 0, false
}

var (
	errFinished    = errors.New("compressor is already done")
	errRecordSize  = errors.New("buffer length is not a whole number of points")
	errNoMorePoint = errors.New("no more points to decompress")
)
