package ports

import "unsafe"

// SourceCallbacks is a caller supplied read/seek/tell capability.
//
// Every method receives the opaque user context returned by UserData. The
// adapter wrapping a SourceCallbacks asserts that context is non-nil before
// each call. When a custom source backs a parallel session the
// implementation must tolerate calls from any goroutine.
type SourceCallbacks interface {
	// UserData returns the opaque context passed back to every callback.
	UserData() unsafe.Pointer

	// Read fills up to len(p) bytes and returns how many were read.
	Read(userData unsafe.Pointer, p []byte) uint64

	// Seek moves to offset relative to whence and returns 0 on success.
	Seek(userData unsafe.Pointer, offset int64, whence int) int

	// Tell reports the current absolute position.
	Tell(userData unsafe.Pointer) uint64
}

// DestinationCallbacks is a caller supplied write/flush/seek/tell capability.
type DestinationCallbacks interface {
	// UserData returns the opaque context passed back to every callback.
	UserData() unsafe.Pointer

	// Write consumes up to len(p) bytes and returns how many were written.
	Write(userData unsafe.Pointer, p []byte) uint64

	// Flush returns 0 on success.
	Flush(userData unsafe.Pointer) int

	// Seek moves to offset relative to whence and returns 0 on success.
	Seek(userData unsafe.Pointer, offset int64, whence int) int

	// Tell reports the current absolute position.
	Tell(userData unsafe.Pointer) uint64
}
