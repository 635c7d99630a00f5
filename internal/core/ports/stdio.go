package ports

// StdioFile is the set of buffered stream primitives of a native C FILE
// handle. Implementations follow the C library semantics: transfer calls
// return the number of bytes moved, Ferror returns the sticky error flag
// (non-zero when set) and the remaining calls return 0 on success.
type StdioFile interface {
	// Fread reads up to len(p) bytes and returns the count actually read.
	Fread(p []byte) int

	// Fwrite writes up to len(p) bytes and returns the count actually written.
	Fwrite(p []byte) int

	// Ferror returns the error indicator of the stream, 0 when clear.
	Ferror() int

	// Fseek moves the position, whence is one of io.SeekStart,
	// io.SeekCurrent or io.SeekEnd. Returns 0 on success.
	Fseek(offset int64, whence int) int

	// Ftell returns the current absolute position, or -1 on failure.
	Ftell() int64

	// Fflush writes buffered output. Returns 0 on success.
	Fflush() int
}
