package ports

import "io"

// Source is the read+seek capability the codec engine consumes. Every
// source variant (memory, native file, path, custom callbacks) is reduced
// to this before the engine sees it.
type Source interface {
	io.Reader
	io.Seeker
}

// Destination is the write+seek capability the codec engine produces into.
// Flush pushes any data buffered by the backing resource to its final home.
type Destination interface {
	io.Writer
	io.Seeker

	// Flush forwards buffered bytes to the underlying resource.
	Flush() error
}

// ReadSeekCloser is a Source that owns a resource which must be released
// when the session ends, such as a file opened from a path.
type ReadSeekCloser interface {
	Source
	io.Closer
}
