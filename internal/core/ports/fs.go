package ports

// FileSystemPort opens files named by path sources.
type FileSystemPort interface {
	// OpenBuffered opens filePath read-only behind a read buffer.
	OpenBuffered(filePath string) (ReadSeekCloser, error)

	// Exists reports whether filePath exists.
	Exists(filePath string) (bool, error)
}
