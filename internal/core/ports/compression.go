package ports

// Defines the interface for the entropy stage of chunk coding.
// This allows us to swap compression algorithms without changing the codec.
type CompressionPort interface {
	// Compress appends the compressed form of data to dst.
	// When compression would not reduce the size the raw data is appended
	// instead and compressed is false.
	Compress(dst, data []byte) (out []byte, compressed bool, err error)

	// Decompress appends the restored form of data to dst.
	Decompress(dst, data []byte) ([]byte, error)

	// Close cleans up compression resources.
	Close() error

	// Level returns current compression level.
	Level() uint8
}
