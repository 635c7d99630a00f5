package ports

// ChecksumPort calculates and verifies chunk checksums.
type ChecksumPort interface {
	// Calculate returns the checksum of data, widened to 64 bits.
	Calculate(data []byte) uint64

	// Verify reports whether data matches the expected checksum.
	Verify(data []byte, expected uint64) bool

	// Size returns the checksum width in bytes.
	Size() uint8

	// Name returns the algorithm name.
	Name() string
}
