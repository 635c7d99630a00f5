package domain

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions defines configuration for chunk checksums.
type ChecksumOptions struct {
	// Enable controls whether chunk checksums are written.
	// Decompressors always verify a checksum when a chunk carries one,
	// regardless of this flag.
	//
	// Default: true
	Enable bool

	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32IEEE if not specified.
	Algorithm ChecksumAlgorithm
}
