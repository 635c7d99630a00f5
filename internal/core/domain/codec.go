package domain

// CodecOptions defines the tunables of the codec engine that are not part
// of the LAZ configuration record itself.
type CodecOptions struct {
	// ChunkSize is the number of records per chunk written by new
	// compressors. Decompressors always use the value stored in the
	// configuration record.
	//
	// Default: 50000
	ChunkSize uint32

	// Workers bounds the worker pool of parallel sessions.
	// Zero means one worker per CPU.
	Workers int

	// ChunksPerBatch is how many chunks a parallel session hands to the
	// worker pool at once.
	//
	// Default: 2 * Workers
	ChunksPerBatch int

	// Compression configures the per-chunk entropy stage.
	Compression *CompressionOptions

	// Checksum configures per-chunk integrity checks.
	Checksum *ChecksumOptions
}
