package ports

// PointDecompressor is the engine side of a decompression session.
type PointDecompressor interface {
	// DecompressOne decodes the next record into out, which must be exactly
	// one record long.
	DecompressOne(out []byte) error

	// DecompressMany decodes len(out)/recordSize records into out.
	DecompressMany(out []byte) error
}

// PointCompressor is the engine side of a compression session.
type PointCompressor interface {
	// CompressOne encodes a single record.
	CompressOne(in []byte) error

	// CompressMany encodes len(in)/recordSize records.
	CompressMany(in []byte) error

	// Done flushes the last chunk and writes the chunk table.
	Done() error

	// LazVlr returns the serialized configuration record the compressor writes with.
	LazVlr() []byte
}
