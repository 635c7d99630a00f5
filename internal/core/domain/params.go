package domain

// DecompressorParams carries everything needed to open a decompression session.
type DecompressorParams struct {
	// Source selects where compressed bytes are read from.
	Source Source

	// SourceOffset is the absolute position of the compressed point data
	// inside Source, for data embedded in a larger container such as a
	// LAZ file. The stream is seeked there before the codec sees it.
	SourceOffset uint64

	// LazVlr is the record data of the "laszip encoded" VLR.
	LazVlr []byte

	// Flavor selects sequential or parallel decoding.
	Flavor Flavor
}

// CompressorParams carries everything needed to open a compression session.
type CompressorParams struct {
	// Destination selects where compressed bytes are written.
	Destination Destination

	// PointFormatID is the LAS point data format (0-10).
	PointFormatID uint8

	// NumExtraBytes is the count of extra bytes appended to each record.
	NumExtraBytes uint16

	// Flavor selects sequential or parallel encoding.
	Flavor Flavor
}
