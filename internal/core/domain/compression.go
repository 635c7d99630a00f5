package domain

// CompressionOptions tunes the zstd stage that runs after the delta
// predictor. The stage is shared by every session of an API.
type CompressionOptions struct {
	// When false frames carry predictor residuals only (method 0).
	Enable bool

	// Level is a zstd encoder speed, from SpeedFastest (1) to
	// SpeedBestCompression (4). Other values are rejected.
	Level uint8

	// EncoderConcurrency bounds concurrent EncodeAll calls. Zero means one
	// per CPU; values above the CPU count are rejected.
	EncoderConcurrency uint8

	// DecoderConcurrency bounds concurrent DecodeAll calls, same rules as
	// EncoderConcurrency.
	DecoderConcurrency uint8
}
