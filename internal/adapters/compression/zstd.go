// Package compression provides the entropy stage of chunk coding using the
// zstd algorithm. It offers a thread-safe implementation with configurable
// compression levels and automatic optimization for small chunks.
package compression

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	pkgerrors "github.com/iamNilotpal/lazrs/pkg/errors"
)

// minCompressSize is the smallest payload worth running through zstd.
const minCompressSize = 64

// Compression level constants define the trade-off between compression ratio and speed.
// They map directly onto zstd.EncoderLevel.
const (
	FastestLevel uint8 = uint8(zstd.SpeedFastest)         // Optimized for speed with minimal compression
	DefaultLevel uint8 = uint8(zstd.SpeedDefault)         // Balanced between speed and compression ratio
	BestLevel    uint8 = uint8(zstd.SpeedBestCompression) // Maximum compression ratio, higher CPU usage
)

type Options struct {
	Level              uint8
	EncoderConcurrency uint8
	DecoderConcurrency uint8
}

// ZstdCompression implements CompressionPort using the zstd compression algorithm.
// EncodeAll and DecodeAll are safe for concurrent use, so one instance is
// shared by all workers of a parallel session.
type ZstdCompression struct {
	level   uint8         // Current compression level
	mu      sync.RWMutex  // Protects concurrent access to compression state
	closed  bool          // Set once Close released the coders
	decoder *zstd.Decoder // Thread-safe decoder instance for decompression
	encoder *zstd.Encoder // Thread-safe encoder instance for compression
}

// NewZstdCompression creates a new zstd compression instance with the specified level.
// A zero concurrency selects one coder per CPU.
//
// Returns an error if:
// - The compression level is invalid
// - The encoder or decoder initialization fails
func NewZstdCompression(opts Options) (*ZstdCompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Level:              opts.Level,
			EncoderConcurrency: opts.EncoderConcurrency,
			DecoderConcurrency: opts.DecoderConcurrency,
		},
	); err != nil {
		return nil, err
	}

	encoderConcurrency := int(opts.EncoderConcurrency)
	if encoderConcurrency == 0 {
		encoderConcurrency = int(cpuCount())
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(encoderConcurrency),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress appends the zstd form of data to dst.
// It includes optimizations to:
// - Skip compression for small chunks (< 64 bytes)
// - Store the original data if compression doesn't reduce size
//
// The second return value reports whether the appended bytes are compressed.
func (z *ZstdCompression) Compress(dst, data []byte) ([]byte, bool, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return dst, false, errClosed
	}

	if len(data) < minCompressSize {
		return append(dst, data...), false, nil
	}

	start := len(dst)
	out := z.encoder.EncodeAll(data, dst)
	if len(out)-start < len(data) {
		return out, true, nil
	}

	return append(out[:start], data...), false, nil
}

// Decompress appends the restored form of data to dst.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - Decompression fails for any other reason
func (z *ZstdCompression) Decompress(dst, data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return dst, errClosed
	}

	decompressed, err := z.decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.ErrorCodec, "zstd decode", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases all resources used by the compression instance.
// After closing, the instance cannot be used for compression or decompression.
// Closing twice is a no-op.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closed {
		return nil
	}
	z.closed = true

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
