package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
)

// Returns CompressionOptions struct initialized with
// recommended default values that provide a good balance between compression ratio
// and performance for most use cases.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Enable:             true,
		Level:              DefaultLevel,
		EncoderConcurrency: cpuCount(),
		DecoderConcurrency: cpuCount(),
	}
}

// Checks if the compression options are valid and returns an error if any option
// is outside acceptable bounds. It ensures Level and concurrency settings are within
// their allowed ranges and handles default values appropriately.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}

	if input.EncoderConcurrency > cpuCount() {
		return fmt.Errorf(
			"encoder concurrency must be between 0 and %d, got %d", cpuCount(), input.EncoderConcurrency,
		)
	}

	if input.DecoderConcurrency > cpuCount() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", cpuCount(), input.DecoderConcurrency,
		)
	}

	return nil
}

func cpuCount() uint8 {
	n := runtime.NumCPU()
	if n > 255 {
		return 255
	}
	return uint8(n)
}
