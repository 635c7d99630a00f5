package boundary

import (
	"fmt"

	"github.com/iamNilotpal/lazrs/internal/adapters/checksum"
	"github.com/iamNilotpal/lazrs/internal/adapters/compression"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/pkg/errors"
)

func Validate(opts *domain.CodecOptions) error {
	if opts.ChunkSize != 0 && (opts.ChunkSize < MinChunkSize || opts.ChunkSize > MaxChunkSize) {
		return errors.NewValidationError(
			"chunkSize", opts.ChunkSize,
			fmt.Errorf("chunk size must be between %d and %d, got %d", MinChunkSize, MaxChunkSize, opts.ChunkSize),
		)
	}

	if opts.Workers < 0 || opts.Workers > MaxWorkers {
		return errors.NewValidationError(
			"workers", opts.Workers,
			fmt.Errorf("workers must be between 0 and %d, got %d", MaxWorkers, opts.Workers),
		)
	}

	if opts.ChunksPerBatch < 0 {
		return errors.NewValidationError(
			"chunksPerBatch", opts.ChunksPerBatch,
			fmt.Errorf("chunks per batch must not be negative, got %d", opts.ChunksPerBatch),
		)
	}

	if opts.Checksum != nil && opts.Checksum.Enable {
		if err := checksum.Validate(opts.Checksum); err != nil {
			return errors.NewValidationError("checksum", opts.Checksum.Algorithm, err)
		}
	}

	if opts.Compression != nil && opts.Compression.Enable {
		if err := compression.Validate(opts.Compression); err != nil {
			return errors.NewValidationError("compression", opts.Compression.Level, err)
		}
	}

	return nil
}
