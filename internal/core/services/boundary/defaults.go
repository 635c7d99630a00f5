package boundary

import (
	"runtime"

	"github.com/iamNilotpal/lazrs/internal/adapters/checksum"
	"github.com/iamNilotpal/lazrs/internal/adapters/compression"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
)

const (
	DefaultChunkSize uint32 = 50_000
	MinChunkSize     uint32 = 1
	MaxChunkSize     uint32 = 1<<32 - 2 // the maximum marks variable sized chunks

	MaxWorkers = 256
)

func prepareDefaults(opts *domain.CodecOptions) *domain.CodecOptions {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	if opts.ChunksPerBatch == 0 {
		opts.ChunksPerBatch = 2 * opts.Workers
	}

	if opts.Checksum == nil {
		opts.Checksum = checksum.DefaultOptions()
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	}

	return opts
}
