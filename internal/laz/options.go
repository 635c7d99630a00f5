package laz

import (
	"runtime"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

// Options tunes an engine instance. The zero value codes chunks without an
// entropy stage or checksum, one chunk at a time.
type Options struct {
	// ChunkSize overrides the points per chunk of new streams.
	ChunkSize uint32

	// Workers bounds the goroutines of parallel sessions. Zero means one per CPU.
	Workers int

	// ChunksPerBatch is the number of chunks a parallel compressor buffers
	// before encoding them together. Zero means two per worker.
	ChunksPerBatch int

	// Compression is the entropy stage. It must be safe for concurrent use.
	Compression ports.CompressionPort

	// Checksum selects the frame checksum of new streams.
	Checksum *domain.ChecksumOptions
}

func (o *Options) chunkSize() uint32 {
	if o.ChunkSize == 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

func (o *Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o *Options) chunksPerBatch() int {
	if o.ChunksPerBatch <= 0 {
		return 2 * o.workers()
	}
	return o.ChunksPerBatch
}

func orDefault(opts *Options) *Options {
	if opts == nil {
		return &Options{}
	}
	return opts
}
