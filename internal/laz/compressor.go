package laz

import (
	"encoding/binary"
	"io"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/pkg/sizing"
)

// Compressor writes points to a destination in chunks. With one chunk per
// batch it is the sequential flavour; NewParallelCompressor buffers several
// chunks and encodes them concurrently.
//
// The stream begins with the absolute offset of the chunk table, which is
// patched in by Done.
type Compressor struct {
	vlr   *LazVlr
	dst   ports.Destination
	coder *chunkCoder

	chunkSize      int
	chunksPerBatch int
	workers        int

	pending       []byte // raw records not yet encoded
	entries       []chunkEntry
	tableOffsetAt int64
	started       bool
	done          bool

	// err is the first encode or write failure. Part of a batch may already
	// be in the destination, so every later call returns it.
	err error
}

// NewCompressor returns a sequential compressor for the given record.
func NewCompressor(dst ports.Destination, vlr *LazVlr, opts *Options) (*Compressor, error) {
	return newCompressor(dst, vlr, orDefault(opts), 1, 1)
}

// NewParallelCompressor returns a compressor that encodes batches of chunks
// on a bounded pool of goroutines.
func NewParallelCompressor(dst ports.Destination, vlr *LazVlr, opts *Options) (*Compressor, error) {
	opts = orDefault(opts)
	return newCompressor(dst, vlr, opts, opts.workers(), opts.chunksPerBatch())
}

func newCompressor(dst ports.Destination, vlr *LazVlr, opts *Options, workers, chunksPerBatch int) (*Compressor, error) {
	if vlr.Compressor != CompressorPointWiseChunked && vlr.Compressor != CompressorLayeredChunked {
		return nil, errorf(KindUnsupportedCompressorType, "new compressor", "compressor %d", vlr.Compressor)
	}
	if vlr.ChunkSize == 0 || vlr.IsVariableChunked() {
		return nil, errorf(KindOther, "new compressor", "chunk size %d", vlr.ChunkSize)
	}

	recordSize := vlr.RecordSize()
	if recordSize == 0 {
		return nil, errorf(KindOther, "new compressor", "record has no items")
	}

	return &Compressor{
		vlr:            vlr,
		dst:            dst,
		coder:          newChunkCoder(recordSize, opts),
		chunkSize:      int(vlr.ChunkSize),
		chunksPerBatch: chunksPerBatch,
		workers:        workers,
	}, nil
}

// LazVlr returns the serialized configuration record of the stream.
func (c *Compressor) LazVlr() []byte {
	return c.vlr.Bytes()
}

// CompressOne appends one point.
func (c *Compressor) CompressOne(point []byte) error {
	if c.err != nil {
		return c.err
	}
	if len(point) != c.coder.recordSize {
		return errorf(KindOther, "compress one", "point is %d bytes, expected %d", len(point), c.coder.recordSize)
	}
	return c.CompressMany(point)
}

// CompressMany appends a whole number of points.
func (c *Compressor) CompressMany(points []byte) error {
	const op = "compress many"

	if c.err != nil {
		return c.err
	}
	if c.done {
		return newError(KindOther, op, errFinished)
	}
	if !sizing.MultipleOf(len(points), c.coder.recordSize) {
		return newError(KindOther, op, errRecordSize)
	}
	if err := c.start(); err != nil {
		return c.fail(err)
	}

	batchBytes := c.chunkSize * c.chunksPerBatch * c.coder.recordSize
	for len(points) > 0 {
		n := min(batchBytes-len(c.pending), len(points))
		c.pending = append(c.pending, points[:n]...)
		points = points[n:]

		if len(c.pending) == batchBytes {
			if err := c.flushPending(); err != nil {
				return c.fail(err)
			}
		}
	}

	return nil
}

// Done encodes the buffered points, writes the chunk table and records its
// offset at the start of the stream. Later calls do nothing, unless a
// previous call failed, in which case they return that failure.
func (c *Compressor) Done() error {
	if c.err != nil {
		return c.err
	}
	if c.done {
		return nil
	}
	if err := c.finish(); err != nil {
		return c.fail(err)
	}

	c.done = true
	return nil
}

// fail records err as the terminal state of the compressor.
func (c *Compressor) fail(err error) error {
	c.err = err
	return err
}

func (c *Compressor) finish() error {
	const op = "done"

	if err := c.start(); err != nil {
		return err
	}
	if err := c.flushPending(); err != nil {
		return err
	}

	tableOffset, err := c.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return ioError(op, err)
	}
	if _, err := c.dst.Write(appendChunkTable(nil, c.entries)); err != nil {
		return ioError(op, err)
	}

	end, err := c.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return ioError(op, err)
	}
	if _, err := c.dst.Seek(c.tableOffsetAt, io.SeekStart); err != nil {
		return ioError(op, err)
	}
	if _, err := c.dst.Write(binary.LittleEndian.AppendUint64(nil, uint64(tableOffset))); err != nil {
		return ioError(op, err)
	}
	if _, err := c.dst.Seek(end, io.SeekStart); err != nil {
		return ioError(op, err)
	}
	if err := c.dst.Flush(); err != nil {
		return ioError(op, err)
	}
	return nil
}

// start writes the chunk table offset placeholder on first use.
func (c *Compressor) start() error {
	if c.started {
		return nil
	}

	pos, err := c.dst.Seek(0, io.SeekCurrent)
	if err != nil {
		return ioError("start", err)
	}
	var placeholder [8]byte
	binary.LittleEndian.PutUint64(placeholder[:], ^uint64(0))
	if _, err := c.dst.Write(placeholder[:]); err != nil {
		return ioError("start", err)
	}

	c.tableOffsetAt = pos
	c.started = true
	return nil
}

// flushPending encodes the buffered records, chunk by chunk, and writes the
// frames in order.
func (c *Compressor) flushPending() error {
	if len(c.pending) == 0 {
		return nil
	}

	chunkBytes := c.chunkSize * c.coder.recordSize
	var chunks [][]byte
	for rest := c.pending; len(rest) > 0; {
		n := min(chunkBytes, len(rest))
		chunks = append(chunks, rest[:n])
		rest = rest[n:]
	}

	frames, err := encodeChunks(c.coder, chunks, c.workers)
	if err != nil {
		return err
	}

	for i, frame := range frames {
		if _, err := c.dst.Write(frame); err != nil {
			return ioError("write chunk", err)
		}
		c.entries = append(c.entries, chunkEntry{
			points: uint64(len(chunks[i]) / c.coder.recordSize),
			bytes:  uint64(len(frame)),
		})
	}

	c.pending = c.pending[:0]
	return nil
}
