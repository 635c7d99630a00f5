package laz

import (
	"encoding/binary"
	"io"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/pkg/sizing"
)

// Decompressor reads points back from a stream written by Compressor. The
// sequential flavour walks the frames one by one; the parallel flavour needs
// the chunk table and decodes several chunks at once.
type Decompressor struct {
	vlr   *LazVlr
	src   ports.Source
	coder *chunkCoder

	parallel bool
	workers  int

	pos         int64 // stream position of the next frame
	tableOffset int64 // -1 when the stream has no chunk table
	entries     []chunkEntry
	nextChunk   int

	current []byte // decoded records not yet handed out
}

// NewDecompressor returns a sequential decompressor reading from the
// current position of src.
func NewDecompressor(src ports.Source, vlr *LazVlr, opts *Options) (*Decompressor, error) {
	return newDecompressor(src, vlr, orDefault(opts), false)
}

// NewParallelDecompressor returns a decompressor that decodes chunks on a
// bounded pool of goroutines. It fails with KindMissingChunkTable when the
// stream has no chunk table.
func NewParallelDecompressor(src ports.Source, vlr *LazVlr, opts *Options) (*Decompressor, error) {
	return newDecompressor(src, vlr, orDefault(opts), true)
}

func newDecompressor(src ports.Source, vlr *LazVlr, opts *Options, parallel bool) (*Decompressor, error) {
	const op = "new decompressor"

	if err := vlr.checkDecompressible(); err != nil {
		return nil, err
	}

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioError(op, err)
	}

	var raw [8]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		return nil, ioError(op, err)
	}

	d := &Decompressor{
		vlr:         vlr,
		src:         src,
		coder:       newChunkCoder(vlr.RecordSize(), opts),
		parallel:    parallel,
		workers:     opts.workers(),
		pos:         start + 8,
		tableOffset: int64(binary.LittleEndian.Uint64(raw[:])),
	}

	if d.tableOffset < 0 {
		d.tableOffset = -1
		if parallel {
			return nil, errorf(KindMissingChunkTable, op, "stream has no chunk table")
		}
		return d, nil
	}

	if parallel {
		if err := d.loadChunkTable(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Decompressor) loadChunkTable() error {
	const op = "load chunk table"

	if d.tableOffset < d.pos {
		return errorf(KindIo, op, "chunk table offset %d precedes the first chunk", d.tableOffset)
	}
	if _, err := d.src.Seek(d.tableOffset, io.SeekStart); err != nil {
		return ioError(op, err)
	}

	entries, err := readChunkTable(d.src)
	if err != nil {
		return err
	}
	if _, err := d.src.Seek(d.pos, io.SeekStart); err != nil {
		return ioError(op, err)
	}

	d.entries = entries
	return nil
}

// RecordSize returns the number of bytes of one point.
func (d *Decompressor) RecordSize() int {
	return d.coder.recordSize
}

// DecompressOne fills out with the next point.
func (d *Decompressor) DecompressOne(out []byte) error {
	if len(out) != d.coder.recordSize {
		return errorf(KindOther, "decompress one", "buffer is %d bytes, expected %d", len(out), d.coder.recordSize)
	}
	return d.DecompressMany(out)
}

// DecompressMany fills out with the next len(out)/RecordSize points.
func (d *Decompressor) DecompressMany(out []byte) error {
	if !sizing.MultipleOf(len(out), d.coder.recordSize) {
		return newError(KindOther, "decompress many", errRecordSize)
	}

	n := copy(out, d.current)
	d.current = d.current[n:]
	out = out[n:]

	if d.parallel {
		return d.fillParallel(out)
	}

	for len(out) > 0 {
		if err := d.readNextChunk(); err != nil {
			return err
		}
		n := copy(out, d.current)
		d.current = d.current[n:]
		out = out[n:]
	}
	return nil
}

// readNextChunk decodes the frame at the current position.
func (d *Decompressor) readNextChunk() error {
	if d.tableOffset >= 0 && d.pos >= d.tableOffset {
		return ioError("decompress", errNoMorePoint)
	}

	limit := int64(-1)
	if d.tableOffset >= 0 {
		limit = max(d.tableOffset-d.pos-frameHeaderSize, 0)
	}

	header, payload, err := readFrame(d.src, limit)
	if err != nil {
		return err
	}
	if err := d.advance(frameHeaderSize + int64(len(payload))); err != nil {
		return err
	}

	records, err := d.coder.decode(header, payload)
	if err != nil {
		return err
	}
	d.current = records
	return nil
}

// advance moves the frame cursor past n bytes.
func (d *Decompressor) advance(n int64) error {
	pos, ok := sizing.AddInt64(d.pos, n)
	if !ok {
		return errorf(KindIo, "decompress", "stream position %d overflows by %d bytes", d.pos, n)
	}
	d.pos = pos
	return nil
}

// fillParallel reads as many frames as out needs and decodes them together.
func (d *Decompressor) fillParallel(out []byte) error {
	if len(out) == 0 {
		return nil
	}

	needed := uint64(len(out) / d.coder.recordSize)
	var frames []rawFrame
	for covered := uint64(0); covered < needed; {
		if d.nextChunk >= len(d.entries) {
			return ioError("decompress", errNoMorePoint)
		}
		entry := d.entries[d.nextChunk]

		if entry.bytes < frameHeaderSize || entry.bytes > frameHeaderSize+maxFramePayload {
			return errorf(KindIo, "decompress", "chunk %d has a table size of %d bytes", d.nextChunk, entry.bytes)
		}

		header, payload, err := readFrame(d.src, int64(entry.bytes)-frameHeaderSize)
		if err != nil {
			return err
		}
		if uint64(header.count) != entry.points || uint64(frameHeaderSize+len(payload)) != entry.bytes {
			return errorf(KindIo, "decompress", "chunk %d does not match the chunk table", d.nextChunk)
		}

		d.nextChunk++
		if err := d.advance(int64(entry.bytes)); err != nil {
			return err
		}
		frames = append(frames, rawFrame{header: header, payload: payload})
		covered += entry.points
	}

	chunks, err := decodeFrames(d.coder, frames, d.workers)
	if err != nil {
		return err
	}

	for _, records := range chunks {
		n := copy(out, records)
		out = out[n:]
		d.current = records[n:]
	}
	return nil
}
