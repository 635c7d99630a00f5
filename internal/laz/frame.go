package laz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/iamNilotpal/lazrs/internal/adapters/checksum"
	"github.com/iamNilotpal/lazrs/internal/core/ports"
	"github.com/iamNilotpal/lazrs/pkg/pool"
)

// Chunk frame layout, little endian:
//
//	count    u32  points in the chunk
//	length   u32  payload bytes
//	method   u8   0 stored, 1 zstd
//	sumID    u8   checksum algorithm of the payload, 0 for none
//	sum      u64  checksum of the payload
//	payload
const (
	frameHeaderSize = 18

	methodStored uint8 = 0
	methodZstd   uint8 = 1

	maxFramePayload = 1 << 30
)

type frameHeader struct {
	count  uint32
	length uint32
	method uint8
	sumID  uint8
	sum    uint64
}

func (h frameHeader) put(dst []byte) {
	le := binary.LittleEndian
	le.PutUint32(dst[0:], h.count)
	le.PutUint32(dst[4:], h.length)
	dst[8] = h.method
	dst[9] = h.sumID
	le.PutUint64(dst[10:], h.sum)
}

func parseFrameHeader(src []byte) frameHeader {
	le := binary.LittleEndian
	return frameHeader{
		count:  le.Uint32(src[0:]),
		length: le.Uint32(src[4:]),
		method: src[8],
		sumID:  src[9],
		sum:    le.Uint64(src[10:]),
	}
}

// chunkCoder turns chunks of raw records into frames and back. It holds no
// per-chunk state and is shared by all workers of a session.
type chunkCoder struct {
	recordSize  int
	compression ports.CompressionPort
	checksum    ports.ChecksumPort
	checksumID  uint8
	buffers     *pool.Buffers
}

func newChunkCoder(recordSize int, opts *Options) *chunkCoder {
	c := &chunkCoder{
		recordSize:  recordSize,
		compression: opts.Compression,
		buffers:     pool.NewBuffers(recordSize * int(min(opts.chunkSize(), 1<<16))),
	}
	if opts.Checksum != nil && opts.Checksum.Enable {
		c.checksum = checksum.NewCheckSummer(opts.Checksum.Algorithm)
		c.checksumID = checksum.ID(opts.Checksum.Algorithm)
	}
	return c
}

// encode returns the frame of a chunk of whole records.
func (c *chunkCoder) encode(records []byte) ([]byte, error) {
	count := len(records) / c.recordSize

	buf := c.buffers.Get(len(records))
	defer c.buffers.Put(buf)

	residuals := pool.Scratch(buf, len(records))
	predict(residuals, records, c.recordSize)

	frame := make([]byte, frameHeaderSize, frameHeaderSize+len(records))
	method := methodStored

	if c.compression != nil {
		out, compressed, err := c.compression.Compress(frame, residuals)
		if err != nil {
			return nil, errorf(KindOther, "encode chunk", "entropy stage: %w", err)
		}
		frame = out
		if compressed {
			method = methodZstd
		}
	} else {
		frame = append(frame, residuals...)
	}

	payload := frame[frameHeaderSize:]
	header := frameHeader{count: uint32(count), length: uint32(len(payload)), method: method}
	if c.checksum != nil {
		header.sumID = c.checksumID
		header.sum = c.checksum.Calculate(payload)
	}
	header.put(frame)

	return frame, nil
}

// decode restores the records of a frame payload.
func (c *chunkCoder) decode(header frameHeader, payload []byte) ([]byte, error) {
	const op = "decode chunk"

	if header.sumID != checksum.IDNone {
		sum, ok := checksum.FromID(header.sumID)
		if !ok {
			return nil, errorf(KindIo, op, "unknown checksum id %d", header.sumID)
		}
		if !sum.Verify(payload, header.sum) {
			return nil, errorf(KindIo, op, "%s mismatch", sum.Name())
		}
	}

	want := int(header.count) * c.recordSize
	var residuals []byte

	switch header.method {
	case methodStored:
		residuals = make([]byte, len(payload))
		copy(residuals, payload)
	case methodZstd:
		if c.compression == nil {
			return nil, errorf(KindOther, op, "compressed chunk without an entropy stage")
		}
		out, err := c.compression.Decompress(make([]byte, 0, want), payload)
		if err != nil {
			return nil, newError(KindIo, op, err)
		}
		residuals = out
	default:
		return nil, errorf(KindIo, op, "unknown chunk method %d", header.method)
	}

	if len(residuals) != want {
		return nil, errorf(KindIo, op, "chunk holds %d bytes, %d points need %d", len(residuals), header.count, want)
	}

	unpredict(residuals, c.recordSize)
	return residuals, nil
}

// readFrame reads the next frame from r. maxPayload bounds the payload
// length when the caller knows where the frame ends and is negative
// otherwise. The payload buffer grows with the bytes actually read, so a
// corrupt length cannot force a large allocation.
func readFrame(r io.Reader, maxPayload int64) (frameHeader, []byte, error) {
	var raw [frameHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return frameHeader{}, nil, ioError("read chunk header", err)
	}

	header := parseFrameHeader(raw[:])
	if header.length > maxFramePayload || (maxPayload >= 0 && int64(header.length) > maxPayload) {
		return frameHeader{}, nil, errorf(KindIo, "read chunk header", "payload of %d bytes", header.length)
	}

	var payload bytes.Buffer
	if maxPayload >= 0 {
		payload.Grow(int(header.length))
	}
	if n, err := io.CopyN(&payload, r, int64(header.length)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return frameHeader{}, nil, ioError("read chunk payload", fmt.Errorf("%d of %d bytes: %w", n, header.length, err))
	}

	return header, payload.Bytes(), nil
}

// predict stores the byte-wise difference of every record to the one before
// it; the first record is compared to zeros.
func predict(dst, records []byte, recordSize int) {
	for i := range records {
		if i < recordSize {
			dst[i] = records[i]
			continue
		}
		dst[i] = records[i] - records[i-recordSize]
	}
}

// unpredict reverses predict in place.
func unpredict(buf []byte, recordSize int) {
	for i := recordSize; i < len(buf); i++ {
		buf[i] += buf[i-recordSize]
	}
}
