package laz

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/lazrs/internal/adapters/checksum"
	"github.com/iamNilotpal/lazrs/internal/adapters/compression"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
)

// growBuffer is a growable in-memory destination and source.
type growBuffer struct {
	data    []byte
	pos     int64
	flushes int
}

func (b *growBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		b.data = append(b.data, make([]byte, end-int64(len(b.data)))...)
	}
	copy(b.data[b.pos:], p)
	b.pos = end
	return len(p), nil
}

func (b *growBuffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *growBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		b.pos = offset
	case io.SeekCurrent:
		b.pos += offset
	case io.SeekEnd:
		b.pos = int64(len(b.data)) + offset
	}
	return b.pos, nil
}

func (b *growBuffer) Flush() error {
	b.flushes++
	return nil
}

func zstdOptions(t *testing.T, chunkSize uint32, workers int) *Options {
	t.Helper()

	z, err := compression.NewZstdCompression(compression.Options{
		Level:              compression.DefaultLevel,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = z.Close() })

	return &Options{
		ChunkSize:      chunkSize,
		Workers:        workers,
		ChunksPerBatch: 3,
		Compression:    z,
		Checksum:       &domain.ChecksumOptions{Enable: true, Algorithm: checksum.CRC64ECMA},
	}
}

// makePoints returns n records of recordSize bytes with slowly varying content.
func makePoints(n, recordSize int) []byte {
	points := make([]byte, n*recordSize)
	for i := 0; i < n; i++ {
		for j := 0; j < recordSize; j++ {
			points[i*recordSize+j] = byte(i*3 + j*j)
		}
	}
	return points
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()

	require.Error(t, err)
	got, ok := KindOf(err)
	require.True(t, ok, "not an engine error: %v", err)
	require.Equal(t, kind, got, "error: %v", err)
}

var errTransient = errors.New("transient")

// flakyDestination fails exactly one write, the failAt-th, and accepts the rest.
type flakyDestination struct {
	growBuffer
	writes int
	failAt int
}

func (f *flakyDestination) Write(p []byte) (int, error) {
	f.writes++
	if f.writes == f.failAt {
		return 0, errTransient
	}
	return f.growBuffer.Write(p)
}
