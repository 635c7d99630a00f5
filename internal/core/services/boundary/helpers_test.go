package boundary

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/lazrs/internal/adapters/stream"
	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/internal/core/services/session"
)

func newTestAPI(t *testing.T, opts *domain.CodecOptions) *API {
	t.Helper()

	api, err := New(opts, nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, api.Close()) })
	return api
}

func smallChunks() *domain.CodecOptions {
	return &domain.CodecOptions{ChunkSize: 8, Workers: 3, ChunksPerBatch: 2}
}

// memoryCallbacks is a custom source and destination over a growable slice.
type memoryCallbacks struct {
	ctx       *byte
	data      []byte
	pos       int64
	seekCode  int
	seekCalls int
	tellCalls int
	writes    int
	failWrite int // 1-based index of the write that reports zero bytes
}

func newMemoryCallbacks(data []byte) *memoryCallbacks {
	return &memoryCallbacks{ctx: new(byte), data: data}
}

func (m *memoryCallbacks) UserData() unsafe.Pointer {
	if m.ctx == nil {
		return nil
	}
	return unsafe.Pointer(m.ctx)
}

func (m *memoryCallbacks) Read(_ unsafe.Pointer, p []byte) uint64 {
	if m.pos >= int64(len(m.data)) {
		return 0
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return uint64(n)
}

func (m *memoryCallbacks) Write(_ unsafe.Pointer, p []byte) uint64 {
	m.writes++
	if m.writes == m.failWrite {
		return 0
	}
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return uint64(len(p))
}

func (m *memoryCallbacks) Flush(unsafe.Pointer) int { return 0 }

func (m *memoryCallbacks) Seek(_ unsafe.Pointer, offset int64, whence int) int {
	m.seekCalls++
	if m.seekCode != 0 {
		return m.seekCode
	}
	switch whence {
	case io.SeekStart:
		m.pos = offset
	case io.SeekCurrent:
		m.pos += offset
	case io.SeekEnd:
		m.pos = int64(len(m.data)) + offset
	}
	return 0
}

func (m *memoryCallbacks) Tell(unsafe.Pointer) uint64 {
	m.tellCalls++
	return uint64(m.pos)
}

func makePoints(n, recordSize int) []byte {
	points := make([]byte, n*recordSize)
	for i := range points {
		points[i] = byte(i*7 + i/recordSize)
	}
	return points
}

// compressToFile writes prefix and then points through a file destination
// and returns the file contents and the configuration record.
func compressToFile(t *testing.T, api *API, format uint8, points []byte, flavor domain.Flavor, prefix []byte) ([]byte, []byte) {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "points.laz"))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write(prefix)
	require.NoError(t, err)

	h, res := api.NewCompressor(domain.CompressorParams{
		Destination:   domain.FileDestination{File: stream.NewOSFile(f)},
		PointFormatID: format,
		Flavor:        flavor,
	})
	require.Equal(t, domain.ResultOK, res)
	defer api.DeleteCompressor(h)

	require.Equal(t, domain.ResultOK, api.CompressMany(h, points))
	require.Equal(t, domain.ResultOK, api.Done(h))

	vlr := make([]byte, api.LazVlrSize(h))
	require.Equal(t, domain.ResultOK, api.LazVlrData(h, vlr))

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return data, vlr
}

func decompressAll(t *testing.T, api *API, h session.Handle, n, recordSize int) []byte {
	t.Helper()

	out := make([]byte, n*recordSize)
	for i := 0; i < n; i++ {
		require.Equal(t, domain.ResultOK, api.DecompressOne(h, out[i*recordSize:(i+1)*recordSize]))
	}
	return out
}
