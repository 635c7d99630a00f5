package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
)

const recordSize = 20

func makePoints(n int) []byte {
	points := make([]byte, n*recordSize)
	for i := range points {
		points[i] = byte(i*7 + i/recordSize)
	}
	return points
}

// compressToFile writes points in point format 0 through a FILE* destination
// and returns the file path and the LASzip VLR.
func compressToFile(t *testing.T, points []byte) (string, []byte) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "points.laz")
	fp, err := openCFile(path, "w+b")
	require.NoError(t, err)

	c, res := newCompressor(fileDestinationParams(fp, 0, 0), false)
	require.Equal(t, domain.ResultOK, res)
	require.NotNil(t, c)

	data, n := cBytes(points)
	require.Equal(t, domain.ResultOK, goResult(lazrs_compressor_compress_many(c, data, n)))
	require.Equal(t, domain.ResultOK, goResult(lazrs_compressor_done(c)))

	vlr := make([]byte, lazrs_compressor_laszip_vlr_size(c))
	require.NotEmpty(t, vlr)
	out, size := cBytes(vlr)
	require.Equal(t, domain.ResultOK, goResult(lazrs_compressor_laszip_vlr_data(c, out, size)))

	lazrs_compressor_delete(c)
	require.NoError(t, closeCFile(fp))
	return path, vlr
}

func TestRoundTrip_AllSources(t *testing.T) {
	t.Parallel()

	points := makePoints(10)
	path, vlr := compressToFile(t, points)
	compressed, err := os.ReadFile(path)
	require.NoError(t, err)

	t.Run("buffer", func(t *testing.T) {
		out := make([]byte, len(points))
		ptr, n := cBytes(out)

		d, res := newDecompressor(bufferSourceParams(compressed, vlr), false)
		require.Equal(t, domain.ResultOK, res)
		defer lazrs_decompressor_delete(d)

		require.Equal(t, domain.ResultOK, goResult(lazrs_decompressor_decompress_many(d, ptr, n)))
		assert.Equal(t, points, out)
	})

	t.Run("path parallel", func(t *testing.T) {
		out := make([]byte, len(points))
		ptr, n := cBytes(out)

		d, res := newDecompressor(pathSourceParams(path, vlr), true)
		require.Equal(t, domain.ResultOK, res)
		defer lazrs_decompressor_delete(d)

		require.Equal(t, domain.ResultOK, goResult(lazrs_decompressor_decompress_many(d, ptr, n)))
		assert.Equal(t, points, out)
	})

	t.Run("file", func(t *testing.T) {
		fp, err := openCFile(path, "rb")
		require.NoError(t, err)
		defer func() { assert.NoError(t, closeCFile(fp)) }()

		out := make([]byte, recordSize)
		ptr, n := cBytes(out)

		d, res := newDecompressor(fileSourceParams(fp, vlr), false)
		require.Equal(t, domain.ResultOK, res)
		defer lazrs_decompressor_delete(d)

		for i := 0; i < len(points)/recordSize; i++ {
			require.Equal(t, domain.ResultOK, goResult(lazrs_decompressor_decompress_one(d, ptr, n)))
			assert.Equal(t, points[i*recordSize:(i+1)*recordSize], out)
		}
	})
}

func TestDecompressorNew_Rejected(t *testing.T) {
	t.Parallel()

	_, vlr := compressToFile(t, makePoints(1))

	t.Run("null out pointer", func(t *testing.T) {
		assert.Equal(t, domain.ResultOther, goResult(lazrs_decompressor_new(bufferSourceParams(nil, vlr), false, nil)))
	})

	t.Run("null FILE", func(t *testing.T) {
		d, res := newDecompressor(fileSourceParams(nil, vlr), false)
		assert.Equal(t, domain.ResultOther, res)
		assert.Nil(t, d)
	})

	t.Run("unknown source type", func(t *testing.T) {
		d, res := newDecompressor(unknownSourceParams(vlr), false)
		assert.Equal(t, domain.ResultOther, res)
		assert.Nil(t, d)
	})

	t.Run("custom source without callbacks", func(t *testing.T) {
		d, res := newDecompressor(customSourceParams(vlr), false)
		assert.Equal(t, domain.ResultOther, res)
		assert.Nil(t, d)
	})

	t.Run("missing path", func(t *testing.T) {
		d, res := newDecompressor(pathSourceParams(filepath.Join(t.TempDir(), "absent.laz"), vlr), false)
		assert.Equal(t, domain.ResultIOError, res)
		assert.Nil(t, d)
	})
}

func TestCompressorNew_Rejected(t *testing.T) {
	t.Parallel()

	t.Run("null out pointer", func(t *testing.T) {
		assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_new_for_point_format(customDestinationParams(0), false, nil)))
	})

	t.Run("null FILE", func(t *testing.T) {
		c, res := newCompressor(fileDestinationParams(nil, 0, 0), false)
		assert.Equal(t, domain.ResultOther, res)
		assert.Nil(t, c)
	})

	t.Run("point format", func(t *testing.T) {
		c, res := newCompressor(customDestinationParams(42), false)
		assert.Equal(t, domain.ResultUnsupportedPointFormat, res)
		assert.Nil(t, c)
	})
}

func TestCustomDestinationWithoutCallbacks(t *testing.T) {
	t.Parallel()

	c, res := newCompressor(customDestinationParams(0), false)
	require.Equal(t, domain.ResultOK, res)
	defer lazrs_compressor_delete(c)

	data, n := cBytes(makePoints(1))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_compress_many(c, data, n)))
}

func TestUnknownAndWrongKindTokens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "points.laz")
	fp, err := openCFile(path, "w+b")
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeCFile(fp)) }()

	c, res := newCompressor(fileDestinationParams(fp, 0, 0), false)
	require.Equal(t, domain.ResultOK, res)
	defer lazrs_compressor_delete(c)

	out := make([]byte, recordSize)
	ptr, n := cBytes(out)

	assert.Equal(t, domain.ResultOther, goResult(lazrs_decompressor_decompress_one(asDecompressor(c), ptr, n)))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_decompressor_decompress_many(asDecompressor(c), ptr, n)))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_decompressor_decompress_one(nil, ptr, n)))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_compress_one(nil, ptr, n)))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_done(nil)))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_laszip_vlr_data(nil, ptr, n)))
	assert.Zero(t, lazrs_compressor_laszip_vlr_size(nil))

	// A wrong-kind delete leaves the compressor usable.
	lazrs_decompressor_delete(asDecompressor(c))
	assert.NotZero(t, lazrs_compressor_laszip_vlr_size(c))
}

// Sequential: a freed token address may be reissued to a concurrent test.
func TestDelete_IsNoOpForNilAndRepeat(t *testing.T) {
	assert.NotPanics(t, func() {
		lazrs_decompressor_delete(nil)
		lazrs_compressor_delete(nil)
	})

	c, res := newCompressor(customDestinationParams(0), false)
	require.Equal(t, domain.ResultOK, res)

	assert.NotPanics(t, func() {
		lazrs_compressor_delete(c)
		lazrs_compressor_delete(c)
	})
	assert.Equal(t, domain.ResultOther, goResult(lazrs_compressor_done(c)))
}

func TestBytesOf(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3, 4}
	ptr, n := cBytes(buf)

	assert.Nil(t, bytesOf(nil, 0))
	assert.Nil(t, bytesOf(ptr, 0))

	view := bytesOf(ptr, n)
	require.Len(t, view, len(buf))
	view[0] = 9
	assert.Equal(t, byte(9), buf[0])

	assert.PanicsWithValue(t, errNullBuffer, func() { bytesOf(nil, n) })
	assert.PanicsWithValue(t, errBufferSize, func() { bytesOf(ptr, ^n) })
}

func TestContain_ArgumentPanicsBecomeOther(t *testing.T) {
	t.Parallel()

	points := makePoints(2)
	path, vlr := compressToFile(t, points)

	d, res := newDecompressor(pathSourceParams(path, vlr), false)
	require.Equal(t, domain.ResultOK, res)
	defer lazrs_decompressor_delete(d)

	_, n := cBytes(make([]byte, recordSize))
	assert.Equal(t, domain.ResultOther, goResult(lazrs_decompressor_decompress_many(d, nil, n)))

	// The session is untouched by the rejected call.
	out := make([]byte, len(points))
	ptr, size := cBytes(out)
	require.Equal(t, domain.ResultOK, goResult(lazrs_decompressor_decompress_many(d, ptr, size)))
	assert.Equal(t, points, out)
}

func TestResultName(t *testing.T) {
	t.Parallel()

	for r := domain.ResultOK; r <= domain.ResultOther; r++ {
		assert.Equal(t, r.String(), resultName(uint32(r)))
	}
	assert.Equal(t, "LAZRS_IO_ERROR", resultName(uint32(domain.ResultIOError)))
	assert.Equal(t, "LAZRS_UNKNOWN_RESULT", resultName(uint32(domain.ResultOther)+1))
	assert.Equal(t, "LAZRS_UNKNOWN_RESULT", resultName(99))
	assert.Equal(t, "LAZRS_UNKNOWN_RESULT", resultName(256))
}

func TestFprintResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "result.txt")
	fp, err := openCFile(path, "wb")
	require.NoError(t, err)

	lazrs_fprint_result(cResult(domain.ResultIOError), fp)
	lazrs_fprint_result(cResult(domain.ResultOK), fp)
	require.NoError(t, closeCFile(fp))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "LAZRS_IO_ERROR\nLAZRS_OK\n", string(got))

	assert.NotPanics(t, func() { lazrs_fprint_result(cResult(domain.ResultOK), nil) })
}
