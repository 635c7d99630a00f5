package main

/*
#include "lazrs_types.h"
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
	"github.com/iamNilotpal/lazrs/pkg/sizing"
)

var (
	errNullBuffer = errors.New("null buffer with a non-zero length")
	errBufferSize = errors.New("buffer length overflows int")
	errNoLibrary  = errors.New("library failed to initialise")
)

// resultNames holds one C string per result code for lazrs_result_name.
// They live for the life of the process.
var resultNames = func() map[domain.Result]*C.char {
	names := make(map[domain.Result]*C.char, int(domain.ResultOther)+2)
	for r := domain.ResultOK; r <= domain.ResultOther; r++ {
		names[r] = C.CString(r.String())
	}
	names[domain.ResultOther+1] = C.CString(domain.Result(domain.ResultOther + 1).String())
	return names
}()

var newline = C.CString("\n")

// contain turns a panic raised while converting C arguments into
// LAZRS_OTHER. Panics inside sessions are already contained by the API.
func contain(res *C.Lazrs_Result) {
	if r := recover(); r != nil {
		*res = cResult(domain.ResultOther)
	}
}

func cResult(r domain.Result) C.Lazrs_Result {
	return C.Lazrs_Result(r)
}

// bytesOf views caller memory without copying. The caller keeps ownership.
func bytesOf(data *C.uint8_t, n C.size_t) []byte {
	size, err := sizing.ToInt(uint64(n), errBufferSize)
	if err != nil {
		panic(err)
	}
	if size == 0 {
		return nil
	}
	if data == nil {
		panic(errNullBuffer)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), size)
}

func mustLibrary() {
	if library() == nil {
		panic(errNoLibrary)
	}
}

func decompressorSource(params *C.Lazrs_DecompressorParams) domain.Source {
	switch params.source_type {
	case C.LAZRS_SOURCE_BUFFER:
		buf := (*C.Lazrs_Buffer)(unsafe.Pointer(&params.source))
		return domain.BufferSource{Data: bytesOf(buf.data, buf.len)}
	case C.LAZRS_SOURCE_CFILE:
		fp := *(**C.FILE)(unsafe.Pointer(&params.source))
		return domain.FileSource{File: stdioFile(fp)}
	case C.LAZRS_SOURCE_FNAME:
		buf := (*C.Lazrs_Buffer)(unsafe.Pointer(&params.source))
		return domain.PathSource{Name: bytesOf(buf.data, buf.len)}
	case C.LAZRS_SOURCE_CUSTOM:
		custom := (*C.Lazrs_CustomSource)(unsafe.Pointer(&params.source))
		return domain.CustomSource{Callbacks: sourceCallbacks{c: *custom}}
	default:
		return nil
	}
}

func compressorDestination(params *C.Lazrs_CompressorParams) domain.Destination {
	switch params.dest_type {
	case C.LAZRS_DEST_CFILE:
		fp := *(**C.FILE)(unsafe.Pointer(&params.dest))
		return domain.FileDestination{File: stdioFile(fp)}
	case C.LAZRS_DEST_CUSTOM:
		custom := (*C.Lazrs_CustomDest)(unsafe.Pointer(&params.dest))
		return domain.CustomDestination{Callbacks: destinationCallbacks{c: *custom}}
	default:
		return nil
	}
}

//export lazrs_decompressor_new
func lazrs_decompressor_new(params C.Lazrs_DecompressorParams, preferParallel C.bool, decompressor **C.Lazrs_LasZipDecompressor) (res C.Lazrs_Result) {
	defer contain(&res)
	if decompressor == nil {
		return cResult(domain.ResultOther)
	}
	*decompressor = nil
	mustLibrary()

	h, r := library().NewDecompressor(domain.DecompressorParams{
		Source:       decompressorSource(&params),
		SourceOffset: uint64(params.source_offset),
		LazVlr:       bytesOf(params.laszip_vlr.data, params.laszip_vlr.len),
		Flavor:       domain.FlavorFor(bool(preferParallel)),
	})
	if r != domain.ResultOK {
		return cResult(r)
	}

	*decompressor = (*C.Lazrs_LasZipDecompressor)(decompressorTokens.issue(h))
	return cResult(domain.ResultOK)
}

//export lazrs_decompressor_decompress_one
func lazrs_decompressor_decompress_one(decompressor *C.Lazrs_LasZipDecompressor, out *C.uint8_t, n C.size_t) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := decompressorTokens.lookup(unsafe.Pointer(decompressor))
	return cResult(library().DecompressOne(h, bytesOf(out, n)))
}

//export lazrs_decompressor_decompress_many
func lazrs_decompressor_decompress_many(decompressor *C.Lazrs_LasZipDecompressor, out *C.uint8_t, n C.size_t) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := decompressorTokens.lookup(unsafe.Pointer(decompressor))
	return cResult(library().DecompressMany(h, bytesOf(out, n)))
}

//export lazrs_decompressor_delete
func lazrs_decompressor_delete(decompressor *C.Lazrs_LasZipDecompressor) {
	defer func() { _ = recover() }()
	h, ok := decompressorTokens.revoke(unsafe.Pointer(decompressor))
	if !ok || library() == nil {
		return
	}
	library().DeleteDecompressor(h)
}

//export lazrs_compressor_new_for_point_format
func lazrs_compressor_new_for_point_format(params C.Lazrs_CompressorParams, preferParallel C.bool, compressor **C.Lazrs_LasZipCompressor) (res C.Lazrs_Result) {
	defer contain(&res)
	if compressor == nil {
		return cResult(domain.ResultOther)
	}
	*compressor = nil
	mustLibrary()

	h, r := library().NewCompressor(domain.CompressorParams{
		Destination:   compressorDestination(&params),
		PointFormatID: uint8(params.point_format_id),
		NumExtraBytes: uint16(params.num_extra_bytes),
		Flavor:        domain.FlavorFor(bool(preferParallel)),
	})
	if r != domain.ResultOK {
		return cResult(r)
	}

	*compressor = (*C.Lazrs_LasZipCompressor)(compressorTokens.issue(h))
	return cResult(domain.ResultOK)
}

//export lazrs_compressor_compress_one
func lazrs_compressor_compress_one(compressor *C.Lazrs_LasZipCompressor, data *C.uint8_t, n C.size_t) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := compressorTokens.lookup(unsafe.Pointer(compressor))
	return cResult(library().CompressOne(h, bytesOf(data, n)))
}

//export lazrs_compressor_compress_many
func lazrs_compressor_compress_many(compressor *C.Lazrs_LasZipCompressor, data *C.uint8_t, n C.size_t) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := compressorTokens.lookup(unsafe.Pointer(compressor))
	return cResult(library().CompressMany(h, bytesOf(data, n)))
}

//export lazrs_compressor_done
func lazrs_compressor_done(compressor *C.Lazrs_LasZipCompressor) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := compressorTokens.lookup(unsafe.Pointer(compressor))
	return cResult(library().Done(h))
}

//export lazrs_compressor_delete
func lazrs_compressor_delete(compressor *C.Lazrs_LasZipCompressor) {
	defer func() { _ = recover() }()
	h, ok := compressorTokens.revoke(unsafe.Pointer(compressor))
	if !ok || library() == nil {
		return
	}
	library().DeleteCompressor(h)
}

//export lazrs_compressor_laszip_vlr_size
func lazrs_compressor_laszip_vlr_size(compressor *C.Lazrs_LasZipCompressor) (size C.uint16_t) {
	defer func() {
		if r := recover(); r != nil {
			size = 0
		}
	}()
	if library() == nil {
		return 0
	}
	h := compressorTokens.lookup(unsafe.Pointer(compressor))
	return C.uint16_t(library().LazVlrSize(h))
}

//export lazrs_compressor_laszip_vlr_data
func lazrs_compressor_laszip_vlr_data(compressor *C.Lazrs_LasZipCompressor, out *C.uint8_t, n C.size_t) (res C.Lazrs_Result) {
	defer contain(&res)
	mustLibrary()
	h := compressorTokens.lookup(unsafe.Pointer(compressor))
	return cResult(library().LazVlrData(h, bytesOf(out, n)))
}

//export lazrs_result_name
func lazrs_result_name(result C.Lazrs_Result) *C.char {
	if result > C.LAZRS_OTHER {
		return resultNames[domain.ResultOther+1]
	}
	return resultNames[domain.Result(result)]
}

//export lazrs_fprint_result
func lazrs_fprint_result(result C.Lazrs_Result, stream *C.FILE) {
	if stream == nil {
		return
	}
	C.lazrs_fputs(lazrs_result_name(result), stream)
	C.lazrs_fputs(newline, stream)
}
