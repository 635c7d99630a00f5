package main

/*
#include <stdio.h>
#include <stdlib.h>
#include "lazrs_types.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/iamNilotpal/lazrs/internal/core/domain"
)

// Builders for the C parameter structs so Go code, the package tests
// included, can drive the exported functions without writing cgo itself.

var errCloseFile = errors.New("fclose failed")

func cBuffer(b []byte) C.Lazrs_Buffer {
	if len(b) == 0 {
		return C.Lazrs_Buffer{}
	}
	return C.Lazrs_Buffer{
		data: (*C.uint8_t)(unsafe.Pointer(unsafe.SliceData(b))),
		len:  C.size_t(len(b)),
	}
}

// cBytes returns the pointer and length arguments for b.
func cBytes(b []byte) (*C.uint8_t, C.size_t) {
	buf := cBuffer(b)
	return buf.data, buf.len
}

func bufferSourceParams(data, vlr []byte) C.Lazrs_DecompressorParams {
	var p C.Lazrs_DecompressorParams
	p.source_type = C.Lazrs_SourceType(C.LAZRS_SOURCE_BUFFER)
	*(*C.Lazrs_Buffer)(unsafe.Pointer(&p.source)) = cBuffer(data)
	p.laszip_vlr = cBuffer(vlr)
	return p
}

func pathSourceParams(path string, vlr []byte) C.Lazrs_DecompressorParams {
	p := bufferSourceParams([]byte(path), vlr)
	p.source_type = C.Lazrs_SourceType(C.LAZRS_SOURCE_FNAME)
	return p
}

func fileSourceParams(fp *C.FILE, vlr []byte) C.Lazrs_DecompressorParams {
	var p C.Lazrs_DecompressorParams
	p.source_type = C.Lazrs_SourceType(C.LAZRS_SOURCE_CFILE)
	*(**C.FILE)(unsafe.Pointer(&p.source)) = fp
	p.laszip_vlr = cBuffer(vlr)
	return p
}

// customSourceParams leaves every callback and the user data null.
func customSourceParams(vlr []byte) C.Lazrs_DecompressorParams {
	var p C.Lazrs_DecompressorParams
	p.source_type = C.Lazrs_SourceType(C.LAZRS_SOURCE_CUSTOM)
	p.laszip_vlr = cBuffer(vlr)
	return p
}

func unknownSourceParams(vlr []byte) C.Lazrs_DecompressorParams {
	var p C.Lazrs_DecompressorParams
	p.source_type = C.Lazrs_SourceType(C.LAZRS_SOURCE_CUSTOM + 1)
	p.laszip_vlr = cBuffer(vlr)
	return p
}

func fileDestinationParams(fp *C.FILE, pointFormat uint8, extraBytes uint16) C.Lazrs_CompressorParams {
	var p C.Lazrs_CompressorParams
	p.dest_type = C.Lazrs_DestType(C.LAZRS_DEST_CFILE)
	*(**C.FILE)(unsafe.Pointer(&p.dest)) = fp
	p.point_format_id = C.uint8_t(pointFormat)
	p.num_extra_bytes = C.uint16_t(extraBytes)
	return p
}

// customDestinationParams leaves every callback and the user data null.
func customDestinationParams(pointFormat uint8) C.Lazrs_CompressorParams {
	var p C.Lazrs_CompressorParams
	p.dest_type = C.Lazrs_DestType(C.LAZRS_DEST_CUSTOM)
	p.point_format_id = C.uint8_t(pointFormat)
	return p
}

func newDecompressor(params C.Lazrs_DecompressorParams, parallel bool) (*C.Lazrs_LasZipDecompressor, domain.Result) {
	var d *C.Lazrs_LasZipDecompressor
	res := lazrs_decompressor_new(params, C.bool(parallel), &d)
	return d, goResult(res)
}

func newCompressor(params C.Lazrs_CompressorParams, parallel bool) (*C.Lazrs_LasZipCompressor, domain.Result) {
	var c *C.Lazrs_LasZipCompressor
	res := lazrs_compressor_new_for_point_format(params, C.bool(parallel), &c)
	return c, goResult(res)
}

// asDecompressor reinterprets a compressor token. The token tables keep the
// two kinds apart, so the result is never a live decompressor.
func asDecompressor(c *C.Lazrs_LasZipCompressor) *C.Lazrs_LasZipDecompressor {
	return (*C.Lazrs_LasZipDecompressor)(unsafe.Pointer(c))
}

func goResult(r C.Lazrs_Result) domain.Result {
	return domain.Result(r)
}

func resultName(r uint32) string {
	return C.GoString(lazrs_result_name(C.Lazrs_Result(r)))
}

func openCFile(path, mode string) (*C.FILE, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cmode := C.CString(mode)
	defer C.free(unsafe.Pointer(cmode))

	fp, err := C.fopen(cpath, cmode)
	if fp == nil {
		return nil, fmt.Errorf("fopen %q: %w", path, err)
	}
	return fp, nil
}

func closeCFile(fp *C.FILE) error {
	if C.fclose(fp) != 0 {
		return errCloseFile
	}
	return nil
}
