package main

/*
#include <stdio.h>
*/
import "C"

import (
	"io"
	"unsafe"

	"github.com/iamNilotpal/lazrs/internal/core/ports"
)

// cFile exposes a caller owned FILE* to the stream adapters. The library
// never closes it.
type cFile struct {
	fp *C.FILE
}

// stdioFile returns nil for a null FILE* so the source builder rejects it.
func stdioFile(fp *C.FILE) ports.StdioFile {
	if fp == nil {
		return nil
	}
	return cFile{fp: fp}
}

func (f cFile) Fread(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	return int(C.fread(unsafe.Pointer(&p[0]), 1, C.size_t(len(p)), f.fp))
}

func (f cFile) Fwrite(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	return int(C.fwrite(unsafe.Pointer(&p[0]), 1, C.size_t(len(p)), f.fp))
}

func (f cFile) Ferror() int {
	return int(C.ferror(f.fp))
}

func (f cFile) Fseek(offset int64, whence int) int {
	var origin C.int
	switch whence {
	case io.SeekStart:
		origin = C.SEEK_SET
	case io.SeekCurrent:
		origin = C.SEEK_CUR
	case io.SeekEnd:
		origin = C.SEEK_END
	default:
		return -1
	}
	return int(C.fseek(f.fp, C.long(offset), origin))
}

func (f cFile) Ftell() int64 {
	return int64(C.ftell(f.fp))
}

func (f cFile) Fflush() int {
	return int(C.fflush(f.fp))
}
