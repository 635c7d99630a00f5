package main

/*
#include "lazrs_types.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

var (
	errNoReadFn  = errors.New("custom source has no read function")
	errNoWriteFn = errors.New("custom destination has no write function")
	errNoFlushFn = errors.New("custom destination has no flush function")
	errNoSeekFn  = errors.New("custom stream has no seek function")
	errNoTellFn  = errors.New("custom stream has no tell function")
)

// sourceCallbacks copies the caller's Lazrs_CustomSource so the session does
// not depend on the params struct outliving the constructor call.
type sourceCallbacks struct {
	c C.Lazrs_CustomSource
}

func (s sourceCallbacks) UserData() unsafe.Pointer {
	return s.c.user_data
}

func (s sourceCallbacks) Read(userData unsafe.Pointer, p []byte) uint64 {
	if s.c.read_fn == nil {
		panic(errNoReadFn)
	}
	if len(p) == 0 {
		return 0
	}
	return uint64(C.lazrs_call_read(s.c.read_fn, userData, C.uint64_t(len(p)), (*C.uint8_t)(unsafe.Pointer(&p[0]))))
}

func (s sourceCallbacks) Seek(userData unsafe.Pointer, offset int64, whence int) int {
	return callSeek(s.c.seek_fn, userData, offset, whence)
}

func (s sourceCallbacks) Tell(userData unsafe.Pointer) uint64 {
	return callTell(s.c.tell_fn, userData)
}

type destinationCallbacks struct {
	c C.Lazrs_CustomDest
}

func (d destinationCallbacks) UserData() unsafe.Pointer {
	return d.c.user_data
}

func (d destinationCallbacks) Write(userData unsafe.Pointer, p []byte) uint64 {
	if d.c.write_fn == nil {
		panic(errNoWriteFn)
	}
	if len(p) == 0 {
		return 0
	}
	return uint64(C.lazrs_call_write(d.c.write_fn, userData, (*C.uint8_t)(unsafe.Pointer(&p[0])), C.uint64_t(len(p))))
}

func (d destinationCallbacks) Flush(userData unsafe.Pointer) int {
	if d.c.flush_fn == nil {
		panic(errNoFlushFn)
	}
	return int(C.lazrs_call_flush(d.c.flush_fn, userData))
}

func (d destinationCallbacks) Seek(userData unsafe.Pointer, offset int64, whence int) int {
	return callSeek(d.c.seek_fn, userData, offset, whence)
}

func (d destinationCallbacks) Tell(userData unsafe.Pointer) uint64 {
	return callTell(d.c.tell_fn, userData)
}

func callSeek(fn C.Lazrs_SeekFn, userData unsafe.Pointer, offset int64, whence int) int {
	if fn == nil {
		panic(errNoSeekFn)
	}
	return int(C.lazrs_call_seek(fn, userData, C.int64_t(offset), C.int(whence)))
}

func callTell(fn C.Lazrs_TellFn, userData unsafe.Pointer) uint64 {
	if fn == nil {
		panic(errNoTellFn)
	}
	return uint64(C.lazrs_call_tell(fn, userData))
}
