package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/iamNilotpal/lazrs/internal/core/services/session"
)

// tokens maps the opaque pointers handed to C onto session handles. Each
// token is a one byte allocation that is never dereferenced; it only gives
// the caller a unique, non-null address that stays valid until delete.
type tokens struct {
	mu   sync.Mutex
	live map[unsafe.Pointer]session.Handle
}

func newTokens() *tokens {
	return &tokens{live: make(map[unsafe.Pointer]session.Handle)}
}

func (t *tokens) issue(h session.Handle) unsafe.Pointer {
	p := C.malloc(1)
	if p == nil {
		panic("out of memory")
	}

	t.mu.Lock()
	t.live[p] = h
	t.mu.Unlock()
	return p
}

// lookup returns the zero handle, which no session uses, for unknown tokens.
func (t *tokens) lookup(p unsafe.Pointer) session.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live[p]
}

func (t *tokens) revoke(p unsafe.Pointer) (session.Handle, bool) {
	if p == nil {
		return 0, false
	}

	t.mu.Lock()
	h, ok := t.live[p]
	delete(t.live, p)
	t.mu.Unlock()

	if ok {
		C.free(p)
	}
	return h, ok
}

var (
	decompressorTokens = newTokens()
	compressorTokens   = newTokens()
)
