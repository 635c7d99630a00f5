// Package session owns the live codec sessions behind opaque handles.
package session

import "sync"

// Handle identifies a live session. The zero Handle is the null handle and
// never refers to a session.
type Handle uintptr

// Registry maps handles to sessions. Handles come from a counter and are
// never reused, so a destroyed handle cannot alias a newer session.
type Registry[T any] struct {
	mu    sync.Mutex
	next  Handle
	items map[Handle]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[Handle]T)}
}

// Insert takes ownership of item and returns its handle.
func (r *Registry[T]) Insert(item T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.items[r.next] = item
	return r.next
}

// Get returns the session behind h.
func (r *Registry[T]) Get(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[h]
	return item, ok
}

// Remove hands ownership of the session back to the caller. It reports
// false for the null handle, unknown handles and handles already removed.
func (r *Registry[T]) Remove(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[h]
	if ok {
		delete(r.items, h)
	}
	return item, ok
}

// Drain removes and returns every live session.
func (r *Registry[T]) Drain() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]T, 0, len(r.items))
	for h, item := range r.items {
		items = append(items, item)
		delete(r.items, h)
	}
	return items
}

// Len returns the number of live sessions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
