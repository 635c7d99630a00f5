package main

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tk := newTokens()
	p := tk.issue(7)
	require.NotNil(t, p)

	q := tk.issue(8)
	assert.NotEqual(t, p, q)

	assert.EqualValues(t, 7, tk.lookup(p))
	assert.EqualValues(t, 8, tk.lookup(q))
	assert.Zero(t, tk.lookup(unsafe.Pointer(new(byte))))
	assert.Zero(t, tk.lookup(nil))

	h, ok := tk.revoke(p)
	assert.True(t, ok)
	assert.EqualValues(t, 7, h)

	_, ok = tk.revoke(p)
	assert.False(t, ok)
	_, ok = tk.revoke(nil)
	assert.False(t, ok)

	h, ok = tk.revoke(q)
	assert.True(t, ok)
	assert.EqualValues(t, 8, h)
	assert.Empty(t, tk.live)
}
