package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryError(t *testing.T) {
	t.Parallel()

	err := NewIOError("read", io.ErrUnexpectedEOF)
	assert.Equal(t, "[io] read: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	wrapped := fmt.Errorf("decompress: %w", err)
	require.True(t, IsIOError(wrapped))

	category, ok := CategoryOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorIO, category)
}

func TestIsIOError_Nested(t *testing.T) {
	t.Parallel()

	inner := NewIOError("seek", errors.New("seek callback failed"))
	outer := New(ErrorCodec, "chunk", inner)

	assert.True(t, IsIOError(outer))
	assert.False(t, IsIOError(New(ErrorConfig, "path", errors.New("invalid utf-8"))))
	assert.False(t, IsIOError(errors.New("plain")))
	assert.False(t, IsIOError(nil))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("new: %w", NewValidationError("workers", -1, errors.New("workers must be positive")))
	require.True(t, IsValidationError(err))

	ve := AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "workers", ve.Field)
	assert.Equal(t, -1, ve.Value)
	assert.Nil(t, AsValidationError(errors.New("other")))
}

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[ErrorCategory]string{
		ErrorCodec:       "codec",
		ErrorIO:          "io",
		ErrorConfig:      "config",
		ErrorInternal:    "internal",
		ErrorCategory(0): "unknown",
	}
	for category, want := range tests {
		assert.Equal(t, want, category.String())
	}
}
