package sysio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemReader(t *testing.T) {
	r := NewMemReader([]byte("hello, world"))

	buf := make([]byte, 5)
	require.NoError(t, r.ReadFull(buf))
	assert.Equal(t, "hello", string(buf))

	require.NoError(t, r.Skip(2))
	assert.Equal(t, 7, r.Offset())
	assert.Equal(t, 5, r.Len())

	next, err := r.Next(3)
	require.NoError(t, err)
	assert.Equal(t, "wor", string(next))

	// A failed read consumes nothing.
	err = r.ReadFull(make([]byte, 3))
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Equal(t, 2, r.Len())

	assert.ErrorIs(t, r.Skip(3), ErrShortRead)
	assert.ErrorIs(t, r.Skip(-1), ErrInvalidArgument)
	_, err = r.Next(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, r.ReadFull(buf[:2]))
	assert.Equal(t, "ld", string(buf[:2]))
	assert.Equal(t, 0, r.Len())
	require.NoError(t, r.ReadFull(nil))
}

func TestMemReader_NextDoesNotAlias(t *testing.T) {
	data := []byte("abcdef")
	r := NewMemReader(data)

	b, err := r.Next(2)
	require.NoError(t, err)
	assert.Equal(t, 2, cap(b))
	_ = append(b, 'X')
	assert.Equal(t, "abcdef", string(data))
}

func TestMemWriter(t *testing.T) {
	w := NewMemWriter(4)

	require.NoError(t, w.WriteFull([]byte("ab")))
	require.NoError(t, w.Skip(3))
	require.NoError(t, w.WriteFull([]byte("c")))
	assert.Equal(t, []byte("ab\x00\x00\x00c"), w.Bytes())
	assert.Equal(t, 6, w.Len())

	assert.ErrorIs(t, w.Skip(-1), ErrInvalidArgument)

	w.Reset()
	assert.Equal(t, 0, w.Len())
	require.NoError(t, w.Skip(0))
	assert.Empty(t, w.Bytes())
}

func TestMemWriter_NegativeHint(t *testing.T) {
	w := NewMemWriter(-5)
	require.NoError(t, w.WriteFull([]byte("x")))
	assert.Equal(t, 1, w.Len())
}
