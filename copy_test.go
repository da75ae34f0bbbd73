package sysio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyN(t *testing.T) {
	data := pattern(100_000)
	src := NewMemReader(data)
	dst := NewMemWriter(0)

	require.NoError(t, CopyN(dst, src, 70_000))
	assert.Equal(t, data[:70_000], dst.Bytes())
	assert.Equal(t, 30_000, src.Len())

	require.NoError(t, CopyN(dst, src, 0))
	assert.ErrorIs(t, CopyN(dst, src, -1), ErrInvalidArgument)

	// Not enough input.
	err := CopyN(dst, src, 40_000)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestCopyN_FDToMemory(t *testing.T) {
	f := tempFile(t, "copy")
	want := pattern(5000)
	require.NoError(t, NewFDWriter(f.Fd()).WriteFull(want))

	dst := NewMemWriter(len(want))
	require.NoError(t, CopyN(dst, NewFDReader(reopen(t, f).Fd(), WithMaxChunk(512)), int64(len(want))))
	assert.Equal(t, want, dst.Bytes())
}

func TestCopyN_Interfaces(t *testing.T) {
	var src Reader = NewMemReader([]byte("interface"))
	var dst Writer = NewMemWriter(0)

	require.NoError(t, CopyN(dst, src, 9))
	assert.Equal(t, "interface", string(dst.(*MemWriter).Bytes()))
}
