//go:build unix || windows

package fd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	n, err := Write(w.Fd(), []byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, w.Close())

	buf := make([]byte, 16)
	n, err = Read(r.Fd(), buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf[:n]))

	// Writer closed: one call reports zero progress without an error.
	n, err = Read(r.Fd(), buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRead_EndOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eof.bin")
	require.NoError(t, os.WriteFile(path, []byte("ab"), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 8)
	n, err := Read(f.Fd(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Read(f.Fd(), buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWrite_ReadOnlyDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.bin")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = Write(f.Fd(), []byte("x"))
	assert.Error(t, err)
}

func TestMaxChunk(t *testing.T) {
	assert.Greater(t, MaxChunk, 1<<20)
	assert.NotEmpty(t, ReadOp)
	assert.NotEmpty(t, WriteOp)
}
