package resource

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sysio"
)

func TestRateLimitedWriter(t *testing.T) {
	rc := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	mw := sysio.NewMemWriter(0)
	w := NewRateLimitedWriter(context.Background(), mw, rc)

	require.NoError(t, w.WriteFull([]byte("abc")))
	require.NoError(t, w.Skip(2))
	require.NoError(t, w.WriteFull([]byte("de")))

	assert.Equal(t, []byte("abc\x00\x00de"), mw.Bytes())
}

func TestRateLimitedReader(t *testing.T) {
	rc := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	r := NewRateLimitedReader(context.Background(), sysio.NewMemReader([]byte("0123456789")), rc)

	require.NoError(t, r.Skip(4))
	buf := make([]byte, 3)
	require.NoError(t, r.ReadFull(buf))
	assert.Equal(t, "456", string(buf))

	err := r.ReadFull(make([]byte, 8))
	assert.ErrorIs(t, err, sysio.ErrShortRead)
}

func TestRateLimited_CancelledContext(t *testing.T) {
	rc := NewController(Config{IOLimitBytesPerSec: 16})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mw := sysio.NewMemWriter(0)
	w := NewRateLimitedWriter(ctx, mw, rc)

	// The wait fails before anything reaches the sink.
	require.Error(t, w.WriteFull(make([]byte, 64)))
	assert.Equal(t, 0, mw.Len())
}

func TestRateLimited_NilController(t *testing.T) {
	mw := sysio.NewMemWriter(0)
	w := NewRateLimitedWriter(context.Background(), mw, nil)
	require.NoError(t, w.WriteFull([]byte("x")))
	assert.Equal(t, 1, mw.Len())
}

func TestController_MapperBudget(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small")
	large := filepath.Join(dir, "large")
	require.NoError(t, os.WriteFile(small, bytes.Repeat([]byte{1}, 64), 0o600))
	require.NoError(t, os.WriteFile(large, bytes.Repeat([]byte{2}, 256), 0o600))

	rc := NewController(Config{MemoryLimitBytes: 128})

	m, err := sysio.NewMapper(small, sysio.WithMemoryBudget(rc))
	require.NoError(t, err)
	assert.Equal(t, int64(64), rc.MemoryUsage())

	_, err = sysio.NewMapper(large, sysio.WithMemoryBudget(rc))
	require.ErrorIs(t, err, sysio.ErrResourceLimit)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(64), rc.MemoryUsage())

	require.NoError(t, m.Close())
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestController_ConcurrentMappers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{7}, 4096), 0o600))

	rc := NewController(Config{MemoryLimitBytes: 1 << 20})

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			m, err := sysio.NewMapper(path, sysio.WithMemoryBudget(rc))
			if err != nil {
				return err
			}
			defer m.Close()

			r := NewRateLimitedReader(context.Background(), m.Reader(), rc)
			buf := make([]byte, 4096)
			if err := r.ReadFull(buf); err != nil {
				return err
			}
			if !bytes.Equal(buf, bytes.Repeat([]byte{7}, 4096)) {
				t.Errorf("unexpected contents")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int64(0), rc.MemoryUsage())
}
