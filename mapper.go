package sysio

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/hupe1980/sysio/internal/conv"
	"github.com/hupe1980/sysio/internal/fs"
	"github.com/hupe1980/sysio/internal/mmap"
)

// AccessPattern provides hints to the kernel about how mapped data will be
// accessed.
type AccessPattern = mmap.AccessPattern

// Access patterns accepted by Mapper.Advise.
const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
	AccessDontNeed   = mmap.AccessDontNeed
)

var _ io.ReaderAt = (*Mapper)(nil)

// noCopy makes go vet's copylocks check flag copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mapper is a read-only memory mapping of a whole file.
//
// A Mapper owns its file and mapping from NewMapper until Close. Size is
// measured once and never changes; Bytes is valid until Close. On Unix the
// resources are one descriptor plus the mapped region; on Windows they are
// the file handle, the file-mapping handle and the view.
//
// Mappers are handed out by pointer only and must not be copied.
type Mapper struct {
	_ noCopy

	path     string
	file     fs.File
	region   *mmap.Region // nil for an empty file
	data     []byte
	size     int
	reserved int64
	closed   atomic.Bool
	opts     options
}

// NewMapper opens path read-only, measures it and maps all of it.
//
// Each step either succeeds or releases everything acquired so far before
// returning: a failed NewMapper never leaves a descriptor or mapping behind.
// Failures are *Error values of kind KindOpen, KindSizeProbe,
// KindUnsupportedSize, KindResourceLimit or KindMap.
//
// A zero-length file is not mapped; the Mapper reports Size 0 and nil Bytes.
func NewMapper(path string, opts ...Option) (*Mapper, error) {
	o := newOptions(opts)

	start := time.Now()
	m, err := openMapper(path, o)
	size := 0
	if m != nil {
		size = m.size
	}
	o.metrics.RecordMap(size, time.Since(start), err)
	o.logger.LogMap(context.Background(), path, size, o.populate, err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func openMapper(path string, o options) (*Mapper, error) {
	f, err := o.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, translateError(KindOpen, "open", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, translateError(KindSizeProbe, "fstat", path, err)
	}

	size, err := conv.Int64ToInt(fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, &Error{Kind: KindUnsupportedSize, Op: "fstat", Path: path, Err: err}
	}

	m := &Mapper{
		path: path,
		file: f,
		size: size,
		opts: o,
	}
	if size == 0 {
		return m, nil
	}

	if o.budget != nil {
		if err := o.budget.AcquireMemory(int64(size)); err != nil {
			_ = f.Close()
			return nil, &Error{Kind: KindResourceLimit, Op: "reserve", Path: path, Err: err}
		}
		m.reserved = int64(size)
	}

	var flags mmap.Flags
	if o.populate {
		flags |= mmap.Populate
	}

	region, err := mmap.Map(f.Fd(), size, flags)
	if err != nil {
		m.releaseBudget()
		_ = f.Close()
		return nil, translateError(KindMap, "mmap", path, err)
	}

	m.region = region
	m.data = region.Bytes()
	return m, nil
}

// Path returns the path the Mapper was opened with.
func (m *Mapper) Path() string {
	return m.path
}

// Size returns the file size measured when the Mapper was created.
func (m *Mapper) Size() int {
	return m.size
}

// Bytes returns the mapped file contents.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapper) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Reader returns a Reader over the mapped contents, starting at offset zero.
// It shares the mapping and is valid only until Close.
func (m *Mapper) Reader() *MemReader {
	return NewMemReader(m.Bytes())
}

// ReadAt implements io.ReaderAt.
func (m *Mapper) ReadAt(p []byte, off int64) (int, error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, invalidCount("readat", off)
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Advise provides hints to the kernel about how the mapping will be accessed.
// It is a no-op for empty files and on platforms without madvise.
func (m *Mapper) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.region == nil {
		return nil
	}
	return translateError(KindIO, "madvise", m.path, m.region.Advise(pattern))
}

// Close unmaps the file and closes it. It is idempotent.
//
// Release is best effort and Close always returns nil. Failures are
// reported as KindUnmap errors to the configured Logger and
// MetricsCollector only.
func (m *Mapper) Close() error {
	if m.closed.Swap(true) {
		return nil
	}

	start := time.Now()
	var first error
	if m.region != nil {
		if err := m.region.Unmap(); err != nil {
			first = translateError(KindUnmap, "munmap", m.path, err)
		}
	}
	if err := m.file.Close(); err != nil && first == nil {
		first = translateError(KindUnmap, "close", m.path, err)
	}
	m.releaseBudget()
	m.data = nil

	m.opts.metrics.RecordUnmap(m.size, time.Since(start), first)
	m.opts.logger.LogUnmap(context.Background(), m.path, m.size, first)
	return nil
}

func (m *Mapper) releaseBudget() {
	if m.reserved > 0 {
		m.opts.budget.ReleaseMemory(m.reserved)
		m.reserved = 0
	}
}
