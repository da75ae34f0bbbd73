package sysio

import (
	"github.com/hupe1980/sysio/internal/fd"
	"github.com/hupe1980/sysio/internal/fs"
)

// MemoryBudget accounts for mapped bytes.
// *resource.Controller implements it.
type MemoryBudget interface {
	// AcquireMemory reserves bytes or fails immediately.
	AcquireMemory(bytes int64) error
	// ReleaseMemory returns bytes previously reserved.
	ReleaseMemory(bytes int64)
}

type options struct {
	populate bool
	maxChunk int
	logger   *Logger
	metrics  MetricsCollector
	budget   MemoryBudget
	fs       fs.FileSystem
}

// Option configures a Mapper, FDReader or FDWriter.
//
// Options that do not apply to a constructor are ignored by it.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		maxChunk: fd.MaxChunk,
		metrics:  NoopMetricsCollector{},
		fs:       fs.Default,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPopulate asks the Mapper to pre-fault the mapped pages.
//
// This is a hint. Where the platform has no way to honour it, it is
// silently ignored; it never makes construction fail.
func WithPopulate() Option {
	return func(o *options) {
		o.populate = true
	}
}

// WithMaxChunk lowers the largest byte count an FDReader or FDWriter passes
// to a single OS call. Values are clamped to [1, platform maximum].
func WithMaxChunk(n int) Option {
	return func(o *options) {
		o.maxChunk = min(max(n, 1), fd.MaxChunk)
	}
}

// WithLogger enables debug/error logging. Without it nothing is logged.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics installs a MetricsCollector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithMemoryBudget makes the Mapper reserve its mapped size from b before
// mapping and release it on Close.
func WithMemoryBudget(b MemoryBudget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// withFileSystem swaps the filesystem the Mapper opens files through.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}
