package resource

import (
	"context"

	"github.com/hupe1980/sysio"
)

var (
	_ sysio.Reader       = (*RateLimitedReader)(nil)
	_ sysio.Writer       = (*RateLimitedWriter)(nil)
	_ sysio.MemoryBudget = (*Controller)(nil)
)

// RateLimitedWriter wraps a sysio.Writer with rate limiting.
type RateLimitedWriter struct {
	ctx context.Context
	w   sysio.Writer
	rc  *Controller
}

// NewRateLimitedWriter creates a new RateLimitedWriter.
func NewRateLimitedWriter(ctx context.Context, w sysio.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		ctx: ctx,
		w:   w,
		rc:  rc,
	}
}

// WriteFull waits for len(p) tokens, then writes all of p.
func (w *RateLimitedWriter) WriteFull(p []byte) error {
	if err := w.rc.AcquireIO(w.ctx, int64(len(p))); err != nil {
		return err
	}
	return w.w.WriteFull(p)
}

// Skip waits for n tokens, then writes n zero bytes.
func (w *RateLimitedWriter) Skip(n int64) error {
	if err := w.rc.AcquireIO(w.ctx, n); err != nil {
		return err
	}
	return w.w.Skip(n)
}

// RateLimitedReader wraps a sysio.Reader with rate limiting.
type RateLimitedReader struct {
	ctx context.Context
	r   sysio.Reader
	rc  *Controller
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r sysio.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		ctx: ctx,
		r:   r,
		rc:  rc,
	}
}

// ReadFull waits for len(p) tokens, then fills p.
func (r *RateLimitedReader) ReadFull(p []byte) error {
	if err := r.rc.AcquireIO(r.ctx, int64(len(p))); err != nil {
		return err
	}
	return r.r.ReadFull(p)
}

// Skip waits for n tokens, then discards n bytes.
func (r *RateLimitedReader) Skip(n int64) error {
	if err := r.rc.AcquireIO(r.ctx, n); err != nil {
		return err
	}
	return r.r.Skip(n)
}
