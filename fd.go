package sysio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/sysio/internal/fd"
)

var (
	_ Reader = (*FDReader)(nil)
	_ Writer = (*FDWriter)(nil)
)

// transferFunc issues exactly one OS transfer call on fd.
type transferFunc func(fd uintptr, p []byte) (int, error)

// transfer moves all of p through call, one chunk-bounded call at a time.
//
// Every call must report positive progress. Zero progress ends the transfer
// with a short error of kind short; an OS error ends it with KindIO. It
// returns the number of calls issued.
func transfer(fdv uintptr, p []byte, chunk int, call transferFunc, op string, short Kind) (int, error) {
	total := len(p)
	calls := 0
	for len(p) > 0 {
		count := min(len(p), chunk)
		n, err := call(fdv, p[:count])
		calls++
		if err != nil {
			return calls, &Error{Kind: KindIO, Op: op, Err: err}
		}
		if n <= 0 {
			return calls, shortError(short, op, total-len(p), total)
		}
		p = p[n:]
	}
	return calls, nil
}

func shortError(kind Kind, op string, done, total int) error {
	cause := io.ErrUnexpectedEOF
	if kind == KindShortWrite {
		cause = io.ErrShortWrite
	}
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf("%w after %d of %d bytes", cause, done, total)}
}

// FDReader implements Reader over a caller-owned descriptor.
//
// It never opens, closes or repositions the descriptor; the OS tracks the
// position. An FDReader must not be used from more than one goroutine at
// a time.
type FDReader struct {
	fd   uintptr
	opts options
	read transferFunc
}

// NewFDReader wraps an open descriptor (a HANDLE on Windows), positioned
// where reading should start.
func NewFDReader(descriptor uintptr, opts ...Option) *FDReader {
	return &FDReader{
		fd:   descriptor,
		opts: newOptions(opts),
		read: defaultRead,
	}
}

func defaultRead(fdv uintptr, p []byte) (int, error) { return fd.Read(fdv, p) }

// Fd returns the wrapped descriptor.
func (r *FDReader) Fd() uintptr {
	return r.fd
}

// ReadFull fills p from the descriptor or fails with ErrShortRead or ErrIO.
func (r *FDReader) ReadFull(p []byte) error {
	start := time.Now()
	calls, err := transfer(r.fd, p, r.opts.maxChunk, r.read, fd.ReadOp, KindShortRead)
	r.opts.metrics.RecordRead(len(p), calls, time.Since(start), err)
	r.opts.logger.LogTransfer(context.Background(), fd.ReadOp, int64(len(p)), calls, err)
	return err
}

// Skip reads and discards the next n bytes.
func (r *FDReader) Skip(n int64) error {
	start := time.Now()
	calls := 0
	err := skipRead(func(p []byte) error {
		c, err := transfer(r.fd, p, r.opts.maxChunk, r.read, fd.ReadOp, KindShortRead)
		calls += c
		return err
	}, n)
	r.opts.metrics.RecordSkip(n, calls, time.Since(start), err)
	r.opts.logger.LogTransfer(context.Background(), "skip", n, calls, err)
	return err
}

// FDWriter implements Writer over a caller-owned descriptor.
//
// It never opens, closes or repositions the descriptor. An FDWriter must
// not be used from more than one goroutine at a time.
type FDWriter struct {
	fd    uintptr
	opts  options
	write transferFunc
}

// NewFDWriter wraps an open descriptor (a HANDLE on Windows), positioned
// where writing should start.
func NewFDWriter(descriptor uintptr, opts ...Option) *FDWriter {
	return &FDWriter{
		fd:    descriptor,
		opts:  newOptions(opts),
		write: defaultWrite,
	}
}

func defaultWrite(fdv uintptr, p []byte) (int, error) { return fd.Write(fdv, p) }

// Fd returns the wrapped descriptor.
func (w *FDWriter) Fd() uintptr {
	return w.fd
}

// WriteFull writes all of p or fails with ErrShortWrite or ErrIO.
func (w *FDWriter) WriteFull(p []byte) error {
	start := time.Now()
	calls, err := transfer(w.fd, p, w.opts.maxChunk, w.write, fd.WriteOp, KindShortWrite)
	w.opts.metrics.RecordWrite(len(p), calls, time.Since(start), err)
	w.opts.logger.LogTransfer(context.Background(), fd.WriteOp, int64(len(p)), calls, err)
	return err
}

// Skip writes n zero bytes. The descriptor is never repositioned, so the
// zeros are materialized even on files that support holes.
func (w *FDWriter) Skip(n int64) error {
	start := time.Now()
	calls := 0
	err := skipZeros(func(p []byte) error {
		c, err := transfer(w.fd, p, w.opts.maxChunk, w.write, fd.WriteOp, KindShortWrite)
		calls += c
		return err
	}, n)
	w.opts.metrics.RecordSkip(n, calls, time.Since(start), err)
	w.opts.logger.LogTransfer(context.Background(), "skip", n, calls, err)
	return err
}
