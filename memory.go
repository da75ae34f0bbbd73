package sysio

import (
	"fmt"
	"io"
	"math"
)

var (
	_ Reader = (*MemReader)(nil)
	_ Writer = (*MemWriter)(nil)
)

// MemReader implements Reader over a byte slice without copying it.
// It is what Mapper.Reader hands out over a mapped file.
type MemReader struct {
	data []byte
	off  int
}

// NewMemReader returns a Reader positioned at the start of data.
func NewMemReader(data []byte) *MemReader {
	return &MemReader{data: data}
}

// ReadFull copies the next len(p) bytes into p. On failure nothing is
// consumed.
func (r *MemReader) ReadFull(p []byte) error {
	if len(p) > r.Len() {
		return r.short("read", int64(len(p)))
	}
	r.off += copy(p, r.data[r.off:])
	return nil
}

// Skip discards the next n bytes. On failure nothing is consumed.
func (r *MemReader) Skip(n int64) error {
	if n < 0 {
		return invalidCount("skip", n)
	}
	if n > int64(r.Len()) {
		return r.short("skip", n)
	}
	r.off += int(n)
	return nil
}

// Next returns the next n bytes without copying and consumes them.
func (r *MemReader) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, invalidCount("next", int64(n))
	}
	if n > r.Len() {
		return nil, r.short("next", int64(n))
	}
	b := r.data[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// Len returns the number of unread bytes.
func (r *MemReader) Len() int {
	return len(r.data) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *MemReader) Offset() int {
	return r.off
}

func (r *MemReader) short(op string, want int64) error {
	return &Error{
		Kind: KindShortRead,
		Op:   op,
		Err:  fmt.Errorf("%w: want %d bytes, %d left", io.ErrUnexpectedEOF, want, r.Len()),
	}
}

// MemWriter implements Writer by appending to a growable buffer.
type MemWriter struct {
	buf []byte
}

// NewMemWriter returns an empty MemWriter with room for sizeHint bytes.
func NewMemWriter(sizeHint int) *MemWriter {
	return &MemWriter{buf: make([]byte, 0, max(sizeHint, 0))}
}

// WriteFull appends p.
func (w *MemWriter) WriteFull(p []byte) error {
	w.buf = append(w.buf, p...)
	return nil
}

// Skip appends n zero bytes.
func (w *MemWriter) Skip(n int64) error {
	if n < 0 {
		return invalidCount("skip", n)
	}
	if n > int64(math.MaxInt-len(w.buf)) {
		return &Error{Kind: KindUnsupportedSize, Op: "skip", Err: fmt.Errorf("buffer cannot grow by %d bytes", n)}
	}
	w.buf = append(w.buf, make([]byte, n)...)
	return nil
}

// Bytes returns the written bytes. The slice aliases the buffer until the
// next write.
func (w *MemWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *MemWriter) Len() int {
	return len(w.buf)
}

// Reset empties the buffer, keeping its capacity.
func (w *MemWriter) Reset() {
	w.buf = w.buf[:0]
}
