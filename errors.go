package sysio

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/hupe1980/sysio/internal/mmap"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is never produced by this package.
	KindUnknown Kind = iota
	// KindOpen means the file could not be opened.
	KindOpen
	// KindSizeProbe means the file size could not be determined.
	KindSizeProbe
	// KindMap means the read-only mapping could not be established.
	KindMap
	// KindUnmap means releasing a mapping or its file failed.
	// It is only ever reported to the observability hooks, never returned.
	KindUnmap
	// KindShortRead means the input ended before the request was satisfied.
	KindShortRead
	// KindShortWrite means the sink refused or truncated a write.
	KindShortWrite
	// KindUnsupportedSize means the file is larger than the platform's int.
	KindUnsupportedSize
	// KindIO means an OS transfer call returned an error.
	KindIO
	// KindInvalidArgument means the caller passed an impossible count.
	KindInvalidArgument
	// KindResourceLimit means a memory budget refused the mapping.
	KindResourceLimit
	// KindClosed means the object was used after Close.
	KindClosed
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindOpen:            "open failure",
	KindSizeProbe:       "size probe failure",
	KindMap:             "map failure",
	KindUnmap:           "unmap failure",
	KindShortRead:       "short read",
	KindShortWrite:      "short write",
	KindUnsupportedSize: "unsupported size",
	KindIO:              "i/o failure",
	KindInvalidArgument: "invalid argument",
	KindResourceLimit:   "resource limit",
	KindClosed:          "closed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is the structured error returned by every operation in this package.
//
// Op names the failing OS primitive ("open", "fstat", "mmap", "read",
// "WriteFile", ...). Path is set for mapper failures. The OS error code,
// when there is one, is available through Code or errors.As on Err.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := "sysio: " + e.Kind.String()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// Code returns the OS error number behind e, or zero when there is none.
func (e *Error) Code() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrOpen            = &Error{Kind: KindOpen}
	ErrSizeProbe       = &Error{Kind: KindSizeProbe}
	ErrMap             = &Error{Kind: KindMap}
	ErrUnmap           = &Error{Kind: KindUnmap}
	ErrShortRead       = &Error{Kind: KindShortRead}
	ErrShortWrite      = &Error{Kind: KindShortWrite}
	ErrUnsupportedSize = &Error{Kind: KindUnsupportedSize}
	ErrIO              = &Error{Kind: KindIO}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrResourceLimit   = &Error{Kind: KindResourceLimit}
	ErrClosed          = &Error{Kind: KindClosed}
)

// translateError lifts an error from the internal packages into an *Error
// of the given kind, keeping the most specific OS primitive name it can find.
func translateError(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}

	var me *mmap.Error
	if errors.As(err, &me) {
		op = me.Op
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		op = pe.Op
		if path == "" {
			path = pe.Path
		}
	}

	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func invalidCount(op string, n int64) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Err: fmt.Errorf("negative count %d", n)}
}
