//go:build unix

package fd

import (
	"math"

	"golang.org/x/sys/unix"
)

// MaxChunk is the largest byte count passed to a single read(2) or write(2).
const MaxChunk = math.MaxInt

// Names of the OS primitives, as reported in errors.
const (
	ReadOp  = "read"
	WriteOp = "write"
)

// Read issues one read(2). A signal interruption is retried; any other
// error is returned as is.
func Read(fd uintptr, p []byte) (int, error) {
	for {
		n, err := unix.Read(int(fd), p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

// Write issues one write(2). A signal interruption is retried.
func Write(fd uintptr, p []byte) (int, error) {
	for {
		n, err := unix.Write(int(fd), p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}
