//go:build !unix && !windows

package fd

import (
	"math"
	"syscall"
)

// MaxChunk is conservative on platforms without a dedicated x/sys package.
const MaxChunk = math.MaxInt32

// Names of the OS primitives, as reported in errors.
const (
	ReadOp  = "read"
	WriteOp = "write"
)

// Read issues one read call.
func Read(fd uintptr, p []byte) (int, error) {
	return syscall.Read(int(fd), p)
}

// Write issues one write call.
func Write(fd uintptr, p []byte) (int, error) {
	return syscall.Write(int(fd), p)
}
