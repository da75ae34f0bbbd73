//go:build windows

package fd

import (
	"math"

	"golang.org/x/sys/windows"

	"github.com/hupe1980/sysio/internal/conv"
)

// MaxChunk is the largest byte count passed to a single ReadFile or WriteFile.
const MaxChunk = math.MaxInt32

// Names of the OS primitives, as reported in errors.
const (
	ReadOp  = "ReadFile"
	WriteOp = "WriteFile"
)

// Read issues one ReadFile on the handle.
func Read(fd uintptr, p []byte) (int, error) {
	var done uint32
	err := windows.ReadFile(windows.Handle(fd), p, &done, nil)
	if err == windows.ERROR_BROKEN_PIPE {
		// The write end of a pipe was closed: end of input.
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return conv.Uint32ToInt(done)
}

// Write issues one WriteFile on the handle.
func Write(fd uintptr, p []byte) (int, error) {
	var done uint32
	if err := windows.WriteFile(windows.Handle(fd), p, &done, nil); err != nil {
		return 0, err
	}
	return conv.Uint32ToInt(done)
}
