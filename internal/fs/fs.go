package fs

import (
	"os"
)

// File represents an open file.
type File interface {
	Fd() uintptr
	Stat() (os.FileInfo, error)
	Close() error
}

// FileSystem abstracts opening files for testability.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		// Avoid returning a typed nil inside the interface.
		return nil, err
	}
	return f, nil
}

// Default is the default local file system.
var Default FileSystem = LocalFS{}
