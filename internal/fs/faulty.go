package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error used when a Fault does not carry its own.
var ErrInjected = errors.New("injected fault error")

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen  bool
	FailOnStat  bool
	FailOnClose bool
	Err         error
}

// FaultyFS is a FileSystem wrapper that can inject errors.
// It also tracks how many files it handed out that are still open.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	Default Fault            // Fallback

	opened int
	closed int
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
	}
}

// AddRule adds a fault injection rule for a specific file pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Open returns the number of files opened through f that are not yet closed.
func (f *FaultyFS) Open() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened - f.closed
}

// Closed returns the number of Close calls that reached the underlying file.
func (f *FaultyFS) Closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *FaultyFS) faultFor(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault := f.Default
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	if fault.Err == nil {
		fault.Err = ErrInjected
	}
	return fault
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	fault := f.faultFor(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.Err}
	}

	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.opened++
	f.mu.Unlock()

	return &faultyFile{File: file, fs: f, name: name, fault: fault}, nil
}

type faultyFile struct {
	File
	fs     *FaultyFS
	name   string
	fault  Fault
	closed bool
}

func (ff *faultyFile) Stat() (os.FileInfo, error) {
	if ff.fault.FailOnStat {
		return nil, &os.PathError{Op: "stat", Path: ff.name, Err: ff.fault.Err}
	}
	return ff.File.Stat()
}

func (ff *faultyFile) Close() error {
	if ff.closed {
		return os.ErrClosed
	}
	ff.closed = true

	ff.fs.mu.Lock()
	ff.fs.closed++
	ff.fs.mu.Unlock()

	err := ff.File.Close()
	if ff.fault.FailOnClose {
		return ff.fault.Err
	}
	return err
}
