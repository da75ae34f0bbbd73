//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procPrefetchVirtualMemory = modkernel32.NewProc("PrefetchVirtualMemory")
)

// memoryRangeEntry mirrors WIN32_MEMORY_RANGE_ENTRY.
type memoryRangeEntry struct {
	VirtualAddress uintptr
	NumberOfBytes  uintptr
}

func osMap(fd uintptr, size int, flags Flags) (*Region, error) {
	h, err := windows.CreateFileMapping(windows.Handle(fd), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, &Error{Op: "CreateFileMapping", Err: err}
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, &Error{Op: "MapViewOfFile", Err: err}
	}

	if flags&Populate != 0 {
		prefetch(addr, size)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return &Region{data: data, mapping: uintptr(h)}, nil
}

// prefetch is a no-op before Windows 8, where kernel32 lacks the export.
func prefetch(addr uintptr, size int) {
	if procPrefetchVirtualMemory.Find() != nil {
		return
	}
	entry := memoryRangeEntry{VirtualAddress: addr, NumberOfBytes: uintptr(size)}
	_, _, _ = procPrefetchVirtualMemory.Call(
		uintptr(windows.CurrentProcess()),
		1,
		uintptr(unsafe.Pointer(&entry)),
		0,
	)
}

func osUnmap(r *Region) error {
	addr := uintptr(unsafe.Pointer(&r.data[0]))

	var first error
	if err := windows.UnmapViewOfFile(addr); err != nil {
		first = &Error{Op: "UnmapViewOfFile", Err: err}
	}
	if err := windows.CloseHandle(windows.Handle(r.mapping)); err != nil && first == nil {
		first = &Error{Op: "CloseHandle", Err: err}
	}
	return first
}

// Windows has no madvise equivalent for mapped views.
func osAdvise([]byte, AccessPattern) error {
	return nil
}
