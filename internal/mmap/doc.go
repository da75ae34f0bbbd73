// Package mmap provides read-only memory mapping of an open file.
//
// # Overview
//
// A Region binds the full contents of a file to process memory so callers
// can read it without copying through kernel buffers. The package does not
// open or close files; the caller owns the descriptor and must keep it open
// for as long as the platform requires (see below).
//
// # Usage
//
//	r, err := mmap.Map(f.Fd(), size, mmap.Populate)
//	if err != nil { ... }
//	defer r.Unmap()
//
//	data := r.Bytes()
//
// # Platform Support
//
// The package provides a unified API across platforms, selected at build time:
//
//   - Unix (Linux, macOS, BSD): mmap(2) over the descriptor. Populate maps to
//     MAP_POPULATE on Linux, MAP_PREFAULT_READ on FreeBSD and a best-effort
//     madvise(MADV_WILLNEED) elsewhere.
//   - Windows: CreateFileMapping + MapViewOfFile. The mapping handle is kept
//     until Unmap so the file/mapping/view triplet is released in order.
//     Populate uses PrefetchVirtualMemory when kernel32 exports it.
//   - Anything else: Map fails with ErrUnsupported.
//
// Populate is a hint. It never causes Map to fail.
//
// # Thread Safety
//
// A Region is safe for concurrent reads. Unmap must not race with readers.
package mmap
