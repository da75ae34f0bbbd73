//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

func osMap(fd uintptr, size int, flags Flags) (*Region, error) {
	mapFlags := unix.MAP_SHARED
	if flags&Populate != 0 {
		mapFlags |= populateFlag
	}

	data, err := unix.Mmap(int(fd), 0, size, unix.PROT_READ, mapFlags)
	if err != nil {
		return nil, &Error{Op: "mmap", Err: err}
	}

	if flags&Populate != 0 && populateFlag == 0 {
		// No prefault flag on this platform; the advice is best effort.
		_ = unix.Madvise(data, unix.MADV_WILLNEED)
	}

	return &Region{data: data}, nil
}

func osUnmap(r *Region) error {
	if err := unix.Munmap(r.data); err != nil {
		return &Error{Op: "munmap", Err: err}
	}
	return nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}

	// Whole-file mappings start page-aligned, so EINVAL here is a platform
	// that rejects the advice value; hints are advisory, ignore it.
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		return nil
	}
	if err != nil {
		return &Error{Op: "madvise", Err: err}
	}
	return nil
}
