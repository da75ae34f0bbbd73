//go:build !unix && !windows

package mmap

func osMap(fd uintptr, size int, flags Flags) (*Region, error) {
	return nil, &Error{Op: "mmap", Err: ErrUnsupported}
}

func osUnmap(r *Region) error {
	return nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	return nil
}
