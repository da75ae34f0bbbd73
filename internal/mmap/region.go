package mmap

// Region is a read-only view of a whole file.
type Region struct {
	data []byte
	// mapping is the Windows file-mapping handle; zero on Unix.
	mapping uintptr
}

// Map establishes a read-only shared mapping of size bytes of fd,
// starting at offset zero.
func Map(fd uintptr, size int, flags Flags) (*Region, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return osMap(fd, size, flags)
}

// Bytes returns the mapped bytes, or nil after Unmap.
func (r *Region) Bytes() []byte {
	return r.data
}

// Len returns the mapped length in bytes.
func (r *Region) Len() int {
	return len(r.data)
}

// Unmap releases the view and, on Windows, the mapping handle.
// Calling Unmap more than once is a no-op.
func (r *Region) Unmap() error {
	if r.data == nil {
		return nil
	}
	err := osUnmap(r)
	r.data = nil
	r.mapping = 0
	return err
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (r *Region) Advise(pattern AccessPattern) error {
	if r.data == nil {
		return ErrUnmapped
	}
	return osAdvise(r.data, pattern)
}
