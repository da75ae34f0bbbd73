package sysio

// copyScratch matches io.Copy's default buffer size.
const copyScratch = 32 * 1024

// CopyN moves exactly n bytes from src to dst.
//
// It is resolved at compile time for concrete backends, so hot paths that
// know both ends (for example *FDReader to *MemWriter) avoid interface
// dispatch. Either side failing aborts the copy; bytes already written to
// dst stay written.
func CopyN[W Writer, R Reader](dst W, src R, n int64) error {
	if n < 0 {
		return invalidCount("copy", n)
	}
	if n == 0 {
		return nil
	}

	buf := make([]byte, min(n, copyScratch))
	for n > 0 {
		count := min(n, int64(len(buf)))
		if err := src.ReadFull(buf[:count]); err != nil {
			return err
		}
		if err := dst.WriteFull(buf[:count]); err != nil {
			return err
		}
		n -= count
	}
	return nil
}
