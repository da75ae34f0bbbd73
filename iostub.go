package sysio

// Reader delivers bytes sequentially from one owned or referenced resource.
//
// Implementations never report partial progress: each call either transfers
// everything that was asked for or returns an error.
type Reader interface {
	// ReadFull fills p completely or fails.
	ReadFull(p []byte) error
	// Skip discards exactly the next n bytes of input or fails.
	Skip(n int64) error
}

// Writer consumes bytes sequentially into one owned or referenced resource.
//
// Implementations never report partial progress: each call either transfers
// everything that was asked for or returns an error.
type Writer interface {
	// WriteFull consumes all of p or fails.
	WriteFull(p []byte) error
	// Skip advances the output by exactly n bytes by writing n zero bytes.
	// It is never a sparse seek.
	Skip(n int64) error
}

// Scratch sizes used by skip: small skips go through a 16 byte buffer,
// larger ones loop over a 1 KiB buffer.
const (
	smallScratch = 16
	skipScratch  = 1024
)

// zeros is the source for zero-filling skips. It is never written to.
var zeros [skipScratch]byte

// skipRead discards n bytes using readFull, which must have all-or-nothing
// semantics.
func skipRead(readFull func([]byte) error, n int64) error {
	if n < 0 {
		return invalidCount("skip", n)
	}
	if n == 0 {
		return nil
	}
	if n <= smallScratch {
		var buf [smallScratch]byte
		return readFull(buf[:n])
	}

	var buf [skipScratch]byte
	for n > 0 {
		count := min(n, int64(len(buf)))
		if err := readFull(buf[:count]); err != nil {
			return err
		}
		n -= count
	}
	return nil
}

// skipZeros materializes n zero bytes using writeFull.
func skipZeros(writeFull func([]byte) error, n int64) error {
	if n < 0 {
		return invalidCount("skip", n)
	}
	if n == 0 {
		return nil
	}
	if n <= smallScratch {
		return writeFull(zeros[:n])
	}

	for n > 0 {
		count := min(n, int64(len(zeros)))
		if err := writeFull(zeros[:count]); err != nil {
			return err
		}
		n -= count
	}
	return nil
}
