// Package fd exposes one-shot transfer calls on a raw OS descriptor.
//
// Read and Write issue exactly one OS call and report whatever progress
// the kernel made. They do not loop: completing a transfer is the caller's
// job. MaxChunk is the largest count a single call accepts on the build
// platform:
//
//   - Unix: math.MaxInt, the largest ssize_t the read(2)/write(2) return
//     value can carry
//   - Windows: math.MaxInt32, since ReadFile/WriteFile take a DWORD count
//     and report progress through the same 32-bit width
//
// On Windows the descriptor is a HANDLE as returned by (*os.File).Fd.
package fd
