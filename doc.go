// Package sysio provides the low-level I/O transport that serializers sit on.
//
// It has three parts:
//
//   - A capability contract, [Reader] and [Writer], whose operations either
//     transfer exactly the requested number of bytes or fail. No partial
//     progress is ever visible to the caller.
//   - [FDReader] and [FDWriter], which implement the contract over a raw OS
//     descriptor the caller opened. They loop over partial read(2)/write(2)
//     results, bound every call by the platform's per-call limit and treat
//     zero progress as a failure.
//   - [Mapper], a read-only memory mapping of a whole file for zero-copy
//     access.
//
// # Quick Start
//
// Writing and reading back through a descriptor:
//
//	f, _ := os.Create("dict.bin")
//	w := sysio.NewFDWriter(f.Fd())
//	_ = w.WriteFull(header)
//	_ = w.Skip(16) // 16 zero bytes of padding
//	_ = f.Close()
//
//	f, _ = os.Open("dict.bin")
//	r := sysio.NewFDReader(f.Fd())
//	_ = r.ReadFull(header)
//	_ = r.Skip(16)
//
// Mapping a file:
//
//	m, err := sysio.NewMapper("dict.bin", sysio.WithPopulate())
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// # Skipping
//
// Skip never repositions anything. A Reader's Skip reads and discards; a
// Writer's Skip writes zero bytes. Its cost is real I/O proportional to n.
//
// # Errors
//
// Every failure is an [*Error] carrying a [Kind], the failing OS primitive
// and the OS error. Use errors.Is with the sentinels:
//
//	if errors.Is(err, sysio.ErrShortRead) { ... }
//
// # Concurrency
//
// All operations block until they complete or fail; there is no
// cancellation. An instance must not be used from several goroutines at
// once. Use one instance per goroutine.
//
// # Observability
//
// Nothing is logged unless [WithLogger] is passed. [WithMetrics] reports
// per-operation byte counts, OS call counts and durations.
package sysio
