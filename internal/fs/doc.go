// Package fs provides the filesystem seam used by the mapper.
//
// The package defines two interfaces:
//
//   - [File]: an open file exposing its OS descriptor (or Windows handle)
//   - [FileSystem]: opens files by path
//
// # Implementations
//
//   - [LocalFS]: production implementation using the standard os package
//   - [FaultyFS]: test utility that injects open/stat/close failures and
//     counts live handles so tests can prove nothing leaked
//
// # Usage
//
// Production code uses fs.Default (which is [LocalFS]):
//
//	f, err := fs.Default.OpenFile(path, os.O_RDONLY, 0)
//
// Tests wrap it to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("dict.bin", fs.Fault{FailOnStat: true})
//	// hand ffs to the mapper, then assert ffs.Open() == 0
//
// # Design Notes
//
// No context.Context parameters: open/stat/close are non-interruptible at
// the syscall level.
package fs
