// Package conv provides checked integer conversions.
//
// File sizes arrive as int64 from stat(2) and OS transfer calls take
// platform-sized counts (ssize_t on Unix, DWORD on Windows). These helpers
// refuse conversions that would truncate instead of silently wrapping.
//
// For conversions that are provably safe by construction (a count already
// clamped to a chunk limit, a loop index), use a direct type cast.
package conv
