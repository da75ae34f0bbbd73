package sysio

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// calls is the number of OS transfer calls an operation issued; for a
// successful operation over n bytes it is at least ceil(n / chunk).
type MetricsCollector interface {
	// RecordRead is called after each FDReader.ReadFull.
	RecordRead(bytes, calls int, duration time.Duration, err error)

	// RecordWrite is called after each FDWriter.WriteFull.
	RecordWrite(bytes, calls int, duration time.Duration, err error)

	// RecordSkip is called after each FDReader.Skip or FDWriter.Skip.
	RecordSkip(n int64, calls int, duration time.Duration, err error)

	// RecordMap is called after each NewMapper.
	RecordMap(size int, duration time.Duration, err error)

	// RecordUnmap is called once per Mapper, when it is closed.
	// err carries release failures that Close does not return.
	RecordUnmap(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordWrite(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordSkip(int64, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMap(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordUnmap(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	ReadBytes      atomic.Int64
	ReadCalls      atomic.Int64
	ReadTotalNanos atomic.Int64
	WriteCount     atomic.Int64
	WriteErrors    atomic.Int64
	WriteBytes     atomic.Int64
	WriteCalls     atomic.Int64
	SkipCount      atomic.Int64
	SkipErrors     atomic.Int64
	SkipBytes      atomic.Int64
	SkipCalls      atomic.Int64
	MapCount       atomic.Int64
	MapErrors      atomic.Int64
	MappedBytes    atomic.Int64
	UnmapCount     atomic.Int64
	UnmapErrors    atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(bytes, calls int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadCalls.Add(int64(calls))
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
		return
	}
	b.ReadBytes.Add(int64(bytes))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes, calls int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteCalls.Add(int64(calls))
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteBytes.Add(int64(bytes))
}

// RecordSkip implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSkip(n int64, calls int, duration time.Duration, err error) {
	b.SkipCount.Add(1)
	b.SkipCalls.Add(int64(calls))
	if err != nil {
		b.SkipErrors.Add(1)
		return
	}
	b.SkipBytes.Add(n)
}

// RecordMap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMap(size int, duration time.Duration, err error) {
	b.MapCount.Add(1)
	if err != nil {
		b.MapErrors.Add(1)
		return
	}
	b.MappedBytes.Add(int64(size))
}

// RecordUnmap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnmap(size int, duration time.Duration, err error) {
	b.UnmapCount.Add(1)
	if err != nil {
		b.UnmapErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:    b.ReadCount.Load(),
		ReadErrors:   b.ReadErrors.Load(),
		ReadBytes:    b.ReadBytes.Load(),
		ReadCalls:    b.ReadCalls.Load(),
		ReadAvgNanos: b.getAvgReadNanos(),
		WriteCount:   b.WriteCount.Load(),
		WriteErrors:  b.WriteErrors.Load(),
		WriteBytes:   b.WriteBytes.Load(),
		WriteCalls:   b.WriteCalls.Load(),
		SkipCount:    b.SkipCount.Load(),
		SkipErrors:   b.SkipErrors.Load(),
		SkipBytes:    b.SkipBytes.Load(),
		SkipCalls:    b.SkipCalls.Load(),
		MapCount:     b.MapCount.Load(),
		MapErrors:    b.MapErrors.Load(),
		MappedBytes:  b.MappedBytes.Load(),
		UnmapCount:   b.UnmapCount.Load(),
		UnmapErrors:  b.UnmapErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReadCount    int64
	ReadErrors   int64
	ReadBytes    int64
	ReadCalls    int64
	ReadAvgNanos int64
	WriteCount   int64
	WriteErrors  int64
	WriteBytes   int64
	WriteCalls   int64
	SkipCount    int64
	SkipErrors   int64
	SkipBytes    int64
	SkipCalls    int64
	MapCount     int64
	MapErrors    int64
	MappedBytes  int64
	UnmapCount   int64
	UnmapErrors  int64
}
