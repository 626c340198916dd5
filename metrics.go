package bitvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAlloc is called after each allocator request.
	// bytes is the requested block size, err is nil if successful.
	RecordAlloc(bytes int, err error)

	// RecordGrow is called when a buffer moves to a larger allocation.
	RecordGrow(fromElements, toElements int)

	// RecordFree is called when a buffer returns its allocation.
	RecordFree(bytes int)

	// RecordAlign is called when live bits are shifted down to head 0.
	RecordAlign(bits int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, error) {}
func (NoopMetricsCollector) RecordGrow(int, int)    {}
func (NoopMetricsCollector) RecordFree(int)         {}
func (NoopMetricsCollector) RecordAlign(int)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount   atomic.Int64
	AllocErrors  atomic.Int64
	AllocBytes   atomic.Int64
	GrowCount    atomic.Int64
	FreeCount    atomic.Int64
	FreeBytes    atomic.Int64
	AlignCount   atomic.Int64
	AlignedBits  atomic.Int64
	PeakElements atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(int64(bytes))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, toElements int) {
	b.GrowCount.Add(1)
	for {
		peak := b.PeakElements.Load()
		if int64(toElements) <= peak || b.PeakElements.CompareAndSwap(peak, int64(toElements)) {
			return
		}
	}
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes int) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(int64(bytes))
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(bits int) {
	b.AlignCount.Add(1)
	b.AlignedBits.Add(int64(bits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:   b.AllocCount.Load(),
		AllocErrors:  b.AllocErrors.Load(),
		AllocBytes:   b.AllocBytes.Load(),
		GrowCount:    b.GrowCount.Load(),
		FreeCount:    b.FreeCount.Load(),
		FreeBytes:    b.FreeBytes.Load(),
		AlignCount:   b.AlignCount.Load(),
		AlignedBits:  b.AlignedBits.Load(),
		PeakElements: b.PeakElements.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount   int64
	AllocErrors  int64
	AllocBytes   int64
	GrowCount    int64
	FreeCount    int64
	FreeBytes    int64
	AlignCount   int64
	AlignedBits  int64
	PeakElements int64
}
