// Package mach wraps the handful of Mach host and libmalloc calls the
// memory probe and the reclaim loop need.
package mach

// VMStatistics holds the page counters reported by host_statistics64.
type VMStatistics struct {
	FreeCount           uint64
	ActiveCount         uint64
	InactiveCount       uint64
	WireCount           uint64
	CompressorPageCount uint64
	PurgeableCount      uint64
	SpeculativeCount    uint64
}
