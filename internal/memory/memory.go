package memory

import (
	"context"
	"fmt"
)

// Snapshot represents a host-wide view of physical memory, in bytes
type Snapshot struct {
	Total       uint64 `json:"total_bytes"`
	Free        uint64 `json:"free_bytes"`
	Used        uint64 `json:"used_bytes"`
	Active      uint64 `json:"active_bytes"`
	Wired       uint64 `json:"wired_bytes"`
	Compressed  uint64 `json:"compressed_bytes"`
	Inactive    uint64 `json:"inactive_bytes"`
	Purgeable   uint64 `json:"purgeable_bytes"`
	Speculative uint64 `json:"speculative_bytes"`
	FreePages   uint64 `json:"free_pages_bytes"`
	PageSize    uint64 `json:"page_size"`
}

// Reclaimable returns the bytes the kernel could evict or compress without
// losing data: inactive, purgeable and speculative pages.
func (s *Snapshot) Reclaimable() uint64 {
	return s.Inactive + s.Purgeable + s.Speculative
}

// VMStatistics holds raw page counts by category
type VMStatistics struct {
	Free        uint64
	Active      uint64
	Inactive    uint64
	Wired       uint64
	Compressed  uint64
	Purgeable   uint64
	Speculative uint64
}

// Host is the set of read-only host queries a snapshot is built from
type Host interface {
	TotalMemory() (uint64, error)
	PageSize() (uint64, error)
	VMStatistics() (*VMStatistics, error)
}

// Reader interface for memory monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*Snapshot, error)
}

// QueryError reports a host statistics, page size or total memory query
// that did not succeed.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("memory query %s failed", e.Query)
	}
	return fmt.Sprintf("memory query %s failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewHost returns the host queries for the current platform
func NewHost() Host {
	return newPlatformHost()
}

// NewReader creates a new memory reader for the current platform
func NewReader() Reader {
	return NewProbe(NewHost())
}

// Probe reads snapshots from a Host
type Probe struct {
	host Host
}

// NewProbe creates a probe over the given host queries
func NewProbe(host Host) *Probe {
	return &Probe{host: host}
}

// GetInfo returns a fresh memory snapshot
func (p *Probe) GetInfo(ctx context.Context) (*Snapshot, error) {
	return Query(p.host)
}

// Query builds a snapshot from the host's total memory, page size and VM
// statistics. A zero total or page size counts as a failed query.
func Query(host Host) (*Snapshot, error) {
	total, err := host.TotalMemory()
	if err != nil {
		return nil, &QueryError{Query: "total memory", Err: err}
	}
	if total == 0 {
		return nil, &QueryError{Query: "total memory", Err: fmt.Errorf("reported 0 bytes")}
	}

	pageSize, err := host.PageSize()
	if err != nil {
		return nil, &QueryError{Query: "page size", Err: err}
	}
	if pageSize == 0 {
		return nil, &QueryError{Query: "page size", Err: fmt.Errorf("reported 0 bytes")}
	}

	vm, err := host.VMStatistics()
	if err != nil {
		return nil, &QueryError{Query: "vm statistics", Err: err}
	}
	if vm == nil {
		return nil, &QueryError{Query: "vm statistics"}
	}

	snap := &Snapshot{
		Total:       total,
		Active:      vm.Active * pageSize,
		Wired:       vm.Wired * pageSize,
		Compressed:  vm.Compressed * pageSize,
		Inactive:    vm.Inactive * pageSize,
		Purgeable:   vm.Purgeable * pageSize,
		Speculative: vm.Speculative * pageSize,
		FreePages:   vm.Free * pageSize,
		PageSize:    pageSize,
	}
	snap.Used = snap.Active + snap.Wired + snap.Compressed

	// Counters are sampled separately from hw.memsize and can briefly
	// exceed it.
	if snap.Used < total {
		snap.Free = total - snap.Used
	}

	return snap, nil
}
