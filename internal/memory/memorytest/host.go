// Package memorytest provides a scripted memory.Host for tests.
package memorytest

import (
	"github.com/CristiGvl/picoFreeRAM/internal/memory"
)

// Host returns fixed answers, or the configured error, for each query.
type Host struct {
	Total    uint64
	Page     uint64
	VM       memory.VMStatistics
	TotalErr error
	PageErr  error
	VMErr    error
}

// TotalMemory returns h.Total or h.TotalErr
func (h *Host) TotalMemory() (uint64, error) {
	if h.TotalErr != nil {
		return 0, h.TotalErr
	}
	return h.Total, nil
}

// PageSize returns h.Page or h.PageErr
func (h *Host) PageSize() (uint64, error) {
	if h.PageErr != nil {
		return 0, h.PageErr
	}
	return h.Page, nil
}

// VMStatistics returns a copy of h.VM or h.VMErr
func (h *Host) VMStatistics() (*memory.VMStatistics, error) {
	if h.VMErr != nil {
		return nil, h.VMErr
	}
	vm := h.VM
	return &vm, nil
}
