//go:build darwin

package memory

import (
	"github.com/CristiGvl/picoFreeRAM/internal/mach"
	"golang.org/x/sys/unix"
)

// DarwinHost implements the host memory queries for macOS
type DarwinHost struct{}

// newPlatformHost creates a new macOS host
func newPlatformHost() Host {
	return &DarwinHost{}
}

// TotalMemory returns hw.memsize
func (h *DarwinHost) TotalMemory() (uint64, error) {
	return unix.SysctlUint64("hw.memsize")
}

// PageSize returns the Mach host page size
func (h *DarwinHost) PageSize() (uint64, error) {
	return mach.HostPageSize()
}

// VMStatistics returns the HOST_VM_INFO64 page counts
func (h *DarwinHost) VMStatistics() (*VMStatistics, error) {
	vm, err := mach.HostVMStatistics64()
	if err != nil {
		return nil, err
	}

	return &VMStatistics{
		Free:        vm.FreeCount,
		Active:      vm.ActiveCount,
		Inactive:    vm.InactiveCount,
		Wired:       vm.WireCount,
		Compressed:  vm.CompressorPageCount,
		Purgeable:   vm.PurgeableCount,
		Speculative: vm.SpeculativeCount,
	}, nil
}
