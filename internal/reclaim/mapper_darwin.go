//go:build darwin

package reclaim

import (
	"github.com/CristiGvl/picoFreeRAM/internal/mach"
	"golang.org/x/sys/unix"
)

// DarwinMapper maps anonymous memory with mmap(2)
type DarwinMapper struct{}

// NewMapper creates a mapper for the current platform
func NewMapper() Mapper {
	return &DarwinMapper{}
}

// Map returns a private anonymous read/write region of size bytes
func (m *DarwinMapper) Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// Unmap releases a region returned by Map
func (m *DarwinMapper) Unmap(region []byte) error {
	return unix.Munmap(region)
}

// RelievePressure calls malloc_zone_pressure_relief on every zone
func (m *DarwinMapper) RelievePressure() {
	mach.MallocZonePressureRelief()
}
