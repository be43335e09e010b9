//go:build !darwin

package reclaim

import (
	"fmt"
)

// UnsupportedMapper is a fallback for unsupported platforms
type UnsupportedMapper struct{}

// NewMapper creates a fallback mapper for unsupported platforms
func NewMapper() Mapper {
	return &UnsupportedMapper{}
}

// Map returns an error for unsupported platforms
func (m *UnsupportedMapper) Map(size int) ([]byte, error) {
	return nil, fmt.Errorf("memory reclaim not supported on this platform")
}

// Unmap returns an error for unsupported platforms
func (m *UnsupportedMapper) Unmap(region []byte) error {
	return fmt.Errorf("memory reclaim not supported on this platform")
}

// RelievePressure is a no-op on unsupported platforms
func (m *UnsupportedMapper) RelievePressure() {}
