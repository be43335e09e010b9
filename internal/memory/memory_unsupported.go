//go:build !darwin

package memory

import (
	"fmt"
)

// UnsupportedHost is a fallback for unsupported platforms
type UnsupportedHost struct{}

// newPlatformHost creates a fallback host for unsupported platforms
func newPlatformHost() Host {
	return &UnsupportedHost{}
}

// TotalMemory returns an error for unsupported platforms
func (h *UnsupportedHost) TotalMemory() (uint64, error) {
	return 0, fmt.Errorf("memory statistics not supported on this platform")
}

// PageSize returns an error for unsupported platforms
func (h *UnsupportedHost) PageSize() (uint64, error) {
	return 0, fmt.Errorf("memory statistics not supported on this platform")
}

// VMStatistics returns an error for unsupported platforms
func (h *UnsupportedHost) VMStatistics() (*VMStatistics, error) {
	return nil, fmt.Errorf("memory statistics not supported on this platform")
}
