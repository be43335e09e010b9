//go:build !darwin

package mach

import "fmt"

// HostPageSize returns an error for unsupported platforms
func HostPageSize() (uint64, error) {
	return 0, fmt.Errorf("mach host queries not supported on this platform")
}

// HostVMStatistics64 returns an error for unsupported platforms
func HostVMStatistics64() (*VMStatistics, error) {
	return nil, fmt.Errorf("mach host queries not supported on this platform")
}

// MallocZonePressureRelief is a no-op on unsupported platforms
func MallocZonePressureRelief() {}
