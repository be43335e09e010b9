package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Darwin SupportedOS = "darwin"
)

// Info describes the host the command runs on
type Info struct {
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	KernelArch      string `json:"kernel_arch"`
}

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	return GetOS() == Darwin
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: darwin", runtime.GOOS)
	}
	return nil
}

// Describe returns OS and kernel details for the current host
func Describe(ctx context.Context) (*Info, error) {
	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return &Info{
		OS:              hi.OS,
		Platform:        hi.Platform,
		PlatformVersion: hi.PlatformVersion,
		KernelVersion:   hi.KernelVersion,
		KernelArch:      hi.KernelArch,
	}, nil
}
