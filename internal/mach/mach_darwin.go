//go:build darwin

package mach

/*
#include <mach/mach.h>
#include <mach/mach_host.h>
#include <malloc/malloc.h>

static kern_return_t pico_host_page_size(vm_size_t *out) {
	mach_port_t host = mach_host_self();
	kern_return_t kr = host_page_size(host, out);
	mach_port_deallocate(mach_task_self(), host);
	return kr;
}

static kern_return_t pico_host_vm_info64(vm_statistics64_data_t *out) {
	mach_port_t host = mach_host_self();
	mach_msg_type_number_t count = HOST_VM_INFO64_COUNT;
	kern_return_t kr = host_statistics64(host, HOST_VM_INFO64, (host_info64_t)out, &count);
	mach_port_deallocate(mach_task_self(), host);
	return kr;
}

static void pico_pressure_relief(void) {
	malloc_zone_pressure_relief(NULL, 0);
}
*/
import "C"

import "fmt"

// HostPageSize returns the VM page size reported by host_page_size.
func HostPageSize() (uint64, error) {
	var size C.vm_size_t
	if kr := C.pico_host_page_size(&size); kr != C.KERN_SUCCESS {
		return 0, fmt.Errorf("host_page_size: kern_return %d", int(kr))
	}
	return uint64(size), nil
}

// HostVMStatistics64 returns the host-wide HOST_VM_INFO64 counters.
func HostVMStatistics64() (*VMStatistics, error) {
	var vm C.vm_statistics64_data_t
	if kr := C.pico_host_vm_info64(&vm); kr != C.KERN_SUCCESS {
		return nil, fmt.Errorf("host_statistics64: kern_return %d", int(kr))
	}

	return &VMStatistics{
		FreeCount:           uint64(vm.free_count),
		ActiveCount:         uint64(vm.active_count),
		InactiveCount:       uint64(vm.inactive_count),
		WireCount:           uint64(vm.wire_count),
		CompressorPageCount: uint64(vm.compressor_page_count),
		PurgeableCount:      uint64(vm.purgeable_count),
		SpeculativeCount:    uint64(vm.speculative_count),
	}, nil
}

// MallocZonePressureRelief asks every malloc zone to hand unused pages
// back to the kernel.
func MallocZonePressureRelief() {
	C.pico_pressure_relief()
}
