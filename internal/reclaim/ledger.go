package reclaim

import (
	"errors"
	"fmt"
	"unsafe"
)

// Mapping is one anonymous region created during a reclaim attempt
type Mapping struct {
	Addr uintptr
	Size int

	region []byte
}

// Ledger records every mapping of a single reclaim attempt so all of them
// can be released together.
type Ledger struct {
	entries []Mapping
	total   uint64
}

// Append records a mapped region
func (l *Ledger) Append(region []byte) {
	l.entries = append(l.entries, Mapping{
		Addr:   uintptr(unsafe.Pointer(unsafe.SliceData(region))),
		Size:   len(region),
		region: region,
	})
	l.total += uint64(len(region))
}

// Len returns the number of outstanding mappings
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Total returns the summed size of outstanding mappings
func (l *Ledger) Total() uint64 {
	return l.total
}

// Entries returns a copy of the outstanding mappings
func (l *Ledger) Entries() []Mapping {
	out := make([]Mapping, len(l.entries))
	copy(out, l.entries)
	return out
}

// Release unmaps every recorded region and empties the ledger. Every entry
// is attempted even if an earlier one fails.
func (l *Ledger) Release(m Mapper) error {
	var errs []error
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if err := m.Unmap(e.region); err != nil {
			errs = append(errs, fmt.Errorf("unmap %#x (%d bytes): %w", e.Addr, e.Size, err))
		}
	}

	clear(l.entries)
	l.entries = l.entries[:0]
	l.total = 0

	return errors.Join(errs...)
}
