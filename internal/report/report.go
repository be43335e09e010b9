// Package report turns before/after snapshots into the two lines the
// command prints.
package report

import (
	"fmt"
	"io"

	"github.com/CristiGvl/picoFreeRAM/internal/memory"
)

const mib = 1024 * 1024

// Outcome is the estimated effect of a reclaim attempt
type Outcome struct {
	FreedMB float64 `json:"freed_mb"`
	Percent float64 `json:"freed_percent"`
}

// Estimate approximates how much memory a reclaim attempt freed.
//
// It uses the drop in used memory if there was one, otherwise the rise in
// free memory. When either counter moved at all but the estimate is under
// 1 MB, it reports 1 MB. That floor is a display policy, not a measurement.
// A missing snapshot yields zero.
func Estimate(before, after *memory.Snapshot) Outcome {
	if before == nil || after == nil {
		return Outcome{}
	}

	var freed float64
	switch {
	case before.Used > after.Used:
		freed = float64(before.Used-after.Used) / mib
	case after.Free > before.Free:
		freed = float64(after.Free-before.Free) / mib
	}

	changed := before.Used != after.Used || before.Free != after.Free
	if freed < 1 && changed {
		freed = 1
	}

	total := after.Total
	if total == 0 {
		total = before.Total
	}

	out := Outcome{FreedMB: freed}
	if total > 0 {
		out.Percent = freed * mib / float64(total) * 100
	}
	return out
}

// Printer writes the command's user-facing lines
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Start prints the start notice
func (p *Printer) Start() error {
	_, err := fmt.Fprintln(p.w, "Cleaning...")
	return err
}

// Done prints the completion line
func (p *Printer) Done(o Outcome) error {
	_, err := fmt.Fprintf(p.w, "Clean completed, freed %.0fMB/%.1f%%\n", o.FreedMB, o.Percent)
	return err
}
