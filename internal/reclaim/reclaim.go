// Package reclaim nudges the kernel into reclaiming inactive, purgeable and
// speculative pages by briefly committing an equal amount of anonymous memory
// and then releasing it.
package reclaim

import (
	"context"
	"log/slog"

	"github.com/CristiGvl/picoFreeRAM/internal/memory"
)

const (
	// BlockSize is the size of every mapping except possibly the last.
	BlockSize = 1 << 20

	// FillByte is written to every byte of a mapping to force the kernel
	// to back it with physical pages.
	FillByte byte = 0xFF
)

// Mapper creates and releases anonymous private read/write mappings
type Mapper interface {
	Map(size int) ([]byte, error)
	Unmap(region []byte) error
	// RelievePressure asks the process allocator to return cached pages
	// to the kernel.
	RelievePressure()
}

// Result describes one reclaim attempt
type Result struct {
	Target    uint64 `json:"target_bytes"`
	Allocated uint64 `json:"allocated_bytes"`
	Mappings  int    `json:"mappings"`
	// Truncated is set when a mapping failed before Target was reached.
	Truncated bool `json:"truncated"`
}

// Inducer runs reclaim attempts against a host
type Inducer struct {
	host   memory.Host
	mapper Mapper
	logger *slog.Logger
}

// NewInducer creates an inducer over the given host queries and mapper
func NewInducer(host memory.Host, mapper Mapper, logger *slog.Logger) *Inducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inducer{
		host:   host,
		mapper: mapper,
		logger: logger.With("component", "reclaim"),
	}
}

// New creates an inducer for the current platform
func New(logger *slog.Logger) *Inducer {
	return NewInducer(memory.NewHost(), NewMapper(), logger)
}

// Induce measures the reclaimable memory, commits and releases that much
// anonymous memory, then asks the allocator to give its caches back.
// Only a failed measurement is reported as an error; a mapping failure
// ends the allocation loop early and the attempt still succeeds.
func (in *Inducer) Induce(ctx context.Context) (*Result, error) {
	snap, err := memory.Query(in.host)
	if err != nil {
		return nil, err
	}

	res := &Result{Target: snap.Reclaimable()}
	if res.Target == 0 {
		in.logger.DebugContext(ctx, "nothing to reclaim")
		return res, nil
	}

	in.logger.DebugContext(ctx, "inducing memory pressure",
		"target_bytes", res.Target,
		"inactive_bytes", snap.Inactive,
		"purgeable_bytes", snap.Purgeable,
		"speculative_bytes", snap.Speculative,
	)

	in.pressure(ctx, res)
	in.mapper.RelievePressure()

	in.logger.DebugContext(ctx, "memory pressure released",
		"allocated_bytes", res.Allocated,
		"mappings", res.Mappings,
		"truncated", res.Truncated,
	)
	return res, nil
}

// pressure runs the allocate-and-commit loop. The ledger is drained on
// return no matter how the loop ends.
func (in *Inducer) pressure(ctx context.Context, res *Result) {
	ledger := &Ledger{}
	defer func() {
		if err := ledger.Release(in.mapper); err != nil {
			in.logger.DebugContext(ctx, "release failed", "error", err)
		}
	}()

	for res.Allocated < res.Target {
		size := nextSize(res.Target - res.Allocated)

		region, err := in.mapper.Map(size)
		if err != nil {
			in.logger.DebugContext(ctx, "mapping failed, stopping early",
				"size", size,
				"allocated_bytes", res.Allocated,
				"error", err,
			)
			res.Truncated = true
			break
		}

		commit(region)
		ledger.Append(region)
		res.Allocated += uint64(size)
	}

	res.Mappings = ledger.Len()
}

// nextSize returns a full block, or the remainder when less than a block
// is left.
func nextSize(remaining uint64) int {
	if remaining < BlockSize {
		return int(remaining)
	}
	return BlockSize
}

// commit writes FillByte to every byte of region
func commit(region []byte) {
	if len(region) == 0 {
		return
	}
	region[0] = FillByte
	for n := 1; n < len(region); n *= 2 {
		copy(region[n:], region[:n])
	}
}
