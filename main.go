package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/CristiGvl/picoFreeRAM/internal/config"
	"github.com/CristiGvl/picoFreeRAM/internal/logging"
	"github.com/CristiGvl/picoFreeRAM/internal/memory"
	"github.com/CristiGvl/picoFreeRAM/internal/platform"
	"github.com/CristiGvl/picoFreeRAM/internal/reclaim"
	"github.com/CristiGvl/picoFreeRAM/internal/report"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger := logging.WithRunID(logging.New(cfg.Logging, os.Stderr))
	if cfgErr != nil {
		logger.Warn("using default config", "error", cfgErr)
	}

	run(context.Background(), logger)

	// Partial failures are logged, never turned into a non-zero exit.
	os.Exit(0)
}

func run(ctx context.Context, logger *slog.Logger) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		logger.Warn("platform validation failed", "error", err)
	} else if info, err := platform.Describe(ctx); err == nil {
		logger.Debug("host",
			"platform", info.Platform,
			"version", info.PlatformVersion,
			"kernel", info.KernelVersion,
			"arch", info.KernelArch,
		)
	}

	printer := report.NewPrinter(os.Stdout)
	if err := printer.Start(); err != nil {
		logger.Error("write failed", "error", err)
	}

	reader := memory.NewReader()

	before, err := reader.GetInfo(ctx)
	if err != nil {
		logger.Warn("reading memory before reclaim", "error", err)
	}

	res, err := reclaim.New(logger).Induce(ctx)
	if err != nil {
		logger.Warn("reclaim aborted", "error", err)
	} else {
		logger.Info("reclaim finished",
			"target_bytes", res.Target,
			"allocated_bytes", res.Allocated,
			"mappings", res.Mappings,
			"truncated", res.Truncated,
		)
	}

	after, err := reader.GetInfo(ctx)
	if err != nil {
		logger.Warn("reading memory after reclaim", "error", err)
	}

	if err := printer.Done(report.Estimate(before, after)); err != nil {
		logger.Error("write failed", "error", err)
	}
}
