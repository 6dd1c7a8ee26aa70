// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"io"
	"log/slog"

	"github.com/ajroetker/go-rasterstream/raster"
	"github.com/ajroetker/go-rasterstream/raster/workerpool"
)

// DefaultQueueDepth is the capacity, in chunks, of each inter-stage
// queue in the concurrent model.
const DefaultQueueDepth = 16

// Options tunes a Driver. The zero value is ready to use.
type Options struct {
	// Logger receives run-level debug records. When nil, logging is
	// discarded.
	Logger *slog.Logger

	// QueueDepth overrides the inter-stage queue capacity of the
	// concurrent model. Zero means DefaultQueueDepth. The value never
	// affects results, only how far stages can run ahead.
	QueueDepth int

	// Pool, when set, lets the sequential model fan the quantize pass
	// out over the pool's workers. Results are identical either way.
	Pool *workerpool.Pool
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) queueDepth() int {
	if o.QueueDepth > 0 {
		return o.QueueDepth
	}
	return DefaultQueueDepth
}

// Driver runs the two-stage transform for one fixed configuration.
// A Driver is stateless between runs and safe for concurrent runs from
// multiple goroutines; each run allocates its own stage state.
type Driver[T raster.Sample] struct {
	cfg  raster.Config
	opts Options
}

// New creates a driver, validating the configuration once. All
// configuration and shape errors surface here or at the top of a run,
// never mid-stream.
func New[T raster.Sample](cfg raster.Config, opts Options) (*Driver[T], error) {
	if err := raster.ValidateFor[T](cfg); err != nil {
		return nil, err
	}
	return &Driver[T]{cfg: cfg, opts: opts}, nil
}

// Config returns the driver's run configuration.
func (d *Driver[T]) Config() raster.Config {
	return d.cfg
}

// check validates grid shapes against the run configuration.
func (d *Driver[T]) check(a, b, dst *raster.Grid[T]) error {
	return raster.CheckShape(d.cfg, a, b, dst)
}

// Run executes the sequential model with a throwaway driver. See
// Driver.Run.
func Run[T raster.Sample](cfg raster.Config, a, b, dst *raster.Grid[T]) error {
	d, err := New[T](cfg, Options{})
	if err != nil {
		return err
	}
	return d.Run(a, b, dst)
}

// RunConcurrent executes the pipelined model with a throwaway driver.
// See Driver.RunConcurrent.
func RunConcurrent[T raster.Sample](cfg raster.Config, a, b, dst *raster.Grid[T]) error {
	d, err := New[T](cfg, Options{})
	if err != nil {
		return err
	}
	return d.RunConcurrent(a, b, dst)
}

// Reference computes the same transform as a driver run using a flat
// full-frame formulation with no chunking, no line buffer and no
// window: quantize every sample, then apply the 3x3 kernel directly.
// It exists as an independent oracle for validating the streaming
// engine and is not built for speed.
func Reference[T raster.Sample](cfg raster.Config, a, b, dst *raster.Grid[T]) error {
	if err := raster.ValidateFor[T](cfg); err != nil {
		return err
	}
	if err := raster.CheckShape(cfg, a, b, dst); err != nil {
		return err
	}

	low, mid, high := raster.Levels[T]()
	q := raster.NewGrid[T](cfg.Width, cfg.Height, cfg.ChunkWidth)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			d := int32(a.At(x, y)) - int32(b.At(x, y))
			if d < 0 {
				d = -d
			}
			switch {
			case d < cfg.ThreshLow:
				q.Set(x, y, low)
			case d < cfg.ThreshHigh:
				q.Set(x, y, mid)
			default:
				q.Set(x, y, high)
			}
		}
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if y == 0 || y == cfg.Height-1 || x == 0 || x == cfg.Width-1 {
				dst.Set(x, y, 0)
				continue
			}
			v := 5 * int32(q.At(x, y))
			v -= int32(q.At(x, y-1))
			v -= int32(q.At(x, y+1))
			v -= int32(q.At(x-1, y))
			v -= int32(q.At(x+1, y))
			dst.Set(x, y, raster.Clip[T](v))
		}
	}
	return nil
}
