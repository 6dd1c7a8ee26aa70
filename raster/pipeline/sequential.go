// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"github.com/ajroetker/go-rasterstream/raster"
	"github.com/ajroetker/go-rasterstream/raster/diff"
	"github.com/ajroetker/go-rasterstream/raster/stencil"
)

// Run executes the sequential multi-pass model: quantize the whole
// grid pair into an intermediate grid, then stream that grid through
// the window stage chunk by chunk, including the drain iterations that
// flush the final rows. Deterministic and single-threaded (the
// quantize pass optionally uses Options.Pool, which does not change
// results).
//
// dst holds the filtered grid on success. On error dst is untouched.
func (d *Driver[T]) Run(a, b, dst *raster.Grid[T]) error {
	if err := d.check(a, b, dst); err != nil {
		return err
	}
	win, err := stencil.New[T](d.cfg)
	if err != nil {
		return err
	}

	q := raster.NewGrid[T](d.cfg.Width, d.cfg.Height, d.cfg.ChunkWidth)
	if d.opts.Pool != nil {
		diff.QuantizeGridParallel(d.opts.Pool, q, a, b, d.cfg.ThreshLow, d.cfg.ThreshHigh)
	} else {
		diff.QuantizeGrid(q, a, b, d.cfg.ThreshLow, d.cfg.ThreshHigh)
	}

	total := d.cfg.TotalChunks()
	d.opts.logger().Debug("sequential run",
		"width", d.cfg.Width, "height", d.cfg.Height,
		"chunkWidth", d.cfg.ChunkWidth, "chunks", total)

	outIdx := 0
	for i := 0; i < total; i++ {
		if out, ok := win.Step(q.ChunkAt(i)); ok {
			copy(dst.ChunkAt(outIdx), out)
			outIdx++
		}
	}
	for ds := win.DrainSteps(); ds > 0; ds-- {
		if out, ok := win.Step(nil); ok {
			copy(dst.ChunkAt(outIdx), out)
			outIdx++
		}
	}
	return nil
}
