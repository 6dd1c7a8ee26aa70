// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-rasterstream/raster"
	"github.com/ajroetker/go-rasterstream/raster/diff"
	"github.com/ajroetker/go-rasterstream/raster/stencil"
)

// RunConcurrent executes the pipelined model: the difference stage,
// the window stage and the sink each run as their own goroutine,
// connected by bounded channels of Options.QueueDepth chunks. Within a
// queue, chunk i is always delivered before chunk i+1; the producer
// closes its queue after the last chunk and the close propagates
// downstream, so a run needs no cancellation plumbing.
//
// Output is bit-identical to Run. A stage that observes its input
// queue closed before the expected chunk count, or receives more than
// expected, fails the run with raster.ErrStreamProtocol; dst contents
// are undefined after any error.
func (d *Driver[T]) RunConcurrent(a, b, dst *raster.Grid[T]) error {
	if err := d.check(a, b, dst); err != nil {
		return err
	}
	win, err := stencil.New[T](d.cfg)
	if err != nil {
		return err
	}

	total := d.cfg.TotalChunks()
	depth := d.opts.queueDepth()
	tLow, tHigh := d.cfg.ThreshLow, d.cfg.ThreshHigh

	d.opts.logger().Debug("concurrent run",
		"width", d.cfg.Width, "height", d.cfg.Height,
		"chunkWidth", d.cfg.ChunkWidth, "chunks", total, "queueDepth", depth)

	// Chunk buffers cycle producer -> window -> sink -> pool, so a run
	// allocates O(queue depth) chunks rather than O(total).
	buffers := sync.Pool{New: func() any {
		return raster.NewChunk[T](d.cfg.ChunkWidth)
	}}

	quantized := make(chan []T, depth)
	filtered := make(chan []T, depth)
	errs := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(3)

	// Difference stage: pure per-chunk map over the input pair.
	go func() {
		defer wg.Done()
		defer close(quantized)
		for i := 0; i < total; i++ {
			buf := buffers.Get().([]T)
			diff.Quantize(buf, a.ChunkAt(i), b.ChunkAt(i), tLow, tHigh)
			quantized <- buf
		}
	}()

	// Window stage: owns all line buffer and window state; nothing
	// else touches it.
	go func() {
		defer wg.Done()
		defer close(filtered)

		emit := func(out []T) {
			buf := buffers.Get().([]T)
			copy(buf, out)
			filtered <- buf
		}

		for i := 0; i < total; i++ {
			in, ok := <-quantized
			if !ok {
				errs <- fmt.Errorf("%w: quantized queue closed after %d of %d chunks",
					raster.ErrStreamProtocol, i, total)
				return
			}
			out, valid := win.Step(in)
			buffers.Put(in)
			if valid {
				emit(out)
			}
		}

		if extra, ok := <-quantized; ok {
			buffers.Put(extra)
			// Unblock the producer before aborting.
			for range quantized {
			}
			errs <- fmt.Errorf("%w: quantized queue delivered more than %d chunks",
				raster.ErrStreamProtocol, total)
			return
		}

		for ds := win.DrainSteps(); ds > 0; ds-- {
			if out, valid := win.Step(nil); valid {
				emit(out)
			}
		}
	}()

	// Sink: writes output chunks to dst in arrival order, which is
	// strictly increasing outIdx order.
	go func() {
		defer wg.Done()
		outIdx := 0
		for out := range filtered {
			if outIdx < total {
				copy(dst.ChunkAt(outIdx), out)
			}
			outIdx++
			buffers.Put(out)
		}
		if outIdx != total {
			errs <- fmt.Errorf("%w: sink received %d of %d chunks",
				raster.ErrStreamProtocol, outIdx, total)
		}
	}()

	wg.Wait()
	close(errs)
	return <-errs
}
