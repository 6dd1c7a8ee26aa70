// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package stencil

import (
	"github.com/ajroetker/go-rasterstream/raster"
)

// Sharpen kernel applied to interior samples:
//
//	[ 0 -1  0 ]
//	[-1  5 -1 ]
//	[ 0 -1  0 ]
//
// Border rows and columns are forced to zero regardless of content.

// Window is the stateful window stage. It consumes quantized chunks in
// raster order via Step and emits output chunks with a fixed lag of
// ChunksPerRow+1 iterations.
//
// A Window is single-run, single-goroutine state: it must not be
// shared between concurrent runs. Reset prepares it for reuse.
type Window[T raster.Sample] struct {
	width        int
	height       int
	chunkWidth   int
	chunksPerRow int
	totalChunks  int

	iter int

	// lb holds the two most recently completed rows of quantized
	// chunks, indexed by chunk column: lb[0] is the older row.
	lb [2][][]T

	// win is the 3x3 chunk neighborhood; win[1][1] always holds the
	// chunk being finalized for output.
	win [3][3][]T

	// out is the scratch output chunk, reused across Steps.
	out []T
}

// New creates a window stage for cfg. The configuration is validated
// once here; a Window never fails after construction.
func New[T raster.Sample](cfg raster.Config) (*Window[T], error) {
	if err := raster.ValidateFor[T](cfg); err != nil {
		return nil, err
	}

	w := &Window[T]{
		width:        cfg.Width,
		height:       cfg.Height,
		chunkWidth:   cfg.ChunkWidth,
		chunksPerRow: cfg.ChunksPerRow(),
		totalChunks:  cfg.TotalChunks(),
	}
	for r := range w.lb {
		w.lb[r] = make([][]T, w.chunksPerRow)
		for c := range w.lb[r] {
			w.lb[r][c] = make([]T, w.chunkWidth)
		}
	}
	for r := range w.win {
		for c := range w.win[r] {
			w.win[r][c] = make([]T, w.chunkWidth)
		}
	}
	w.out = make([]T, w.chunkWidth)
	return w, nil
}

// DrainSteps returns the number of trailing Step(nil) calls needed to
// flush the stage after the last input chunk: ChunksPerRow+1.
func (w *Window[T]) DrainSteps() int {
	return w.chunksPerRow + 1
}

// TotalChunks returns the number of input chunks one run consumes,
// which equals the number of output chunks it emits.
func (w *Window[T]) TotalChunks() int {
	return w.totalChunks
}

// Reset re-zeroes the line buffer and window so the stage can run
// again. No allocation.
func (w *Window[T]) Reset() {
	w.iter = 0
	for r := range w.lb {
		for c := range w.lb[r] {
			clear(w.lb[r][c])
		}
	}
	for r := range w.win {
		for c := range w.win[r] {
			clear(w.win[r][c])
		}
	}
}

// auxChunks returns the number of chunk buffers the stage holds. It
// exists so tests can pin the 2*ChunksPerRow + 9 bound.
func (w *Window[T]) auxChunks() int {
	return len(w.lb[0]) + len(w.lb[1]) + 9
}

// Step advances the stage by one iteration. While input remains
// (fewer than TotalChunks fetch steps so far), in must be the next
// quantized chunk in raster order; during the DrainSteps trailing
// iterations, in must be nil and a virtual zero chunk takes its place.
//
// When the iteration lands on a valid output position, Step returns
// (chunk, true); the chunk is scratch storage valid only until the
// next Step, so callers that keep it must copy. Otherwise it returns
// (nil, false).
//
// Passing nil while input is still expected, a chunk during drain, a
// chunk of the wrong length, or stepping past LoopLimit are caller
// contract violations and panic.
func (w *Window[T]) Step(in []T) ([]T, bool) {
	iter := w.iter
	fetching := iter < w.totalChunks
	switch {
	case iter >= w.totalChunks+w.chunksPerRow+1:
		panic("stencil: Step past end of run")
	case fetching && len(in) != w.chunkWidth:
		panic("stencil: expected an input chunk")
	case !fetching && in != nil:
		panic("stencil: input chunk during drain")
	}
	w.iter++

	// Shift the window left. The buffers rotate: the evicted left
	// column becomes the right column's storage for this iteration.
	for r := 0; r < 3; r++ {
		w.win[r][0], w.win[r][1], w.win[r][2] = w.win[r][1], w.win[r][2], w.win[r][0]
	}

	// Fill the right column and roll the line buffer. During drain the
	// line buffer is left untouched and the right column reads as
	// zero chunks.
	col := iter % w.chunksPerRow
	if fetching {
		copy(w.win[0][2], w.lb[0][col])
		copy(w.win[1][2], w.lb[1][col])
		copy(w.win[2][2], in)
		copy(w.lb[0][col], w.lb[1][col])
		copy(w.lb[1][col], in)
	} else {
		clear(w.win[0][2])
		clear(w.win[1][2])
		clear(w.win[2][2])
	}

	outIdx := iter - (w.chunksPerRow + 1)
	if outIdx < 0 || outIdx >= w.totalChunks {
		return nil, false
	}

	row := outIdx / w.chunksPerRow
	chunkCol := outIdx % w.chunksPerRow
	rowBorder := row == 0 || row == w.height-1

	center := w.win[1][1]
	north := w.win[0][1]
	south := w.win[2][1]
	west := w.win[1][0]
	east := w.win[1][2]

	p := w.chunkWidth
	for k := 0; k < p; k++ {
		j := chunkCol*p + k
		if rowBorder || j == 0 || j == w.width-1 {
			w.out[k] = 0
			continue
		}

		v := 5 * int32(center[k])
		v -= int32(north[k])
		v -= int32(south[k])
		if k > 0 {
			v -= int32(center[k-1])
		} else {
			v -= int32(west[p-1])
		}
		if k < p-1 {
			v -= int32(center[k+1])
		} else {
			v -= int32(east[0])
		}
		w.out[k] = raster.Clip[T](v)
	}
	return w.out, true
}
