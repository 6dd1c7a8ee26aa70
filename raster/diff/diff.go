// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/ajroetker/go-rasterstream/raster"
	"github.com/ajroetker/go-rasterstream/raster/workerpool"
)

// Quantize maps one chunk pair to a quantized-difference chunk. For
// each sample, d = |a-b|; the output is the Low level when d < tLow,
// Mid when tLow <= d < tHigh, and High otherwise. dst may alias a or b.
//
// All three slices must have the same length; a mismatch is a caller
// contract violation and panics.
func Quantize[T raster.Sample](dst, a, b []T, tLow, tHigh int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("diff: mismatched chunk lengths")
	}

	low, mid, high := raster.Levels[T]()
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		if d < 0 {
			d = -d
		}
		switch {
		case d < tLow:
			dst[i] = low
		case d < tHigh:
			dst[i] = mid
		default:
			dst[i] = high
		}
	}
}

// QuantizeGrid runs Quantize over a whole grid pair in raster order,
// padding samples included (zero padding quantizes to a uniform level,
// and the window stage's border policy keeps it out of visible output).
// All grids must share the same shape and chunk width.
func QuantizeGrid[T raster.Sample](dst, a, b *raster.Grid[T], tLow, tHigh int32) {
	for y := 0; y < a.Height(); y++ {
		Quantize(dst.Row(y), a.Row(y), b.Row(y), tLow, tHigh)
	}
}

// QuantizeGridParallel is QuantizeGrid with rows fanned out over the
// pool. Output is bit-identical to QuantizeGrid.
func QuantizeGridParallel[T raster.Sample](pool *workerpool.Pool, dst, a, b *raster.Grid[T], tLow, tHigh int32) {
	pool.ParallelFor(a.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			Quantize(dst.Row(y), a.Row(y), b.Row(y), tLow, tHigh)
		}
	})
}
