// Copyright 2026 go-rasterstream Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package raster

// Grid is a single-channel 2D sample array whose rows are padded to a
// whole number of chunks. The padding samples are zero-valued and stay
// zero unless the caller writes them; they are not part of the logical
// grid and must be stripped from results.
type Grid[T Sample] struct {
	data       []T
	width      int
	height     int
	stride     int // samples per row, a multiple of chunkWidth
	chunkWidth int
}

// NewGrid creates a zeroed grid with the specified logical dimensions
// and chunk width. Non-positive dimensions yield an empty grid.
func NewGrid[T Sample](width, height, chunkWidth int) *Grid[T] {
	if width <= 0 || height <= 0 || chunkWidth <= 0 {
		return &Grid[T]{chunkWidth: max(chunkWidth, 0)}
	}

	stride := ChunksPerRow(width, chunkWidth) * chunkWidth
	return &Grid[T]{
		data:       make([]T, stride*height),
		width:      width,
		height:     height,
		stride:     stride,
		chunkWidth: chunkWidth,
	}
}

// Width returns the logical grid width in samples.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Stride returns the number of samples per row, including padding.
func (g *Grid[T]) Stride() int {
	return g.stride
}

// ChunkWidth returns the number of samples per chunk.
func (g *Grid[T]) ChunkWidth() int {
	return g.chunkWidth
}

// ChunksPerRow returns the number of chunks covering one row.
func (g *Grid[T]) ChunksPerRow() int {
	if g.chunkWidth == 0 {
		return 0
	}
	return g.stride / g.chunkWidth
}

// TotalChunks returns the number of chunks in the grid.
func (g *Grid[T]) TotalChunks() int {
	return g.height * g.ChunksPerRow()
}

// Row returns a mutable slice for the specified row, padding included.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height || g.data == nil {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.stride]
}

// RowSlice returns a mutable slice for the specified row, limited to
// the logical width (excluding padding).
func (g *Grid[T]) RowSlice(y int) []T {
	if y < 0 || y >= g.height || g.data == nil {
		return nil
	}
	start := y * g.stride
	return g.data[start : start+g.width]
}

// Chunk returns the chunk at (row y, chunk column c) as a length-
// ChunkWidth view into the grid's storage.
func (g *Grid[T]) Chunk(y, c int) []T {
	if y < 0 || y >= g.height || c < 0 || c >= g.ChunksPerRow() {
		return nil
	}
	start := y*g.stride + c*g.chunkWidth
	return g.data[start : start+g.chunkWidth : start+g.chunkWidth]
}

// ChunkAt returns the idx-th chunk in raster order. Equivalent to
// Chunk(idx/ChunksPerRow, idx%ChunksPerRow).
func (g *Grid[T]) ChunkAt(idx int) []T {
	cpr := g.ChunksPerRow()
	if cpr == 0 || idx < 0 || idx >= g.height*cpr {
		return nil
	}
	return g.Chunk(idx/cpr, idx%cpr)
}

// At returns the value at position (x, y).
func (g *Grid[T]) At(x, y int) T {
	if x < 0 || x >= g.width || y < 0 || y >= g.height || g.data == nil {
		var zero T
		return zero
	}
	return g.data[y*g.stride+x]
}

// Set sets the value at position (x, y).
func (g *Grid[T]) Set(x, y int, value T) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height || g.data == nil {
		return
	}
	g.data[y*g.stride+x] = value
}

// Fill sets every sample, padding included, to the specified value.
func (g *Grid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clear sets every sample to zero.
func (g *Grid[T]) Clear() {
	clear(g.data)
}

// Clone creates a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	clone := &Grid[T]{
		data:       make([]T, len(g.data)),
		width:      g.width,
		height:     g.height,
		stride:     g.stride,
		chunkWidth: g.chunkWidth,
	}
	copy(clone.data, g.data)
	return clone
}

// SameShape returns true if both grids have the same logical
// dimensions.
func SameShape[T, U Sample](a *Grid[T], b *Grid[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Equal reports whether two grids have identical shape and identical
// logical content. Padding samples are ignored.
func Equal[T Sample](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for y := 0; y < a.height; y++ {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x := range ra {
			if ra[x] != rb[x] {
				return false
			}
		}
	}
	return true
}
