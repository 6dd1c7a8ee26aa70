// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

// Package stencil implements the streaming 3x3 window stage: a
// Laplacian-style sharpen filter applied to a raster-order chunk
// stream using a two-row line buffer and a 3x3 chunk window, without
// ever holding a full grid.
//
// The stage runs with a fixed lag of ChunksPerRow+1 iterations: the
// first output chunk appears only once a full row of context plus one
// chunk sits behind the window's center. After the last input chunk,
// the same number of drain iterations (fed virtual zero chunks) flush
// the context still held in the window and line buffer.
//
// Auxiliary memory is 2*ChunksPerRow + 9 chunks regardless of grid
// height, which is the point of the design: arbitrarily tall grids
// stream through constant working memory.
package stencil
