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

// Package raster provides the shared data model for the streaming grid
// engine: chunk-padded 2D sample grids, chunk geometry, quantization
// levels, sample clipping, and run configuration.
//
// A grid is H rows by W columns of small unsigned integer samples. Rows
// are stored with a stride padded up to a whole number of chunks of
// ChunkWidth samples, so every row is an exact sequence of chunks and
// the streaming stages never need special handling at row ends.
//
// Samples are generic over small unsigned integer types:
//
//	g := raster.NewGrid[uint8](640, 480, raster.DefaultChunkWidth())
//	for y := 0; y < g.Height(); y++ {
//	    row := g.RowSlice(y)
//	    // fill row
//	}
package raster
