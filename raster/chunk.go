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

// A chunk is a fixed-length run of ChunkWidth samples, the atomic
// transfer unit between pipeline stages. Chunks are plain []T slices of
// exactly that length; there is no wrapper type, so grid rows can hand
// out chunk views without copying.

// ChunksPerRow returns ceil(width / chunkWidth): the number of chunks
// needed to cover one row, including the final padded chunk when width
// is not a multiple of chunkWidth.
func ChunksPerRow(width, chunkWidth int) int {
	return (width + chunkWidth - 1) / chunkWidth
}

// TotalChunks returns the number of chunks in a height x width grid at
// the given chunk width.
func TotalChunks(height, width, chunkWidth int) int {
	return height * ChunksPerRow(width, chunkWidth)
}

// NewChunk allocates a zeroed chunk of the given width.
func NewChunk[T Sample](chunkWidth int) []T {
	return make([]T, chunkWidth)
}
