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

import "fmt"

// Config fixes the parameters of one engine run. All fields are
// constant for the lifetime of the run; there is no dynamic
// reconfiguration.
type Config struct {
	// Width and Height are the logical grid dimensions in samples.
	Width  int
	Height int

	// ChunkWidth is the number of samples per chunk (P). Rows are
	// padded to a whole number of chunks. Any value >= 1 is valid;
	// DefaultChunkWidth picks a throughput-friendly value.
	ChunkWidth int

	// ThreshLow and ThreshHigh split |a-b| into the three quantization
	// levels: d < ThreshLow -> Low, d < ThreshHigh -> Mid, else High.
	// They must satisfy 0 <= ThreshLow < ThreshHigh <= sample max.
	ThreshLow  int32
	ThreshHigh int32
}

// ChunksPerRow returns the number of chunks covering one row.
func (c Config) ChunksPerRow() int {
	return ChunksPerRow(c.Width, c.ChunkWidth)
}

// TotalChunks returns the number of chunks in the whole grid.
func (c Config) TotalChunks() int {
	return TotalChunks(c.Height, c.Width, c.ChunkWidth)
}

// PaddedWidth returns the row stride in samples.
func (c Config) PaddedWidth() int {
	return c.ChunksPerRow() * c.ChunkWidth
}

// LoopLimit returns the total iteration count of the window stage:
// TotalChunks fetch iterations plus ChunksPerRow+1 drain iterations
// that flush the context still held in the line buffer and window.
func (c Config) LoopLimit() int {
	return c.TotalChunks() + c.ChunksPerRow() + 1
}

// Validate checks the sample-type-independent fields. It is called by
// ValidateFor; use that instead when the sample type is known.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrConfig, c.Width, c.Height)
	}
	if c.ChunkWidth <= 0 {
		return fmt.Errorf("%w: chunk width %d", ErrConfig, c.ChunkWidth)
	}
	if c.ThreshLow < 0 || c.ThreshLow >= c.ThreshHigh {
		return fmt.Errorf("%w: thresholds %d, %d not strictly ordered", ErrConfig, c.ThreshLow, c.ThreshHigh)
	}
	return nil
}

// ValidateFor checks c against the sample type T, additionally
// requiring ThreshHigh to fit the sample range. Every stage constructor
// calls this once and rejects a bad configuration before any chunk is
// processed.
func ValidateFor[T Sample](c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if max := MaxValue[T](); c.ThreshHigh > max {
		return fmt.Errorf("%w: threshold %d exceeds %d-bit sample range", ErrConfig, c.ThreshHigh, SampleBits[T]())
	}
	return nil
}

// CheckShape verifies that every grid matches the configured
// dimensions and chunk width. Grids that disagree in height or width
// are a caller error detected before the run starts.
func CheckShape[T Sample](c Config, grids ...*Grid[T]) error {
	for _, g := range grids {
		if g == nil {
			return fmt.Errorf("%w: nil grid", ErrShapeMismatch)
		}
		if g.Width() != c.Width || g.Height() != c.Height {
			return fmt.Errorf("%w: grid %dx%d, config %dx%d",
				ErrShapeMismatch, g.Width(), g.Height(), c.Width, c.Height)
		}
		if g.ChunkWidth() != c.ChunkWidth {
			return fmt.Errorf("%w: grid chunk width %d, config %d",
				ErrShapeMismatch, g.ChunkWidth(), c.ChunkWidth)
		}
	}
	return nil
}
