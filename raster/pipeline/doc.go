// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

// Package pipeline composes the difference and window stages into a
// complete run: two input grids in, one filtered grid out.
//
// Two execution models are provided and produce bit-identical output:
//
//   - Driver.Run: sequential multi-pass — quantize the whole grid,
//     then stream it through the window stage. Simple and single
//     threaded, at the cost of a full intermediate grid.
//   - Driver.RunConcurrent: each stage as its own goroutine connected
//     by bounded channels, so chunks flow through the window stage as
//     they are quantized and the intermediate grid never materializes.
//
// Reference is an intentionally naive flat implementation of the same
// transform, used as the independent oracle in tests and examples.
package pipeline
