// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

// Package diff implements the pointwise difference stage: the absolute
// difference of two sample streams, quantized to three fixed levels by
// a pair of thresholds.
//
// The stage is a pure per-chunk map with no internal state. Every
// sample is independent of every other, so the grid-level entry points
// are free to process rows in any order or in parallel; results are
// identical either way.
package diff
