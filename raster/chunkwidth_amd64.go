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

//go:build amd64

package raster

import "golang.org/x/sys/cpu"

// DefaultChunkWidth returns a chunk width matched to the widest vector
// unit the CPU offers, counted in 8-bit samples: 64 with AVX-512, 32
// with AVX2, 16 otherwise. Correctness never depends on the value —
// any width >= 1 produces identical results — it only sizes the unit
// of work the compiler can auto-vectorize over.
func DefaultChunkWidth() int {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	default:
		return 16
	}
}
