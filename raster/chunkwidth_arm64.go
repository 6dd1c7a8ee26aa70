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

//go:build arm64

package raster

import "golang.org/x/sys/cpu"

// DefaultChunkWidth returns a chunk width matched to the CPU's vector
// unit, counted in 8-bit samples. NEON registers are 128 bits wide, so
// 16 samples per chunk; 32 when SVE is present, since SVE vectors are
// at least that wide on server-class parts.
func DefaultChunkWidth() int {
	if cpu.ARM64.HasSVE {
		return 32
	}
	return 16
}
