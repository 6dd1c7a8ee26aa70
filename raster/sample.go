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

import "unsafe"

// Sample is the constraint for grid sample types: small unsigned
// integers. uint8 is the reference configuration; uint16 is supported
// for higher-precision sources.
type Sample interface {
	~uint8 | ~uint16
}

// SampleBits returns the width of T in bits.
func SampleBits[T Sample]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxValue returns the largest representable value of T (255 for uint8,
// 65535 for uint16).
func MaxValue[T Sample]() int32 {
	return int32(1)<<SampleBits[T]() - 1
}

// Levels returns the three quantization levels for T. Low is always 0,
// High is the sample maximum, and Mid is the midpoint (128 for uint8).
func Levels[T Sample]() (low, mid, high T) {
	max := MaxValue[T]()
	return 0, T((max + 1) / 2), T(max)
}

// Clip clamps a signed intermediate value to T's valid range.
// Filter arithmetic routinely produces values outside [0, max].
func Clip[T Sample](v int32) T {
	if v < 0 {
		return 0
	}
	if max := MaxValue[T](); v > max {
		return T(max)
	}
	return T(v)
}
