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

import "errors"

var (
	// ErrConfig reports an invalid Config: non-positive dimensions or
	// chunk width, or thresholds that are not strictly ordered within
	// the sample range. Detected once at construction, before any chunk
	// is processed.
	ErrConfig = errors.New("raster: invalid configuration")

	// ErrShapeMismatch reports grids whose height or width disagree
	// with the run configuration.
	ErrShapeMismatch = errors.New("raster: grid shape mismatch")

	// ErrStreamProtocol reports a violated inter-stage contract in the
	// concurrent pipeline: a queue closed before delivering the
	// expected number of chunks, or delivering more than expected.
	// It is fatal; the run aborts without usable output.
	ErrStreamProtocol = errors.New("raster: stream protocol violation")
)
