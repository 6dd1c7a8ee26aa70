// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-rasterstream/raster"
)

func benchGrids(b *testing.B, cfg raster.Config) (x, y, out *raster.Grid[uint8]) {
	b.Helper()
	rng := rand.New(rand.NewSource(20))
	x = randomGrid(rng, cfg)
	y = randomGrid(rng, cfg)
	out = raster.NewGrid[uint8](cfg.Width, cfg.Height, cfg.ChunkWidth)
	return x, y, out
}

func BenchmarkRun(b *testing.B) {
	cfg := testConfig(1024, 1024, 64)
	x, y, out := benchGrids(b, cfg)
	d, err := New[uint8](cfg, Options{})
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.SetBytes(int64(cfg.Width * cfg.Height))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := d.Run(x, y, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunConcurrent(b *testing.B) {
	cfg := testConfig(1024, 1024, 64)
	x, y, out := benchGrids(b, cfg)
	d, err := New[uint8](cfg, Options{})
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.SetBytes(int64(cfg.Width * cfg.Height))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := d.RunConcurrent(x, y, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReference(b *testing.B) {
	cfg := testConfig(1024, 1024, 64)
	x, y, out := benchGrids(b, cfg)

	b.SetBytes(int64(cfg.Width * cfg.Height))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Reference(cfg, x, y, out); err != nil {
			b.Fatal(err)
		}
	}
}
