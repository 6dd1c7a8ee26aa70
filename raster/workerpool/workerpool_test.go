// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers: got %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers: got %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor_CoversAllIndices(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	var touched [1000]atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			touched[i].Add(1)
		}
	})

	for i := range touched {
		if got := touched[i].Load(); got != 1 {
			t.Fatalf("index %d touched %d times, want 1", i, got)
		}
	}
}

func TestParallelFor_SmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var count atomic.Int32
	pool.ParallelFor(3, func(start, end int) {
		count.Add(int32(end - start))
	})
	if count.Load() != 3 {
		t.Errorf("covered %d indices, want 3", count.Load())
	}
}

func TestParallelFor_ZeroN(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("ParallelFor(0) should not invoke fn")
	}
}

func TestParallelFor_Reuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for i := 0; i < 50; i++ {
		pool.ParallelFor(100, func(start, end int) {
			total.Add(int64(end - start))
		})
	}
	if total.Load() != 5000 {
		t.Errorf("total work: got %d, want 5000", total.Load())
	}
}

func TestClose_Idempotent(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()
}
