// Copyright 2026 go-rasterstream Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// data-parallel grid passes. A Pool is created once and reused across
// many passes, so per-pass goroutine spawning never shows up in the
// profile of chunk-sized work items.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(grid.Height(), func(start, end int) {
//	    for y := start; y < end; y++ {
//	        quantizeRow(y)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at
// creation and live until Close.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
}

// task is one contiguous index range of a ParallelFor call.
type task struct {
	start, end int
	fn         func(start, end int)
	wg         *sync.WaitGroup
}

// New creates a pool with the specified number of workers. If
// numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn(t.start, t.end)
		t.wg.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after in-flight work completes. Close is
// idempotent. ParallelFor must not be called after Close.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range
// per worker, and blocks until every range completes. fn receives
// half-open (start, end) bounds. With n < the worker count, fewer
// ranges are issued; each is non-empty.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	ranges := min(p.numWorkers, n)
	per := n / ranges
	extra := n % ranges

	var wg sync.WaitGroup
	wg.Add(ranges)

	start := 0
	for i := 0; i < ranges; i++ {
		end := start + per
		if i < extra {
			end++
		}
		p.tasks <- task{start: start, end: end, fn: fn, wg: &wg}
		start = end
	}
	wg.Wait()
}
