// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting texel
// copy loops across goroutines.
//
// A Pool is created once and shared by every parallel swizzle call, so large
// textures do not pay goroutine spawn costs per plane or per slice.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, mip := range mips {
//	    swizzle.ParallelPlane(pool, mip, out, true)
//	}
//
// A nil *Pool is valid and runs every loop on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held shared while a loop sends chunks and exclusively by
	// Close, so workC is never closed under a sender. Workers drain chunks
	// already queued before they exit.
	mu     sync.RWMutex
	closed bool
}

// task is one chunk of a parallel loop.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. Work already handed out completes, and loops
// started afterwards run on the calling goroutine. Close may overlap
// in-flight loops.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// ParallelFor calls fn over [0, n) split into one contiguous chunk per
// worker, and blocks until every chunk is done.
//
// fn receives (start, end) and must process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForGrain(n, 1, fn)
}

// ParallelForGrain is ParallelFor with a minimum chunk size. Chunks never
// hold fewer than grain items (except the last), which keeps tiny rows from
// being handed out one at a time.
func (p *Pool) ParallelForGrain(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = 1
	}
	workers := min(p.NumWorkers(), (n+grain-1)/grain)
	if workers <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
