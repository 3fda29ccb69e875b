// Copyright 2025 go-elementary Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for sweeping large
// sample sets. A Pool is created once per checker run and reused for every
// function compared, so the goroutines are spawned a single time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Batches(ctx, len(samples), 4096, func(start, end int) error {
//	    return evaluate(samples[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once pending work drains. It is safe to call
// more than once; a closed pool runs later work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Batches calls fn over [0, n) in batches of batchSize indices. Workers
// grab the next batch with an atomic counter, so uneven batches balance
// themselves.
//
// No new batch is started once ctx is done or any call to fn has failed.
// Batches returns after all workers have stopped, with the first error
// seen: the one returned by fn, or ctx.Err().
func (p *Pool) Batches(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	var (
		nextBatch atomic.Int64
		stopped   atomic.Bool
		errOnce   sync.Once
		firstErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stopped.Store(true)
	}
	run := func() {
		for !stopped.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			start := int(nextBatch.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			if err := fn(start, min(start+batchSize, n)); err != nil {
				fail(err)
				return
			}
		}
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() || workers == 1 {
		run()
		return firstErr
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: run, barrier: &wg}
	}
	wg.Wait()
	return firstErr
}
