// Copyright 2025 go-elementary Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestBatches(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tt := range []struct {
		name      string
		n         int
		batchSize int
	}{
		{"even", 1000, 10},
		{"ragged", 1003, 64},
		{"single batch", 5, 100},
		{"zero batch size", 17, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]atomic.Int32, tt.n)
			err := pool.Batches(context.Background(), tt.n, tt.batchSize, func(start, end int) error {
				for i := start; i < end; i++ {
					hits[i].Add(1)
				}
				return nil
			})
			if err != nil {
				t.Fatalf("Batches() error = %v", err)
			}
			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestBatchesError(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("stops handing out work", func(t *testing.T) {
		pool := New(1)
		defer pool.Close()

		var calls atomic.Int32
		err := pool.Batches(context.Background(), 100, 1, func(start, end int) error {
			calls.Add(1)
			if start == 3 {
				return errBoom
			}
			return nil
		})
		if !errors.Is(err, errBoom) {
			t.Fatalf("Batches() error = %v, want %v", err, errBoom)
		}
		if got := calls.Load(); got != 4 {
			t.Errorf("fn called %d times, want 4", got)
		}
	})

	t.Run("parallel", func(t *testing.T) {
		pool := New(4)
		defer pool.Close()

		err := pool.Batches(context.Background(), 1000, 10, func(start, end int) error {
			if start == 500 {
				return errBoom
			}
			return nil
		})
		if !errors.Is(err, errBoom) {
			t.Fatalf("Batches() error = %v, want %v", err, errBoom)
		}
	})
}

func TestBatchesCanceled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := pool.Batches(ctx, 100, 10, func(start, end int) error {
		called.Store(true)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Batches() error = %v, want context.Canceled", err)
	}
	if called.Load() {
		t.Error("Batches ran work on a canceled context")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	err := pool.Batches(context.Background(), n, 7, func(start, end int) error {
		for i := start; i < end; i++ {
			results[i]++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Batches() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2+1 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2+1)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkBatches(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Batches(ctx, 1000, 10, func(start, end int) error {
			for j := start; j < end; j++ {
				_ = j * j
			}
			return nil
		})
	}
}
