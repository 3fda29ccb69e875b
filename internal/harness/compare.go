// Copyright 2025 go-elementary Authors
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

package harness

import (
	"context"
	"fmt"
	stdmath "math"
	"sort"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/go-elementary/elementary/internal/workerpool"
)

// maxExamples bounds the failing inputs kept in a Report.
const maxExamples = 5

// Options controls a comparison sweep.
type Options struct {
	Samples int
	Seed    uint64
	Batch   int

	// Tolerance replaces the function's own tolerance when positive.
	Tolerance float64

	Logger *zap.Logger
}

// Sample is one evaluated input.
type Sample struct {
	X, Y      float64
	Got, Want float64

	// Err is |got-want| / max(1, |want|); zero when both sides are the same
	// special value and +Inf when only one side is.
	Err float64
}

// Report summarizes a sweep of one function.
type Report struct {
	Name     string
	Arity    int
	Count    int
	Failures int
	Tol      float64
	Exact    bool

	// Worst is the sample with the largest error.
	Worst Sample

	// Error statistics over the samples with a finite error.
	MaxErr  float64
	MeanErr float64
	P99Err  float64

	// Examples holds the first few failures in input order.
	Examples []Sample

	Elapsed time.Duration
}

// OK reports whether every sample matched.
func (r Report) OK() bool {
	return r.Failures == 0
}

// Compare evaluates f against its reference over the probes and
// opts.Samples random inputs, spread over pool in batches.
func Compare(ctx context.Context, pool *workerpool.Pool, f Func, opts Options) (Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Tolerance > 0 {
		f.Tol = opts.Tolerance
	}
	batch := opts.Batch
	if batch <= 0 {
		batch = 4096
	}

	start := time.Now()
	in := NewSampler(opts.Seed).Draw(f, opts.Samples)
	samples := make([]Sample, in.Len())

	log.Debug("comparing",
		zap.String("func", f.Name),
		zap.Int("inputs", len(samples)),
		zap.Uint64("seed", opts.Seed),
		zap.Float64("tol", f.Tol))

	err := pool.Batches(ctx, len(samples), batch, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			x, y := in.At(i)
			got, want := f.Eval(x, y), f.Reference(x, y)
			samples[i] = Sample{X: x, Y: y, Got: got, Want: want, Err: sampleErr(got, want)}
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("compare %s: %w", f.Name, err)
	}

	r := summarize(f, samples)
	r.Elapsed = time.Since(start)

	log.Info("compared",
		zap.String("func", f.Name),
		zap.Int("count", r.Count),
		zap.Int("failures", r.Failures),
		zap.Float64("max_err", r.MaxErr),
		zap.Duration("elapsed", r.Elapsed))
	return r, nil
}

func sampleErr(got, want float64) float64 {
	switch {
	case got == want || (got != got && want != want):
		return 0
	case got != got || want != want || stdmath.IsInf(got, 0) || stdmath.IsInf(want, 0):
		return stdmath.Inf(1)
	}
	return stdmath.Abs(got-want) / stdmath.Max(1, stdmath.Abs(want))
}

func summarize(f Func, samples []Sample) Report {
	r := Report{
		Name:  f.Name,
		Arity: f.Arity(),
		Count: len(samples),
		Tol:   f.Tol,
		Exact: f.Exact,
	}

	finite := make([]float64, 0, len(samples))
	worst := -1
	for i, s := range samples {
		if !f.Match(s.Got, s.Want) {
			r.Failures++
			if len(r.Examples) < maxExamples {
				r.Examples = append(r.Examples, s)
			}
		}
		if worst < 0 || s.Err > samples[worst].Err {
			worst = i
		}
		if !stdmath.IsInf(s.Err, 0) {
			finite = append(finite, s.Err)
		}
	}
	if worst >= 0 {
		r.Worst = samples[worst]
	}

	if len(finite) > 0 {
		sort.Float64s(finite)
		r.MaxErr = floats.Max(finite)
		r.MeanErr = stat.Mean(finite, nil)
		r.P99Err = stat.Quantile(0.99, stat.Empirical, finite, nil)
	}
	return r
}
