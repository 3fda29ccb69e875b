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
	stdmath "math"
	"math/rand/v2"

	"github.com/go-elementary/elementary/elem"
)

// Probes returns the fixed arguments every sweep starts with: the library
// constants, the thresholds, both zeros and the negation of each nonzero
// value.
func Probes() []float64 {
	base := []float64{
		elem.Pi, elem.Eps20, elem.Ln10, elem.E, elem.Sqrt2, elem.Sqrt3,
		elem.Sqrt5, elem.Catalan, elem.Cahen, elem.Ln2, elem.Phi, elem.InvPhi,
	}
	probes := make([]float64, 0, 2*len(base)+2)
	probes = append(probes, 0, stdmath.Copysign(0, -1))
	for _, p := range base {
		probes = append(probes, p, -p)
	}
	return probes
}

// Inputs is a set of argument tuples; Y is nil for unary functions.
type Inputs struct {
	X, Y []float64
}

// Len returns the number of tuples.
func (in Inputs) Len() int {
	return len(in.X)
}

// At returns the i-th tuple.
func (in Inputs) At(i int) (x, y float64) {
	if in.Y != nil {
		return in.X[i], in.Y[i]
	}
	return in.X[i], 0
}

// Sampler draws reproducible inputs from a PCG stream.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded with seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a value drawn uniformly from d.
func (s *Sampler) Uniform(d Domain) float64 {
	return d.Lo + (d.Hi-d.Lo)*s.rng.Float64()
}

// Draw returns the in-domain probes of f followed by n uniform tuples.
// For binary functions the probes are paired with each other.
func (s *Sampler) Draw(f Func, n int) Inputs {
	var in Inputs
	probes := Probes()

	if f.Arity() == 1 {
		d := f.Domains[0]
		for _, p := range probes {
			if d.Contains(p) {
				in.X = append(in.X, p)
			}
		}
		for range n {
			in.X = append(in.X, s.Uniform(d))
		}
		return in
	}

	dx, dy := f.Domains[0], f.Domains[1]
	for _, p := range probes {
		if !dx.Contains(p) {
			continue
		}
		for _, q := range probes {
			if dy.Contains(q) {
				in.X = append(in.X, p)
				in.Y = append(in.Y, q)
			}
		}
	}
	for range n {
		in.X = append(in.X, s.Uniform(dx))
		in.Y = append(in.Y, s.Uniform(dy))
	}
	return in
}
