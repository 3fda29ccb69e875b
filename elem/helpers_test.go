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

package elem

import (
	stdmath "math"
	"math/rand/v2"
)

// probes are the arguments every function is checked at besides its grid.
var probes = []float64{
	0, Pi, E, Ln2, Ln10, Phi, InvPhi, Sqrt2, Sqrt3, Sqrt5,
	Catalan, Cahen, Eps6, Eps10, Eps20, E10,
	-Pi, -E, -Ln2, -Phi, -Eps6, -E10,
	stdmath.Copysign(0, -1),
}

// closeTo reports whether got matches want within tol, scaled by |want|
// once it exceeds 1. NaN matches only NaN and infinities match exactly.
func closeTo(got, want, tol float64) bool {
	if stdmath.IsNaN(want) {
		return stdmath.IsNaN(got)
	}
	if stdmath.IsInf(want, 0) {
		return got == want
	}
	return stdmath.Abs(got-want) <= tol*stdmath.Max(1, stdmath.Abs(want))
}

// grid returns n+1 evenly spaced points from lo to hi inclusive.
func grid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	xs[n] = hi
	return xs
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
