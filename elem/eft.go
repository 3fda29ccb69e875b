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

// Error-free transformations on float64.
//
// The explicit float64 conversions keep the compiler from fusing a
// multiply with the following add or subtract; a fused result would skip
// the rounding these identities depend on.

const (
	// 2^27 + 1, splits a 53-bit significand into two 26-bit halves.
	splitter = 134217729.0

	// Above this magnitude splitter*x can overflow.
	splitLimit = 1e300
)

func canSplit(x float64) bool {
	return Fabs(x) < splitLimit
}

// split returns hi, lo with hi + lo == x and both halves holding at most
// 26 significant bits (Veltkamp).
func split(x float64) (hi, lo float64) {
	c := float64(splitter * x)
	hi = c - (c - x)
	lo = x - hi
	return hi, lo
}

// twoProd returns p = fl(a*b) and the rounding error e, so that
// p + e == a*b exactly (Dekker).
func twoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	ah, al := split(a)
	bh, bl := split(b)
	e = float64(ah*bh) - p
	e += float64(ah * bl)
	e += float64(al * bh)
	e += float64(al * bl)
	return p, e
}
