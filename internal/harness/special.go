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

	"github.com/go-elementary/elementary/elem"
)

// SpecialCase is one fixed input with its required output.
type SpecialCase struct {
	Func string
	X, Y float64
	Want float64
}

// Mismatch is a special case the implementation got wrong.
type Mismatch struct {
	Case SpecialCase
	Got  float64
}

var (
	posInf = stdmath.Inf(1)
	negInf = stdmath.Inf(-1)
	nan    = stdmath.NaN()
	negZ   = stdmath.Copysign(0, -1)
)

// powOperands are paired with each other to cover the power-function
// edge-case table.
var powOperands = []float64{negInf, -10, -1, -0.1, 0, 0.1, 1, 10, posInf, nan}

func one(name string, pairs ...float64) []SpecialCase {
	cases := make([]SpecialCase, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cases = append(cases, SpecialCase{Func: name, X: pairs[i], Want: pairs[i+1]})
	}
	return cases
}

func two(name string, triples ...float64) []SpecialCase {
	cases := make([]SpecialCase, 0, len(triples)/3)
	for i := 0; i+2 < len(triples); i += 3 {
		cases = append(cases, SpecialCase{Func: name, X: triples[i], Y: triples[i+1], Want: triples[i+2]})
	}
	return cases
}

// SpecialCases returns the NaN, infinity and boundary table for every
// registered function.
func SpecialCases() []SpecialCase {
	var cases []SpecialCase
	add := func(c []SpecialCase) { cases = append(cases, c...) }

	add(one("abs", -5, 5, 0, 0, 7, 7))
	add(one("fabs", -3.5, 3.5, negZ, 0, negInf, posInf, posInf, posInf, nan, nan))
	add(one("trunc", 2.7, 2, -2.7, -2, 1e19, 1e19, -1e300, -1e300, posInf, posInf, negInf, negInf, nan, nan))
	add(one("ceil", 2.7, 3, -2.7, -2, 1e19, 1e19, posInf, posInf, negInf, negInf, nan, nan))
	add(one("floor", 2.7, 2, -2.7, -3, 1e19, 1e19, posInf, posInf, negInf, negInf, nan, nan))
	add(two("fmod",
		5.5, 2, 1.5,
		-5.5, 2, -1.5,
		1, posInf, 1,
		1, 0, nan,
		0, 0, nan,
		posInf, 1, nan,
		negInf, posInf, nan,
		nan, 1, nan,
		1, nan, nan,
		1e300, 1e-10, 5.476641984772742e-11,
		-1e300, 1e-10, -5.476641984772742e-11,
		1, 5e-324, 0))

	for _, name := range []string{"sin", "cos", "tan"} {
		add(one(name, posInf, nan, negInf, nan, nan, nan))
	}
	add(one("sin", 0, 0, elem.Pi/2, 1))
	add(one("cos", 0, 1, elem.Pi, -1))
	add(one("tan", 0, 0, elem.Pi/4, 1))

	for _, name := range []string{"asin", "acos"} {
		add(one(name, 2, nan, -2, nan, 1+elem.Eps10, nan, posInf, nan, nan, nan))
	}
	add(one("asin", 0, 0, 1, elem.Pi/2, -1, -elem.Pi/2))
	add(one("acos", 0, elem.Pi/2, 1, 0, -1, elem.Pi))
	add(one("atan", 0, 0, 1, elem.Pi/4, posInf, elem.Pi/2, negInf, -elem.Pi/2, nan, nan))

	add(one("sqrt", 4, 2, 0, 0, -1, nan, posInf, nan, negInf, nan, nan, nan))
	add(one("exp", 0, 1, posInf, posInf, negInf, 0, nan, nan, 1000, posInf, -1000, 0))
	add(one("log", 1, 0, 0, negInf, -1, nan, posInf, posInf, negInf, nan, nan, nan))

	for _, x := range powOperands {
		for _, y := range powOperands {
			add(two("pow", x, y, stdmath.Pow(x, y)))
		}
	}
	add(two("pow", 2, 10, 1024, 2, 0.5, elem.Sqrt2, -8, 1.0/3.0, nan, -1, 1e300, 1))

	add(two("atan2",
		0, 0, 0,
		0, negZ, elem.Pi,
		negZ, negZ, -elem.Pi,
		1, 0, elem.Pi/2,
		-1, 0, -elem.Pi/2,
		posInf, posInf, elem.Pi/4,
		negInf, negInf, -3*elem.Pi/4,
		1, negInf, elem.Pi,
		posInf, 1, elem.Pi/2,
		nan, 1, nan,
		1, nan, nan))
	add(two("hypot", 3, 4, 5, posInf, nan, posInf, nan, negInf, posInf, nan, 1, nan, 0, 0, 0))
	add(one("cbrt", 8, 2, -27, -3, 0, 0, posInf, posInf, negInf, negInf, nan, nan))
	add(one("log2", 8, 3, 1, 0, 0, negInf, -1, nan))
	add(one("log10", 1000, 3, 1, 0, 0, negInf, -1, nan))
	add(one("exp2", 10, 1024, -1, 0.5, posInf, posInf, negInf, 0, nan, nan))
	add(one("exp10", 3, 1000, -2, 0.01, posInf, posInf, negInf, 0, nan, nan))
	return cases
}

// CheckSpecial evaluates every special case registered for f and returns
// the ones it gets wrong.
func CheckSpecial(f Func) []Mismatch {
	var out []Mismatch
	for _, c := range SpecialCases() {
		if c.Func != f.Name {
			continue
		}
		if got := f.Eval(c.X, c.Y); !f.Match(got, c.Want) {
			out = append(out, Mismatch{Case: c, Got: got})
		}
	}
	return out
}
