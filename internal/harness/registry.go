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

// Package harness checks elem and derived functions against the standard
// library: randomized reference comparison, fixed special-value tables and
// error statistics. It is the engine behind cmd/elemcheck and the
// cross-package tests.
package harness

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/go-elementary/elementary/elem"
	"github.com/go-elementary/elementary/elem/contrib/derived"
)

// ErrUnknownFunction is returned by Lookup for names not in the registry.
var ErrUnknownFunction = errors.New("unknown function")

// DefaultTolerance is the accuracy every non-exact function is held to,
// scaled by max(1, |want|).
const DefaultTolerance = elem.Eps6

// Domain is a closed sampling interval for one argument.
type Domain struct {
	Lo, Hi float64
}

// Contains reports whether x lies in d.
func (d Domain) Contains(x float64) bool {
	return x >= d.Lo && x <= d.Hi
}

// Func describes one checked function. Exactly one of Unary and Binary is
// set, with the matching reference.
type Func struct {
	Name string

	Unary     func(x float64) float64
	UnaryRef  func(x float64) float64
	Binary    func(x, y float64) float64
	BinaryRef func(x, y float64) float64

	// Domains holds one sampling interval per argument.
	Domains []Domain

	Tol float64

	// Exact functions must reproduce the reference bit for bit (up to the
	// sign of zero).
	Exact bool
}

// Arity returns the number of arguments.
func (f Func) Arity() int {
	if f.Binary != nil {
		return 2
	}
	return 1
}

// Eval calls the implementation. y is ignored by unary functions.
func (f Func) Eval(x, y float64) float64 {
	if f.Binary != nil {
		return f.Binary(x, y)
	}
	return f.Unary(x)
}

// Reference calls the standard-library counterpart.
func (f Func) Reference(x, y float64) float64 {
	if f.BinaryRef != nil {
		return f.BinaryRef(x, y)
	}
	return f.UnaryRef(x)
}

// Match reports whether got is acceptable for want under f's rules.
func (f Func) Match(got, want float64) bool {
	if f.Exact {
		return got == want || (got != got && want != want)
	}
	return Within(got, want, f.Tol)
}

func unary(name string, impl, ref func(float64) float64, lo, hi float64) Func {
	return Func{
		Name:     name,
		Unary:    impl,
		UnaryRef: ref,
		Domains:  []Domain{{lo, hi}},
		Tol:      DefaultTolerance,
	}
}

func binary(name string, impl, ref func(float64, float64) float64, x, y Domain) Func {
	return Func{
		Name:      name,
		Binary:    impl,
		BinaryRef: ref,
		Domains:   []Domain{x, y},
		Tol:       DefaultTolerance,
	}
}

func exact(f Func) Func {
	f.Exact = true
	return f
}

var registry = []Func{
	exact(unary("abs",
		func(x float64) float64 { return float64(elem.Abs(int64(x))) },
		func(x float64) float64 { return stdmath.Abs(stdmath.Trunc(x)) },
		-1e15, 1e15)),
	exact(unary("fabs", elem.Fabs, stdmath.Abs, -elem.E10, elem.E10)),
	exact(unary("trunc", elem.Trunc, stdmath.Trunc, -elem.E10, elem.E10)),
	exact(unary("ceil", elem.Ceil, stdmath.Ceil, -elem.E10, elem.E10)),
	exact(unary("floor", elem.Floor, stdmath.Floor, -elem.E10, elem.E10)),
	exact(binary("fmod", elem.Fmod, stdmath.Mod,
		Domain{-elem.E10, elem.E10}, Domain{-elem.E10, elem.E10})),

	unary("sin", elem.Sin, stdmath.Sin, -1e6, 1e6),
	unary("cos", elem.Cos, stdmath.Cos, -1e6, 1e6),
	unary("tan", elem.Tan, stdmath.Tan, -1.5, 1.5),

	unary("asin", elem.Asin, stdmath.Asin, -0.999, 0.999),
	unary("acos", elem.Acos, stdmath.Acos, -0.999, 0.999),
	unary("atan", elem.Atan, stdmath.Atan, -1e6, 1e6),

	unary("sqrt", elem.Sqrt, stdmath.Sqrt, 0, elem.E10),
	unary("exp", elem.Exp, stdmath.Exp, -700, 700),
	unary("log", elem.Log, stdmath.Log, elem.Eps20, elem.E10),
	binary("pow", elem.Pow, stdmath.Pow, Domain{elem.Eps6, 40}, Domain{-5, 5}),

	binary("atan2", derived.Atan2, stdmath.Atan2, Domain{-10, 10}, Domain{-10, 10}),
	binary("hypot", derived.Hypot, stdmath.Hypot,
		Domain{-elem.E10, elem.E10}, Domain{-elem.E10, elem.E10}),
	unary("cbrt", derived.Cbrt, stdmath.Cbrt, -elem.E10, elem.E10),
	unary("log2", derived.Log2, stdmath.Log2, elem.Eps20, elem.E10),
	unary("log10", derived.Log10, stdmath.Log10, elem.Eps20, elem.E10),
	unary("exp2", derived.Exp2, stdmath.Exp2, -1000, 1000),
	unary("exp10", derived.Exp10, func(x float64) float64 { return stdmath.Pow(10, x) }, -300, 300),
}

// Registry returns every checked function, in a stable order.
func Registry() []Func {
	return append([]Func(nil), registry...)
}

// Names returns the registered function names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a function by name.
func Lookup(name string) (Func, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return Func{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// Within reports whether got matches want to within tol, scaled by |want|
// once it exceeds 1. NaN matches NaN and an infinity matches only itself.
func Within(got, want, tol float64) bool {
	switch {
	case want != want:
		return got != got
	case stdmath.IsInf(want, 0):
		return got == want
	}
	return stdmath.Abs(got-want) <= tol*stdmath.Max(1, stdmath.Abs(want))
}
