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

// Package elem implements scalar floating-point math functions from
// elementary arithmetic only. No function in this package calls into the
// standard math package for computation; only the IEEE-754 sentinels
// (math.Inf, math.NaN) are taken from the host.
//
// # Functions
//
// Rounding and predicates:
//   - Abs(x T) T - magnitude of a signed integer
//   - Fabs(x) - |x|
//   - Trunc, Ceil, Floor - integer rounding via int64 truncation
//   - Fmod(x, y) - remainder with the sign of x
//
// Trigonometric (Maclaurin series after reduction modulo 2π):
//   - Sin, Cos, Tan
//
// Inverse trigonometric:
//   - Asin (Maclaurin series), Acos, Atan (reduced to Asin)
//
// Transcendental:
//   - Sqrt (Babylonian method)
//   - Exp (Maclaurin series, reflected for negative x)
//   - Log (range reduction by powers of two, then series in x-1)
//   - Pow (IEEE-754 special-case cascade, square-and-multiply for
//     integer exponents, Exp(y*Log(x)) otherwise)
//
// # Accuracy
//
// Results are bounded-error approximations, not correctly rounded:
//   - Typical error: a few ULP, validated against the standard library to 1e-6
//   - Asin and Acos converge slowly as the argument nears ±1
//   - Special value handling: ±Inf, NaN (see each function)
//
// Every function is pure and safe for concurrent use.
package elem
