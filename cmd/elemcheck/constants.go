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

package main

import (
	stdmath "math"

	"github.com/spf13/cobra"

	"github.com/go-elementary/elementary/elem"
)

type namedConstant struct {
	name  string
	value float64
	ref   float64 // NaN when the standard library has no counterpart
}

func constantTable() []namedConstant {
	none := stdmath.NaN()
	return []namedConstant{
		{"Pi", elem.Pi, stdmath.Pi},
		{"E", elem.E, stdmath.E},
		{"Ln2", elem.Ln2, stdmath.Ln2},
		{"Ln10", elem.Ln10, stdmath.Ln10},
		{"Phi", elem.Phi, stdmath.Phi},
		{"InvPhi", elem.InvPhi, 1 / stdmath.Phi},
		{"Sqrt2", elem.Sqrt2, stdmath.Sqrt2},
		{"Sqrt3", elem.Sqrt3, stdmath.Sqrt(3)},
		{"Sqrt5", elem.Sqrt5, stdmath.Sqrt(5)},
		{"Catalan", elem.Catalan, none},
		{"Cahen", elem.Cahen, none},
		{"Eps6", elem.Eps6, none},
		{"Eps10", elem.Eps10, none},
		{"Eps20", elem.Eps20, none},
		{"E10", elem.E10, none},
	}
}

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the named constants next to their standard-library values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading(out, "named constants")

			t := newTable(out, "name", "value", "math", "diff")
			for _, c := range constantTable() {
				ref, diff := "-", "-"
				if c.ref == c.ref {
					ref = fmtFloat(c.ref)
					diff = fmtErr(stdmath.Abs(c.value - c.ref))
				}
				t.Append([]string{c.name, fmtFloat(c.value), ref, diff})
			}
			t.Render()
			return nil
		},
	}
}
