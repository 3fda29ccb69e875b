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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-elementary/elementary/elem"
	"github.com/go-elementary/elementary/internal/harness"
)

// namedArgs lets eval take constant names in place of numbers.
var namedArgs = map[string]float64{
	"pi":      elem.Pi,
	"-pi":     -elem.Pi,
	"e":       elem.E,
	"ln2":     elem.Ln2,
	"ln10":    elem.Ln10,
	"phi":     elem.Phi,
	"invphi":  elem.InvPhi,
	"sqrt2":   elem.Sqrt2,
	"sqrt3":   elem.Sqrt3,
	"sqrt5":   elem.Sqrt5,
	"catalan": elem.Catalan,
	"cahen":   elem.Cahen,
}

func parseArg(s string) (float64, error) {
	if v, ok := namedArgs[strings.ToLower(s)]; ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", s, err)
	}
	return v, nil
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <func> <x> [y]",
		Short: "Evaluate one function on the given arguments",
		Example: `  elemcheck eval pow 2 0.5
  elemcheck eval sin pi
  elemcheck eval atan2 -0 -1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := harness.Lookup(args[0])
			if err != nil {
				return err
			}
			if len(args)-1 != f.Arity() {
				return fmt.Errorf("%s takes %d argument(s), got %d", f.Name, f.Arity(), len(args)-1)
			}

			var x, y float64
			if x, err = parseArg(args[1]); err != nil {
				return err
			}
			if f.Arity() == 2 {
				if y, err = parseArg(args[2]); err != nil {
					return err
				}
			}

			got, want := f.Eval(x, y), f.Reference(x, y)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "elem:      %s\n", fmtFloat(got))
			fmt.Fprintf(out, "reference: %s\n", fmtFloat(want))
			if f.Match(got, want) {
				fmt.Fprintln(out, "match:     yes")
			} else {
				fmt.Fprintln(out, "match:     no")
			}
			return nil
		},
	}
	// Arguments such as -1 or -0 are numbers, not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
