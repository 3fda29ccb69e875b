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

	"github.com/spf13/cobra"

	"github.com/go-elementary/elementary/internal/harness"
)

func newSpecialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "special [func...]",
		Short: "Check NaN, infinity and boundary inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			funcs, err := selectFuncs(args)
			if err != nil {
				return err
			}

			pool := a.newPool()
			defer pool.Close()

			results := make([][]harness.Mismatch, len(funcs))
			pool.ParallelFor(len(funcs), func(start, end int) {
				for i := start; i < end; i++ {
					results[i] = harness.CheckSpecial(funcs[i])
				}
			})

			counts := map[string]int{}
			for _, c := range harness.SpecialCases() {
				counts[c.Func]++
			}

			out := cmd.OutOrStdout()
			heading(out, "special values")
			t := newTable(out, "func", "cases", "mismatches")
			total := 0
			for i, f := range funcs {
				total += len(results[i])
				t.Append([]string{f.Name, fmt.Sprint(counts[f.Name]), fmt.Sprint(len(results[i]))})
			}
			t.Render()

			for i, f := range funcs {
				for _, m := range results[i] {
					in := fmtFloat(m.Case.X)
					if f.Arity() == 2 {
						in += ", " + fmtFloat(m.Case.Y)
					}
					fmt.Fprintf(out, "FAIL %s(%s) = %s, want %s\n", f.Name, in, fmtFloat(m.Got), fmtFloat(m.Case.Want))
				}
			}

			if total > 0 {
				a.log.Warn("special value mismatches")
				return fmt.Errorf("%d special value mismatches", total)
			}
			return nil
		},
	}
}
