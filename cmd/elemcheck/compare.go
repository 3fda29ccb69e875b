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

	"github.com/spf13/cobra"

	"github.com/go-elementary/elementary/internal/harness"
	"github.com/go-elementary/elementary/internal/hostinfo"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [func...]",
		Short: "Compare functions against the standard library on random inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			funcs, err := selectFuncs(args)
			if err != nil {
				return err
			}

			opts := harness.Options{
				Samples:   a.cfg.Samples,
				Seed:      a.cfg.Seed,
				Batch:     a.cfg.Batch,
				Tolerance: a.cfg.Tolerance,
				Logger:    a.log,
			}

			pool := a.newPool()
			defer pool.Close()

			reports := make([]harness.Report, 0, len(funcs))
			for _, f := range funcs {
				r, err := harness.Compare(cmd.Context(), pool, f, opts)
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}

			out := cmd.OutOrStdout()
			heading(out, "accuracy report")
			fmt.Fprintf(out, "host: %s\n\n", hostinfo.Detect())

			t := newTable(out, "func", "inputs", "failures", "max err", "mean err", "p99 err", "worst input", "tol")
			failed := 0
			for _, r := range reports {
				if !r.OK() {
					failed++
				}
				tol := fmtErr(r.Tol)
				if r.Exact {
					tol = "exact"
				}
				t.Append([]string{
					r.Name,
					strconv.Itoa(r.Count),
					strconv.Itoa(r.Failures),
					fmtErr(r.MaxErr),
					fmtErr(r.MeanErr),
					fmtErr(r.P99Err),
					worstInput(r),
					tol,
				})
			}
			t.Render()

			for _, r := range reports {
				for _, s := range r.Examples {
					fmt.Fprintf(out, "FAIL %s(%s) = %s, want %s\n", r.Name, args2(r.Arity, s), fmtFloat(s.Got), fmtFloat(s.Want))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d functions out of tolerance", failed, len(reports))
			}
			return nil
		},
	}
}

func worstInput(r harness.Report) string {
	if r.Count == 0 {
		return "-"
	}
	return args2(r.Arity, r.Worst)
}

func args2(arity int, s harness.Sample) string {
	if arity == 2 {
		return fmtFloat(s.X) + ", " + fmtFloat(s.Y)
	}
	return fmtFloat(s.X)
}
