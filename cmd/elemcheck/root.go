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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-elementary/elementary/internal/config"
	"github.com/go-elementary/elementary/internal/harness"
	"github.com/go-elementary/elementary/internal/logging"
	"github.com/go-elementary/elementary/internal/workerpool"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// newPool sizes a worker pool from the configuration. Callers close it.
func (a *app) newPool() *workerpool.Pool {
	pool := workerpool.New(a.cfg.Workers)
	a.log.Debug("worker pool started", zap.Int("workers", pool.NumWorkers()))
	return pool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	flags := config.Default()

	root := &cobra.Command{
		Use:          "elemcheck",
		Short:        "Check elem math functions against the standard library",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(logging.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
			}, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}

			a.cfg = cfg
			a.log = log
			log.Debug("configured",
				zap.Int("samples", cfg.Samples),
				zap.Uint64("seed", cfg.Seed),
				zap.Int("workers", cfg.Workers),
				zap.Int("batch", cfg.Batch))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&flags.Samples, "samples", flags.Samples, "random inputs per function")
	pf.Uint64Var(&flags.Seed, "seed", flags.Seed, "sampler seed")
	pf.IntVar(&flags.Workers, "workers", flags.Workers, "worker pool size (0 = GOMAXPROCS)")
	pf.IntVar(&flags.Batch, "batch", flags.Batch, "samples per worker batch")
	pf.Float64Var(&flags.Tolerance, "tol", flags.Tolerance, "override every function's tolerance (0 = per function)")
	pf.StringVar(&flags.Logging.Level, "log-level", flags.Logging.Level, "log level: debug, info, warn, error")
	pf.BoolVar(&flags.Logging.Development, "log-dev", flags.Logging.Development, "human-readable console logs")

	root.AddCommand(
		newCompareCmd(a),
		newSpecialCmd(a),
		newEvalCmd(),
		newHostCmd(),
		newConstantsCmd(),
	)
	return root
}

// applyFlags copies the flags set on the command line over cfg.
func applyFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	f := cmd.Flags()
	if f.Changed("samples") {
		cfg.Samples = flags.Samples
	}
	if f.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if f.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if f.Changed("batch") {
		cfg.Batch = flags.Batch
	}
	if f.Changed("tol") {
		cfg.Tolerance = flags.Tolerance
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = flags.Logging.Level
	}
	if f.Changed("log-dev") {
		cfg.Logging.Development = flags.Logging.Development
	}
}

// selectFuncs resolves names to registry entries; no names means all.
func selectFuncs(names []string) ([]harness.Func, error) {
	if len(names) == 0 {
		return harness.Registry(), nil
	}
	funcs := make([]harness.Func, 0, len(names))
	for _, name := range names {
		f, err := harness.Lookup(name)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, f)
	}
	return funcs, nil
}

var titler = cases.Title(language.English)

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n\n", titler.String(title))
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func fmtErr(x float64) string {
	return strconv.FormatFloat(x, 'e', 2, 64)
}
