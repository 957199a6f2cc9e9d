// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the ioroofline command.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hpcio/ioroofline/darshanfmt"
	"github.com/hpcio/ioroofline/metrics"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Run executes the command line in os.Args.
func Run() ExitCode {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// globals holds the state shared by every subcommand.
type globals struct {
	verbose bool
	suffix  string

	stdout, stderr io.Writer
	log            *slog.Logger
}

func execute(args []string, stdout, stderr io.Writer) error {
	g := &globals{stdout: stdout, stderr: stderr}
	rootCmd := &cobra.Command{
		Use:           "ioroofline",
		Short:         "Empirical I/O roofline charts from darshan counter totals.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().StringVar(&g.suffix, "suffix", darshanfmt.DefaultSuffix, "read only files whose name ends in `suffix`")

	rootCmd.AddCommand(
		newPlotCmd(g).Command(),
		newTableCmd(g).Command(),
		newPeaksCmd(g).Command(),
	)

	err := rootCmd.Execute()
	if err != nil {
		g.logger().Error("ioroofline failed", "error", err)
	}
	return err
}

// logger returns the logger for this run, creating it on first use so
// that it sees the parsed flags.
func (g *globals) logger() *slog.Logger {
	if g.log == nil {
		g.log = newLogger(g.stderr, g.verbose)
	}
	return g.log
}

func (g *globals) loadOptions() []metrics.LoadOption {
	return []metrics.LoadOption{metrics.WithSuffix(g.suffix), metrics.WithLogger(g.logger())}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}
