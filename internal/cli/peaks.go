// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hpcio/ioroofline/peaks"
	"github.com/hpcio/ioroofline/report"
)

// peakFlags selects the ceilings drawn on a chart.
type peakFlags struct {
	dir  string
	file string
}

func (f *peakFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.dir, "peaks-dir", "", "measure additional ceilings from the reports in `dir`")
	fs.StringVar(&f.file, "peaks-file", "", "read ceilings from the YAML `file` instead of the built-in table")
}

// resolve returns the measured ceilings from the peaks directory, if
// any, followed by the configured or built-in ones.
func (f *peakFlags) resolve(g *globals) ([]peaks.Peak, error) {
	manual := peaks.Builtin()
	if f.file != "" {
		var err error
		manual, err = peaks.LoadFile(f.file)
		if err != nil {
			return nil, err
		}
		g.logger().Debug("loaded peaks", "path", f.file, "count", len(manual))
	}
	if f.dir == "" {
		return manual, nil
	}
	ps, err := peaks.FromDirectory(f.dir, manual, g.loadOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "measuring peaks")
	}
	g.logger().Debug("measured peaks", "dir", f.dir, "count", len(ps)-len(manual))
	return ps, nil
}

type peaksCmd struct {
	g      *globals
	peaks  peakFlags
	format string
}

func newPeaksCmd(g *globals) *peaksCmd {
	return &peaksCmd{g: g}
}

func (c *peaksCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peaks",
		Short: "Print the ceilings a chart would draw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := c.peaks.resolve(c.g)
			if err != nil {
				return err
			}
			switch c.format {
			case "text":
				report.PeaksText(c.g.stdout, ps)
				return nil
			case "yaml":
				return peaks.Write(c.g.stdout, ps)
			}
			return errors.Errorf("invalid format %q (want text or yaml)", c.format)
		},
	}
	c.peaks.register(cmd.Flags())
	cmd.Flags().StringVar(&c.format, "format", "text", "output format (text, yaml)")
	return cmd
}
