// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/hpcio/ioroofline/metrics"
	"github.com/hpcio/ioroofline/roofline"
)

const allModes = "all"

type plotCmd struct {
	g     *globals
	peaks peakFlags

	mode          string
	start, end    float64
	out           string
	width, height float64
}

func newPlotCmd(g *globals) *plotCmd {
	return &plotCmd{g: g}
}

func (c *plotCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <dir>",
		Short: "Draw roofline charts for the reports under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}
	c.peaks.register(cmd.Flags())
	cmd.Flags().StringVar(&c.mode, "mode", allModes, "chart to draw (read, write, aggregated, all)")
	cmd.Flags().Float64Var(&c.start, "start", roofline.DefaultStart, "smallest operational intensity on the x axis")
	cmd.Flags().Float64Var(&c.end, "end", roofline.DefaultEnd, "largest operational intensity on the x axis")
	cmd.Flags().StringVarP(&c.out, "out", "o", "roofline.png", "output `file`; its extension selects the format")
	cmd.Flags().Float64Var(&c.width, "width", 20, "chart width in cm")
	cmd.Flags().Float64Var(&c.height, "height", 15, "chart height in cm")
	return cmd
}

func (c *plotCmd) run(dir string) error {
	modes, err := parseModes(c.mode)
	if err != nil {
		return err
	}
	if !(c.width > 0 && c.height > 0) {
		return errors.Errorf("invalid chart size %vx%v cm", c.width, c.height)
	}
	for _, m := range modes {
		if err := c.options(m).Validate(); err != nil {
			return err
		}
	}

	ps, err := c.peaks.resolve(c.g)
	if err != nil {
		return err
	}
	t, err := metrics.Load(dir, c.g.loadOptions()...)
	if err != nil {
		return err
	}
	c.g.logger().Debug("loaded reports", "dir", dir, "rows", t.Len())

	for _, m := range modes {
		p, err := roofline.Chart(t, ps, c.options(m))
		if err != nil {
			return err
		}
		path := c.out
		if len(modes) > 1 {
			path = modePath(c.out, m)
		}
		if err := roofline.Save(p, path, vg.Length(c.width)*vg.Centimeter, vg.Length(c.height)*vg.Centimeter); err != nil {
			return err
		}
		c.g.logger().Info("wrote chart", "mode", m, "path", path, "points", len(roofline.Points(t, m)))
	}
	return nil
}

func (c *plotCmd) options(m metrics.Mode) roofline.Options {
	opts := roofline.DefaultOptions(m)
	opts.Start, opts.End = c.start, c.end
	return opts
}

func parseModes(s string) ([]metrics.Mode, error) {
	if strings.EqualFold(s, allModes) {
		return metrics.Modes, nil
	}
	m, err := metrics.ParseMode(s)
	if err != nil {
		return nil, err
	}
	return []metrics.Mode{m}, nil
}

// modePath inserts the mode name before the extension of path, so
// "out/roofline.png" becomes "out/roofline-read.png".
func modePath(path string, m metrics.Mode) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + m.String() + ext
}
