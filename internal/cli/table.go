// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hpcio/ioroofline/metrics"
	"github.com/hpcio/ioroofline/report"
)

type tableCmd struct {
	g *globals

	format  string
	output  string
	columns []string
	summary bool
}

func newTableCmd(g *globals) *tableCmd {
	return &tableCmd{g: g}
}

func (c *tableCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <dir>",
		Short: "Print the counters and derived metrics of the reports under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}
	cmd.Flags().StringVar(&c.format, "format", "text", "output format (text, csv, raw, xlsx)")
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "write to `file` instead of standard output")
	cmd.Flags().StringSliceVar(&c.columns, "columns", nil, "columns to show (default source_name and every derived metric)")
	cmd.Flags().BoolVar(&c.summary, "summary", false, "print min, mean and max per column instead of one row per report")
	return cmd
}

func (c *tableCmd) run(dir string) error {
	var render func(w io.Writer, t *metrics.Table, cols []string) error
	switch c.format {
	case "text":
		render = report.Text
		if c.summary {
			render = summaryText
		}
	case "csv":
		render = report.CSV
	case "raw":
		render = func(w io.Writer, t *metrics.Table, _ []string) error {
			return report.Raw(w, t)
		}
	case "xlsx":
		if c.output == "" {
			return errors.New("xlsx output requires --output")
		}
		render = report.XLSX
	default:
		return errors.Errorf("invalid format %q (want text, csv, raw or xlsx)", c.format)
	}
	if c.summary && c.format != "text" {
		return errors.Errorf("--summary is not supported with format %s", c.format)
	}

	t, err := metrics.Load(dir, c.g.loadOptions()...)
	if err != nil {
		return err
	}
	cols := c.columns
	if len(cols) == 0 {
		cols = report.DefaultColumns()
	}

	if c.output == "" {
		return render(c.g.stdout, t, cols)
	}
	f, err := os.Create(c.output)
	if err != nil {
		return errors.Wrap(err, "writing table")
	}
	if err := render(f, t, cols); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", c.output)
	}
	c.g.logger().Info("wrote table", "format", c.format, "path", c.output, "rows", t.Len())
	return nil
}

func summaryText(w io.Writer, t *metrics.Table, cols []string) error {
	ss, err := report.Summarize(t, cols)
	if err != nil {
		return err
	}
	report.SummaryText(w, ss)
	return nil
}
