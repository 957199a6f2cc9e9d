// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/hpcio/ioroofline/metrics"
)

// A Summary describes the distribution of one column over all rows
// that define it.
type Summary struct {
	Column string
	Unit   string
	// N is the number of rows with a defined value. If N is 0, the
	// remaining fields are Missing.
	N              int
	Min, Mean, Max metrics.Value
}

// Summarize returns a Summary for every selected numeric column of t.
// The source column is skipped.
func Summarize(t *metrics.Table, cols []string) ([]Summary, error) {
	cols, err := columns(t, cols)
	if err != nil {
		return nil, err
	}
	var out []Summary
	for _, col := range cols {
		if col == metrics.SourceColumn {
			continue
		}
		var xs []float64
		for _, v := range t.Column(col) {
			if x, ok := v.Float(); ok {
				xs = append(xs, x)
			}
		}
		s := Summary{Column: col, Unit: metrics.UnitOf(col), N: len(xs)}
		if len(xs) > 0 {
			sample := stats.Sample{Xs: xs}
			lo, hi := sample.Bounds()
			s.Min, s.Mean, s.Max = metrics.Of(lo), metrics.Of(sample.Mean()), metrics.Of(hi)
		}
		out = append(out, s)
	}
	return out, nil
}

// SummaryText writes ss as an aligned table, one row per column.
func SummaryText(w io.Writer, ss []Summary) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"column", "n", "min", "mean", "max"})
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, s := range ss {
		row := scaled([]metrics.Value{s.Min, s.Mean, s.Max}, s.Unit)
		tw.Append(append([]string{header(s.Column, " "), strconv.Itoa(s.N)}, row...))
	}
	tw.Render()
}
