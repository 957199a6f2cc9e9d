// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/hpcio/ioroofline/iounit"
	"github.com/hpcio/ioroofline/metrics"
)

// missing is shown in place of a missing value.
const missing = "-"

// Text writes the selected columns of t as an aligned table. Each
// numeric column is scaled to a common SI or IEC prefix chosen by its
// unit, such as "2.000M" for a bandwidth in B/s.
func Text(w io.Writer, t *metrics.Table, cols []string) error {
	cols, err := columns(t, cols)
	if err != nil {
		return err
	}

	cells := make([][]string, len(cols))
	align := make([]int, len(cols))
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = header(col, "\n")
		if col == metrics.SourceColumn {
			cells[i] = t.Sources()
			align[i] = tablewriter.ALIGN_LEFT
			continue
		}
		cells[i] = scaled(t.Column(col), metrics.UnitOf(col))
		align[i] = tablewriter.ALIGN_RIGHT
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	tw.SetColumnAlignment(align)
	tw.SetBorder(true)
	tw.SetHeader(headers)
	for row := 0; row < t.Len(); row++ {
		line := make([]string, len(cols))
		for i := range cols {
			line[i] = cells[i][row]
		}
		tw.Append(line)
	}
	tw.Render()
	return nil
}

// scaled formats vs with one scale for the whole column.
func scaled(vs []metrics.Value, unit string) []string {
	var defined []float64
	for _, v := range vs {
		if x, ok := v.Float(); ok {
			defined = append(defined, x)
		}
	}
	s := iounit.CommonScale(defined, iounit.ClassOf(unit))
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = format(v, s, missing)
	}
	return out
}

func format(v metrics.Value, s iounit.Scaler, missing string) string {
	x, ok := v.Float()
	if !ok {
		return missing
	}
	return s.Format(x)
}
