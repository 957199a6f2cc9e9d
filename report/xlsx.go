// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/hpcio/ioroofline/metrics"
)

// Sheet names used by XLSX.
const (
	MetricsSheet = "Metrics"
	SummarySheet = "Summary"
)

func cellName(col, row int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	cell, err := excelize.JoinCellName(name, row)
	if err != nil {
		return ""
	}
	return cell
}

// XLSX writes the selected columns of t to w as a spreadsheet. The
// Metrics sheet holds one row per source with unscaled numbers;
// missing values are left blank. The Summary sheet holds the
// Summarize result for the same columns.
func XLSX(w io.Writer, t *metrics.Table, cols []string) error {
	cols, err := columns(t, cols)
	if err != nil {
		return err
	}
	summaries, err := Summarize(t, cols)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", MetricsSheet); err != nil {
		return errors.Wrap(err, "creating workbook")
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return errors.Wrap(err, "creating workbook")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating workbook")
	}

	heading := func(sheet string, names []string) {
		for i, name := range names {
			cell := cellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, name)
			_ = f.SetCellStyle(sheet, cell, cell, bold)
		}
	}

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = header(col, " ")
	}
	heading(MetricsSheet, headers)
	_ = f.SetColWidth(MetricsSheet, "A", "A", 30)
	sources := t.Sources()
	for row := 0; row < t.Len(); row++ {
		for i, col := range cols {
			cell := cellName(i+1, row+2)
			if col == metrics.SourceColumn {
				_ = f.SetCellValue(MetricsSheet, cell, sources[row])
				continue
			}
			if x, ok := t.Value(col, row).Float(); ok {
				_ = f.SetCellValue(MetricsSheet, cell, x)
			}
		}
	}

	heading(SummarySheet, []string{"column", "unit", "n", "min", "mean", "max"})
	_ = f.SetColWidth(SummarySheet, "A", "A", 30)
	for i, s := range summaries {
		row := i + 2
		_ = f.SetCellValue(SummarySheet, cellName(1, row), s.Column)
		_ = f.SetCellValue(SummarySheet, cellName(2, row), s.Unit)
		_ = f.SetCellValue(SummarySheet, cellName(3, row), s.N)
		for j, v := range []metrics.Value{s.Min, s.Mean, s.Max} {
			if x, ok := v.Float(); ok {
				_ = f.SetCellValue(SummarySheet, cellName(4+j, row), x)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
