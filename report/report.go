// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders metric tables for people and for other
// programs.
//
// Every renderer takes the list of columns to show. An empty list
// means every column of the table.
package report

import (
	"github.com/pkg/errors"

	"github.com/hpcio/ioroofline/metrics"
)

// DefaultColumns returns the source column followed by every derived
// metric.
func DefaultColumns() []string {
	cols := []string{metrics.SourceColumn}
	for _, m := range metrics.AllMetrics() {
		cols = append(cols, m.Column())
	}
	return cols
}

// columns resolves the requested columns against t.
func columns(t *metrics.Table, cols []string) ([]string, error) {
	if len(cols) == 0 {
		return t.Columns(), nil
	}
	for _, c := range cols {
		if !t.Has(c) {
			return nil, errors.Errorf("unknown column %q", c)
		}
	}
	return cols, nil
}

// header returns the column name with its unit, if known.
func header(col, sep string) string {
	if u := metrics.UnitOf(col); u != "" {
		return col + sep + "(" + u + ")"
	}
	return col
}
