// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"

	"github.com/hpcio/ioroofline/iounit"
	"github.com/hpcio/ioroofline/metrics"
)

// CSV writes the selected columns of t as CSV with a header row.
// Numbers are exact and unscaled. Missing values are empty fields.
func CSV(w io.Writer, t *metrics.Table, cols []string) error {
	cols, err := columns(t, cols)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	sources := t.Sources()
	record := make([]string, len(cols))
	for row := 0; row < t.Len(); row++ {
		for i, col := range cols {
			if col == metrics.SourceColumn {
				record[i] = sources[row]
				continue
			}
			record[i] = format(t.Value(col, row), iounit.NoOpScaler, "")
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
