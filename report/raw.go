// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/hpcio/ioroofline/metrics"
)

// Raw writes every column of t unformatted, as the table package
// prints it. Missing values print as "-".
func Raw(w io.Writer, t *metrics.Table) error {
	return table.Fprint(w, t.Grouping())
}
