// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import "github.com/aclements/go-gg/table"

// Derived holds the derived metrics of one row, indexed by Metric.
type Derived [numMetrics]Value

// Get returns the value of m.
func (d Derived) Get(m Metric) Value {
	return d[m]
}

// ComputeDerived computes every Metric from the counters returned by
// get. get returns Missing for counters that are not available.
func ComputeDerived(get func(Counter) Value) Derived {
	var (
		bytesRead    = get(BytesRead)
		bytesWritten = get(BytesWritten)
		readTime     = get(ReadTime)
		writeTime    = get(WriteTime)
		reads        = get(Reads)
		writes       = get(Writes)

		totalTime  = Sum(readTime, writeTime, get(MetaTime))
		totalBytes = Sum(bytesRead, bytesWritten)
	)

	ops := make([]Value, len(opCounters))
	for i, c := range opCounters {
		ops[i] = get(c)
	}

	var d Derived
	d[BandwidthRead] = Div(bytesRead, readTime)
	d[BandwidthWrite] = Div(bytesWritten, writeTime)
	d[BandwidthTotal] = Div(totalBytes, totalTime)

	d[IOOpCount] = Sum(ops...)
	d[IOPSRead] = Div(reads, readTime)
	d[IOPSWrite] = Div(writes, writeTime)
	d[IOPSTotal] = Div(d[IOOpCount], totalTime)

	// The read and write intensities count only their own
	// operations, but the total counts every operation.
	d[IntensityTotal] = Div(d[IOOpCount], totalBytes)
	d[IntensityRead] = Div(reads, bytesRead)
	d[IntensityWrite] = Div(writes, bytesWritten)
	return d
}

// Derive returns a copy of t with a column added for every Metric, in
// AllMetrics order. Columns of t that already carry a metric's name
// are replaced. Each row is computed independently.
func Derive(t *Table) *Table {
	n := t.Len()
	cols := make([][]Value, numMetrics)
	for i := range cols {
		cols[i] = make([]Value, n)
	}
	for row := 0; row < n; row++ {
		d := ComputeDerived(func(c Counter) Value {
			return t.Value(c.Column(), row)
		})
		for m, v := range d {
			cols[m][row] = v
		}
	}

	b := table.NewBuilder(t.gg())
	for _, m := range AllMetrics() {
		b.Add(m.Column(), cols[m])
	}
	return &Table{b.Done()}
}
