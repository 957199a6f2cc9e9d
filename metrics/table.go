// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"sort"

	"github.com/aclements/go-gg/table"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/hpcio/ioroofline/darshanfmt"
)

// A Record is the set of counters read from one input file.
type Record struct {
	// Source identifies the input file. It becomes the row's
	// SourceColumn value.
	Source   string
	Counters darshanfmt.Counters
}

// A Table holds one row per Record. Its SourceColumn is a []string;
// every other column is a []Value.
//
// A Table is immutable. Derive returns a new Table rather than
// modifying its argument.
type Table struct {
	t *table.Table
}

// Build joins recs into a Table.
//
// The columns are SourceColumn followed by the union of the counter
// names of all records in ascending order. A counter that a record
// does not report is Missing in that row. Rows are sorted by source
// name; records with equal names keep their relative order. Build
// does not modify recs.
func Build(recs []Record) *Table {
	names := mapset.NewSet[string]()
	for _, rec := range recs {
		names = names.Union(mapset.NewSetFromMapKeys(map[string]float64(rec.Counters)))
	}
	cols := names.ToSlice()
	sort.Strings(cols)

	sources := make([]string, len(recs))
	for i, rec := range recs {
		sources[i] = rec.Source
	}
	b := new(table.Builder).Add(SourceColumn, sources)
	for _, name := range cols {
		vals := make([]Value, len(recs))
		for i, rec := range recs {
			if x, ok := rec.Counters[name]; ok {
				vals[i] = Of(x)
			}
		}
		b.Add(name, vals)
	}

	return &Table{table.Flatten(table.SortBy(b.Done(), SourceColumn))}
}

func (t *Table) gg() *table.Table {
	if t == nil || t.t == nil {
		return new(table.Table)
	}
	return t.t
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.gg().Len()
}

// Columns returns the column names of t in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.gg().Columns()...)
}

// Has reports whether t has the named column.
func (t *Table) Has(name string) bool {
	return t.gg().Column(name) != nil
}

// Sources returns the source name of every row.
func (t *Table) Sources() []string {
	s, _ := t.gg().Column(SourceColumn).([]string)
	return s
}

// Column returns the values of the named column, or nil if t has no
// such numeric column. The caller must not modify the result.
func (t *Table) Column(name string) []Value {
	vs, _ := t.gg().Column(name).([]Value)
	return vs
}

// Value returns the value of the named column in the given row. It
// returns Missing if t has no such column.
func (t *Table) Value(name string, row int) Value {
	vs := t.Column(name)
	if vs == nil {
		return Missing
	}
	return vs[row]
}

// Grouping returns t as a go-gg table for use with the table package.
func (t *Table) Grouping() table.Grouping {
	return t.gg()
}
