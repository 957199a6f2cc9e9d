// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hpcio/ioroofline/darshanfmt"
)

func getter(cs map[Counter]float64) func(Counter) Value {
	return func(c Counter) Value {
		if x, ok := cs[c]; ok {
			return Of(x)
		}
		return Missing
	}
}

func TestComputeDerived(t *testing.T) {
	type testCase struct {
		name     string
		counters map[Counter]float64
		want     map[Metric]Value
	}
	for _, test := range []testCase{
		{
			"read only",
			map[Counter]float64{BytesRead: 1000000, ReadTime: 0.5, Reads: 100},
			map[Metric]Value{
				BandwidthRead: Of(2000000),
				IOPSRead:      Of(200),
				IntensityRead: Of(0.0001),
			},
		},
		{
			"zero writes",
			map[Counter]float64{BytesWritten: 0, WriteTime: 0, Writes: 0},
			map[Metric]Value{},
		},
		{
			"all counters",
			map[Counter]float64{
				BytesRead: 4096, BytesWritten: 8192,
				ReadTime: 0.125, WriteTime: 0.25, MetaTime: 0.125,
				Reads: 10, Writes: 20, Opens: 2, Filenos: 1, Dups: 1,
				Seeks: 3, Stats: 2, Fsyncs: 1, Fdsyncs: 0,
			},
			map[Metric]Value{
				BandwidthRead:  Of(32768),
				BandwidthWrite: Of(32768),
				BandwidthTotal: Of(24576),
				IOPSRead:       Of(80),
				IOPSWrite:      Of(80),
				IOPSTotal:      Of(80),
				IOOpCount:      Of(40),
				IntensityTotal: Of(40.0 / 12288),
				IntensityRead:  Of(10.0 / 4096),
				IntensityWrite: Of(20.0 / 8192),
			},
		},
		{
			"zero time",
			map[Counter]float64{
				BytesRead: 4096, BytesWritten: 0,
				ReadTime: 0, WriteTime: 0, MetaTime: 0,
				Reads: 1, Writes: 0, Opens: 1, Filenos: 0, Dups: 0,
				Seeks: 0, Stats: 0, Fsyncs: 0, Fdsyncs: 0,
			},
			map[Metric]Value{
				IOOpCount:      Of(2),
				IntensityTotal: Of(2.0 / 4096),
				IntensityRead:  Of(1.0 / 4096),
			},
		},
		{
			"one op counter missing",
			map[Counter]float64{
				BytesRead: 100, BytesWritten: 100,
				ReadTime: 1, WriteTime: 1, MetaTime: 0,
				Reads: 1, Writes: 1, Opens: 1, Filenos: 0, Dups: 0,
				Seeks: 0, Stats: 0, Fsyncs: 0,
			},
			map[Metric]Value{
				BandwidthRead:  Of(100),
				BandwidthWrite: Of(100),
				BandwidthTotal: Of(100),
				IOPSRead:       Of(1),
				IOPSWrite:      Of(1),
				IntensityRead:  Of(0.01),
				IntensityWrite: Of(0.01),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			d := ComputeDerived(getter(test.counters))
			for _, m := range AllMetrics() {
				want, ok := test.want[m]
				if !ok {
					want = Missing
				}
				if got := d.Get(m); got != want {
					t.Errorf("%s: got %v, want %v", m, got, want)
				}
			}
		})
	}
}

func TestDerive(t *testing.T) {
	tab := Derive(Build([]Record{
		{"w.posix", darshanfmt.Counters{
			"POSIX_BYTES_WRITTEN": 0, "POSIX_F_WRITE_TIME": 0, "POSIX_WRITES": 0,
		}},
		{"r.posix", darshanfmt.Counters{
			"POSIX_BYTES_READ": 1000000, "POSIX_F_READ_TIME": 0.5, "POSIX_READS": 100,
		}},
	}))

	if diff := cmp.Diff([]string{"r.posix", "w.posix"}, tab.Sources()); diff != "" {
		t.Errorf("sources (-want +got):\n%s", diff)
	}
	for col, want := range map[string][]Value{
		"bandwidth_read":  {Of(2000000), Missing},
		"iops_read":       {Of(200), Missing},
		"bandwidth_write": {Missing, Missing},
		"iops_write":      {Missing, Missing},
		"io_op_count":     {Missing, Missing},
	} {
		if diff := cmp.Diff(want, tab.Column(col), cmpValues); diff != "" {
			t.Errorf("%s (-want +got):\n%s", col, diff)
		}
	}
	// Raw counters are kept alongside.
	if got := tab.Value("POSIX_READS", 0); got != Of(100) {
		t.Errorf("POSIX_READS: got %v, want 100", got)
	}
}

func TestDeriveTwice(t *testing.T) {
	once := Derive(Build([]Record{
		{"a", darshanfmt.Counters{"POSIX_BYTES_READ": 10, "POSIX_F_READ_TIME": 2}},
	}))
	twice := Derive(once)
	if diff := cmp.Diff(once.Columns(), twice.Columns()); diff != "" {
		t.Errorf("columns changed (-once +twice):\n%s", diff)
	}
	for _, col := range once.Columns()[1:] {
		if diff := cmp.Diff(once.Column(col), twice.Column(col), cmpValues); diff != "" {
			t.Errorf("%s changed (-once +twice):\n%s", col, diff)
		}
	}
	if got := twice.Value("bandwidth_read", 0); got != Of(5) {
		t.Errorf("got %v, want 5", got)
	}
}

func TestDeriveEmpty(t *testing.T) {
	tab := Derive(Build(nil))
	if tab.Len() != 0 {
		t.Errorf("got %d rows", tab.Len())
	}
	for _, m := range AllMetrics() {
		if !tab.Has(m.Column()) {
			t.Errorf("missing column %s", m.Column())
		}
	}
}
