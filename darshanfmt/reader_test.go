// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package darshanfmt

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
	"testing/iotest"
)

func parseAll(t *testing.T, data string) []Counter {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []Counter
	for r.Scan() {
		c := r.Counter()
		// Wipe position information for comparisons.
		c.fileName, c.line = "", 0
		out = append(out, c)
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return out
}

func c(ns Namespace, metric string, value float64) Counter {
	return Counter{Namespace: ns, Metric: metric, Value: value}
}

func compareCounters(t *testing.T, got, want []Counter) {
	t.Helper()
	var diff strings.Builder
	for i := 0; i < len(got) || i < len(want); i++ {
		switch {
		case i >= len(got):
			fmt.Fprintf(&diff, "[%d] got: none, want: %s\n", i, want[i])
		case i >= len(want):
			fmt.Fprintf(&diff, "[%d] want: none, got: %s\n", i, got[i])
		case got[i] != want[i]:
			fmt.Fprintf(&diff, "[%d] got: %s, want: %s\n", i, got[i], want[i])
		}
	}
	if diff.Len() != 0 {
		t.Error(diff.String())
	}
}

func TestReader(t *testing.T) {
	type testCase struct {
		name, input string
		want        []Counter
	}
	for _, test := range []testCase{
		{
			"basic",
			`total_POSIX_OPENS: 4
total_POSIX_BYTES_READ: 1000000
total_POSIX_F_READ_TIME: 0.500000
`,
			[]Counter{
				c(POSIX, "OPENS", 4),
				c(POSIX, "BYTES_READ", 1000000),
				c(POSIX, "F_READ_TIME", 0.5),
			},
		},
		{
			"stdio",
			"total_STDIO_OPENS: 2\ntotal_STDIO_F_META_TIME: 0.000125\n",
			[]Counter{
				c(STDIO, "OPENS", 2),
				c(STDIO, "F_META_TIME", 0.000125),
			},
		},
		{
			"negative sentinel",
			"total_POSIX_FASTEST_RANK: -1\ntotal_POSIX_F_SLOWEST_RANK_TIME: -0.25\n",
			[]Counter{
				c(POSIX, "FASTEST_RANK", -1),
				c(POSIX, "F_SLOWEST_RANK_TIME", -0.25),
			},
		},
		{
			"comments and records",
			`# darshan log version: 3.41
# POSIX module data
POSIX	-1	8869435263935154323	POSIX_OPENS	4	/scratch/in	/scratch	ext4

total_POSIX_SEEKS: 2
`,
			[]Counter{
				c(POSIX, "SEEKS", 2),
			},
		},
		{
			"unknown namespace",
			"total_MPIIO_INDEP_OPENS: 3\ntotal_LUSTRE_OSTS: 4\ntotal_POSIXX_OPENS: 1\n",
			nil,
		},
		{
			"malformed",
			`total_POSIX_OPENS 4
total_POSIX_OPENS:4
total_POSIX_opens: 4
total_POSIX_: 4
total_POSIX_OPENS: x
total_POSIX_OPENS: .5
total_POSIX_OPENS:  4
`,
			nil,
		},
		{
			"partial numbers",
			"total_POSIX_BYTES_READ: 1e+06\ntotal_POSIX_F_READ_TIME: 5.\ntotal_POSIX_READS: 7abc\n",
			[]Counter{
				c(POSIX, "BYTES_READ", 1),
				c(POSIX, "F_READ_TIME", 5),
				c(POSIX, "READS", 7),
			},
		},
		{
			"mid-line and repeated",
			"x total_POSIX_READS: 1 total_STDIO_READS: 2 total_bogus total_POSIX_WRITES: 3\n",
			[]Counter{
				c(POSIX, "READS", 1),
				c(STDIO, "READS", 2),
				c(POSIX, "WRITES", 3),
			},
		},
		{
			"overflow",
			"total_POSIX_BYTES_READ: 1" + strings.Repeat("0", 400) + "\ntotal_POSIX_F_READ_TIME: -" + strings.Repeat("9", 400) + ".5\n",
			[]Counter{
				c(POSIX, "BYTES_READ", math.Inf(1)),
				c(POSIX, "F_READ_TIME", math.Inf(-1)),
			},
		},
		{
			"no trailing newline",
			"total_POSIX_STATS: 9",
			[]Counter{
				c(POSIX, "STATS", 9),
			},
		},
		{
			"empty",
			"",
			nil,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := parseAll(t, test.input)
			compareCounters(t, got, test.want)
		})
	}
}

func TestReaderPos(t *testing.T) {
	r := NewReader(strings.NewReader("# header\n\ntotal_POSIX_READS: 1 total_POSIX_WRITES: 2\n"), "job.posix")
	for _, wantMetric := range []string{"READS", "WRITES"} {
		if !r.Scan() {
			t.Fatalf("want %s, got end of stream", wantMetric)
		}
		c := r.Counter()
		if c.Metric != wantMetric {
			t.Errorf("got metric %s, want %s", c.Metric, wantMetric)
		}
		if file, line := c.Pos(); file != "job.posix" || line != 3 {
			t.Errorf("got position %s:%d, want job.posix:3", file, line)
		}
	}
	if r.Scan() {
		t.Errorf("got %s, want end of stream", r.Counter())
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{
		0, 1, -1, 1000000, 0.5, -0.25, 0.000125,
		1e-9, 123456789.123456789, math.MaxInt32, 1 << 53,
		0.1 + 0.2,
	}
	for _, ns := range Namespaces {
		for _, v := range values {
			want := c(ns, "F_READ_TIME", v)
			got := parseAll(t, want.String()+"\n")
			if len(got) != 1 {
				t.Errorf("parsing %q: got %d counters, want 1", want.String(), len(got))
				continue
			}
			if got[0].Key() != want.Key() || got[0].Value != want.Value {
				t.Errorf("parsing %q: got %s=%v, want %s=%v", want.String(), got[0].Key(), got[0].Value, want.Key(), want.Value)
			}
		}
	}
}

func TestExtract(t *testing.T) {
	cs, err := Extract(strings.NewReader(`total_POSIX_READS: 1
total_STDIO_READS: 2
total_POSIX_READS: 3
`), "dup")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"POSIX_READS": 3, "STDIO_READS": 2}
	if len(cs) != len(want) {
		t.Errorf("got %v, want %v", cs, want)
	}
	for k, v := range want {
		if cs[k] != v {
			t.Errorf("%s: got %v, want %v", k, cs[k], v)
		}
	}
	if got, want := strings.Join(cs.Keys(), ","), "POSIX_READS,STDIO_READS"; got != want {
		t.Errorf("Keys: got %s, want %s", got, want)
	}

	empty, err := Extract(strings.NewReader("# nothing here\n"), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("got %v, want empty non-nil map", empty)
	}
}

func TestExtractError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("total_POSIX_READS: 1\n"), iotest.ErrReader(boom))
	_, err := Extract(r, "broken")
	if !errors.Is(err, boom) {
		t.Fatalf("got error %v, want %v", err, boom)
	}
	if !strings.HasPrefix(err.Error(), "broken:1: ") {
		t.Errorf("got error %q, want position prefix", err)
	}
}
