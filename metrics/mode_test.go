// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import "testing"

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"read":       Read,
		"Write":      Write,
		"AGGREGATED": Aggregated,
	} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("total"); err == nil {
		t.Error("ParseMode(total) succeeded")
	}
}

func TestModeColumns(t *testing.T) {
	for _, test := range []struct {
		mode                       Mode
		title                      string
		intensity, iops, bandwidth Metric
	}{
		{Read, "Read", IntensityRead, IOPSRead, BandwidthRead},
		{Write, "Write", IntensityWrite, IOPSWrite, BandwidthWrite},
		{Aggregated, "Aggregated", IntensityTotal, IOPSTotal, BandwidthTotal},
	} {
		if got := test.mode.Title(); got != test.title {
			t.Errorf("%v: title %s, want %s", test.mode, got, test.title)
		}
		if got := test.mode.Intensity(); got != test.intensity {
			t.Errorf("%v: intensity %v, want %v", test.mode, got, test.intensity)
		}
		if got := test.mode.IOPS(); got != test.iops {
			t.Errorf("%v: IOPS %v, want %v", test.mode, got, test.iops)
		}
		if got := test.mode.Bandwidth(); got != test.bandwidth {
			t.Errorf("%v: bandwidth %v, want %v", test.mode, got, test.bandwidth)
		}
	}
}
