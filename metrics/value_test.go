// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"
	"testing"
)

func TestDiv(t *testing.T) {
	for _, test := range []struct {
		num, den Value
		want     Value
	}{
		{Of(1e6), Of(0.5), Of(2e6)},
		{Of(-1), Of(4), Of(-0.25)},
		{Of(0), Of(3), Of(0)},
		{Of(1), Of(0), Missing},
		{Of(0), Of(0), Missing},
		{Of(1), Of(math.Copysign(0, -1)), Missing},
		{Missing, Of(2), Missing},
		{Of(2), Missing, Missing},
		{Missing, Missing, Missing},
	} {
		got := Div(test.num, test.den)
		if got != test.want {
			t.Errorf("Div(%v, %v) = %v, want %v", test.num, test.den, got, test.want)
		}
		if x, ok := got.Float(); ok && (math.IsInf(x, 0) || math.IsNaN(x)) {
			t.Errorf("Div(%v, %v) produced %v", test.num, test.den, x)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(); got != Of(0) {
		t.Errorf("Sum() = %v, want 0", got)
	}
	if got := Sum(Of(0.5), Of(0.25), Of(0.25)); got != Of(1) {
		t.Errorf("got %v, want 1", got)
	}
	if got := Sum(Of(1), Missing, Of(2)); got.Defined() {
		t.Errorf("got %v, want missing", got)
	}
	// Negative sentinels are summed like any other number.
	if got := Sum(Of(-1), Of(3)); got != Of(2) {
		t.Errorf("got %v, want 2", got)
	}
}

func TestValueString(t *testing.T) {
	for v, want := range map[Value]string{
		Missing:     "-",
		Of(0):       "0",
		Of(2e6):     "2e+06",
		Of(0.5):     "0.5",
		Of(-1):      "-1",
		Of(0.00011): "0.00011",
	} {
		if got := v.String(); got != want {
			t.Errorf("%#v.String() = %q, want %q", v, got, want)
		}
	}
}
