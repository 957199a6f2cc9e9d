// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics joins per-file darshan counters into a table and
// derives bandwidth, IOPS and I/O intensity from them.
//
// Every cell of the table is a Value, which is either a number or
// Missing. A counter that a file does not report is Missing, never
// zero, and derived metrics propagate missingness instead of producing
// infinities or NaNs.
package metrics

import "strconv"

// A Value is a float64 that may be missing.
type Value struct {
	x  float64
	ok bool
}

// Missing is the Value with no number.
var Missing = Value{}

// Of returns the Value holding x.
func Of(x float64) Value {
	return Value{x, true}
}

// Float returns v's number and whether it is defined.
func (v Value) Float() (float64, bool) {
	return v.x, v.ok
}

// Defined reports whether v holds a number.
func (v Value) Defined() bool {
	return v.ok
}

// String formats v with the fewest digits that represent it exactly,
// or "-" if v is missing.
func (v Value) String() string {
	if !v.ok {
		return "-"
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}

// Div returns num/den. The result is missing if either operand is
// missing or den is zero.
func Div(num, den Value) Value {
	if !num.ok || !den.ok || den.x == 0 {
		return Missing
	}
	return Of(num.x / den.x)
}

// Sum returns the sum of vs. The result is missing if any operand is
// missing. The sum of no values is 0.
func Sum(vs ...Value) Value {
	var total float64
	for _, v := range vs {
		if !v.ok {
			return Missing
		}
		total += v.x
	}
	return Of(total)
}
