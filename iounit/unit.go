// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iounit formats I/O quantities such as byte counts,
// bandwidths and operation rates for display.
package iounit

import (
	"fmt"
	"unicode"
)

// Units of the counters and derived metrics.
const (
	Bytes       = "B"
	Seconds     = "s"
	Ops         = "op"
	BytesPerSec = "B/s"
	OpsPerSec   = "op/s"
	OpsPerByte  = "op/B"
)

// MB is the number of bytes in a megabyte. Bandwidth annotations use
// decimal megabytes.
const MB = 1e6

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal scales values by powers of 1000 using SI prefixes
	// such as "k" and "M".
	Decimal Class = iota
	// Binary scales values by powers of 1024 using IEC prefixes
	// such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. A plain amount of storage, such
// as "B" or "B*op", is Binary. Anything with a denominator is a rate or
// ratio and is Decimal, so "B/s" reads as MB/s the way device vendors
// quote it.
func ClassOf(unit string) Class {
	bytes := false
	for tok := range tokens(unit) {
		if tok.denom {
			return Decimal
		}
		if tok.text == "B" || tok.text == "bytes" {
			bytes = true
		}
	}
	if bytes {
		return Binary
	}
	return Decimal
}

// Rate formats a bandwidth in bytes per second as whole megabytes per
// second, such as "1250 MB/s".
func Rate(bytesPerSec float64) string {
	return fmt.Sprintf("%.0f MB/s", bytesPerSec/MB)
}

type token struct {
	text  string
	denom bool // token follows a '/'
}

// tokens splits unit into its factors. '*' and '/' separate factors
// and select numerator or denominator; '-' and spaces only separate.
func tokens(unit string) func(yield func(token) bool) {
	return func(yield func(token) bool) {
		denom := false
		start := -1
		flush := func(end int) bool {
			if start < 0 {
				return true
			}
			ok := yield(token{unit[start:end], denom})
			start = -1
			return ok
		}
		for i, r := range unit {
			sep := r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
			if !sep {
				if start < 0 {
					start = i
				}
				continue
			}
			if !flush(i) {
				return
			}
			switch r {
			case '*':
				denom = false
			case '/':
				denom = true
			}
		}
		flush(len(unit))
	}
}
