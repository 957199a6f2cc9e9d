// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iounit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and its prefixed
// representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix. For example, with a
// Decimal scale chosen for 2e6, Format(2e6) returns "2.000M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler formats numbers with the fewest digits that capture the
// exact value and no prefix. It is meant for machine-readable output
// such as CSV.
var NoOpScaler = Scaler{-1, 1, ""}

// A prefix is one step of a prefix table. lim holds the smallest
// magnitudes that print with 1, 2 and 3 fractional digits under this
// prefix without rounding up to the next width.
type prefix struct {
	factor float64
	name   string
	lim    [3]float64
}

var (
	siPrefixes  = prefixTable(10, 3, 12, "T", "G", "M", "k", "", "m", "µ", "n")
	iecPrefixes = prefixTable(2, 10, 40, "Ti", "Gi", "Mi", "Ki", "")

	// fracLimits[i] is the smallest magnitude that prints with
	// 3+i fractional digits below the smallest prefix.
	fracLimits = func() []float64 {
		var ls []float64
		for exp := -1; exp > -9; exp-- {
			ls = append(ls, parse(fmt.Sprintf("9.9995e%d", exp)))
		}
		return ls
	}()
)

// prefixTable builds the prefixes base^top, base^(top-step), ... named
// by names. The limits are derived from the printed form of
// 99.995, 9.9995 and .99995 so they agree exactly with how Format
// rounds.
func prefixTable(base, step, top int, names ...string) []prefix {
	table := make([]prefix, 0, len(names))
	exp := top
	for _, name := range names {
		f := math.Pow(float64(base), float64(exp))
		var p prefix
		if base == 10 {
			p = prefix{f, name, [3]float64{
				parse(fmt.Sprintf("99.995e%d", exp)),
				parse(fmt.Sprintf("9.9995e%d", exp)),
				parse(fmt.Sprintf(".99995e%d", exp)),
			}}
		} else {
			// Hex mantissas of 99.995, 9.9995 and .99995.
			p = prefix{f, name, [3]float64{
				parse(fmt.Sprintf("0x1.8ffae147ae148p%d", 6+exp)),
				parse(fmt.Sprintf("0x1.3ffbe76c8b439p%d", 3+exp)),
				parse(fmt.Sprintf("0x1.fff972474538fp%d", -1+exp)),
			}}
		}
		table = append(table, p)
		exp -= step
	}
	return table
}

func parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Scale formats val with at least three significant digits and a
// prefix of class cls.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a Scaler that shows at least three significant
// digits for every value in vals. The scale is picked for the non-zero
// value nearest to zero; if there is none, values print unprefixed.
func CommonScale(vals []float64, cls Class) Scaler {
	var least float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (least == 0 || v < least) {
			least = v
		}
	}
	if least == 0 {
		return Scaler{3, 1, ""}
	}

	var table []prefix
	switch cls {
	case Decimal:
		table = siPrefixes
	case Binary:
		table = iecPrefixes
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	}

	for _, p := range table {
		for digits, lim := range p.lim {
			if least >= lim {
				return Scaler{digits + 1, p.factor, p.name}
			}
		}
	}

	// Smaller than the smallest prefix: keep that prefix and add
	// fractional digits instead.
	last := table[len(table)-1]
	scaled := least / last.factor
	for i, lim := range fracLimits {
		if scaled >= lim || i == len(fracLimits)-1 {
			return Scaler{i + 3, last.factor, last.name}
		}
	}
	panic("not reachable")
}
