// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roofline draws empirical I/O roofline charts.
//
// A roofline chart plots operational performance (IOPS) against
// operational intensity (operations per byte) on log-log axes. Each
// hardware ceiling is the curve min(x*bandwidth, iops): bandwidth
// bound at low intensity and operation-rate bound above the knee at
// x = iops/bandwidth. Observed runs are drawn as points under the
// ceilings.
package roofline

import (
	"math"
	"slices"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"

	"github.com/hpcio/ioroofline/metrics"
)

// Default x-axis range and ceiling resolution.
const (
	DefaultStart   = 1e-8
	DefaultEnd     = 1
	DefaultSamples = 256
)

// Options controls a chart.
type Options struct {
	Mode metrics.Mode

	// Start and End bound the operational intensity axis. Both
	// must be positive.
	Start, End float64

	// Samples is the number of points per ceiling curve. If zero,
	// DefaultSamples is used.
	Samples int

	// Title overrides the default chart title.
	Title string
}

// DefaultOptions returns the options for a chart of mode over the
// default range.
func DefaultOptions(mode metrics.Mode) Options {
	return Options{Mode: mode, Start: DefaultStart, End: DefaultEnd, Samples: DefaultSamples}
}

// Validate reports whether o describes a drawable chart.
func (o Options) Validate() error {
	if !(o.Start > 0) || math.IsInf(o.End, 0) {
		return errors.Errorf("invalid intensity range [%v, %v]: bounds must be positive and finite", o.Start, o.End)
	}
	if !(o.Start < o.End) {
		return errors.Errorf("invalid intensity range [%v, %v]: start must be below end", o.Start, o.End)
	}
	if o.Samples < 0 {
		return errors.Errorf("invalid sample count %d", o.Samples)
	}
	return nil
}

func (o Options) title() string {
	if o.Title != "" {
		return o.Title
	}
	return "Empirical Roofline for Converged Computing (" + o.Mode.Title() + ")"
}

// Ceiling samples the ceiling min(x*bw, iops) at n log-spaced
// intensities from start to end. The knee is added when it falls
// inside the range so the corner is drawn exactly.
func Ceiling(bw, iops, start, end float64, n int) plotter.XYs {
	if n < 2 {
		n = 2
	}
	xs := vec.Logspace(math.Log10(start), math.Log10(end), n, 10)
	xs[0], xs[n-1] = start, end
	if knee := iops / bw; knee > start && knee < end {
		i := sort.SearchFloat64s(xs, knee)
		switch {
		case near(xs[i], knee):
			xs[i] = knee
		case near(xs[i-1], knee):
			xs[i-1] = knee
		default:
			xs = slices.Insert(xs, i, knee)
		}
	}

	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: math.Min(x*bw, iops)}
	}
	return pts
}

// near reports whether a and b differ only by rounding.
func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

// A Point is one table row placed on the chart.
type Point struct {
	Source    string
	Intensity float64
	IOPS      float64

	// XErr and YErr are the low and high error of the point. A
	// row is a single measurement, so they are zero.
	XErr, YErr [2]float64
}

// Points returns the drawable rows of t for mode, in table order. Rows
// whose intensity or IOPS is missing or not positive cannot be placed
// on log axes and are skipped.
func Points(t *metrics.Table, mode metrics.Mode) []Point {
	xs := t.Column(mode.Intensity().Column())
	ys := t.Column(mode.IOPS().Column())
	if xs == nil || ys == nil {
		return nil
	}
	var pts []Point
	for row, src := range t.Sources() {
		x, okx := xs[row].Float()
		y, oky := ys[row].Float()
		if !okx || !oky || x <= 0 || y <= 0 {
			continue
		}
		pts = append(pts, Point{Source: src, Intensity: x, IOPS: y})
	}
	return pts
}
