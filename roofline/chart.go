// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofline

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/vec"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hpcio/ioroofline/iounit"
	"github.com/hpcio/ioroofline/metrics"
	"github.com/hpcio/ioroofline/peaks"
)

const (
	pointRad  = 3
	lineWidth = 1.5
	dpi       = 150
)

// errPoints feeds a single point and its errors to the error bar
// plotters.
type errPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

// Chart draws the ceilings of ps and the points of t.
//
// Each usable peak becomes a line named in the legend and annotated
// with its bandwidth. Peaks without a complete, positive ceiling for
// the mode are left out. Each point is drawn with its error bars and
// named by its source. An empty table or peak list still gives a
// valid chart.
func Chart(t *metrics.Table, ps []peaks.Peak, opts Options) (*plot.Plot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	samples := opts.Samples
	if samples == 0 {
		samples = DefaultSamples
	}

	p := plot.New()
	p.Title.Text = opts.title()
	p.X.Label.Text = "Operational Intensity [IOP/Byte]"
	p.Y.Label.Text = "Operational Performance [IOPS]"
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = false
	p.Legend.Left = false

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Dashes = grid.Vertical.Dashes
	p.Add(grid)

	// Spread the bandwidth annotations along the range so they do
	// not overlap.
	marks := vec.Logspace(math.Log10(opts.Start), math.Log10(opts.End), len(ps)+2, 10)
	for i, pk := range ps {
		bw, iops, ok := pk.Ceiling(opts.Mode)
		if !ok || bw <= 0 || iops <= 0 {
			continue
		}
		line, err := plotter.NewLine(Ceiling(bw, iops, opts.Start, opts.End, samples))
		if err != nil {
			return nil, errors.Wrapf(err, "ceiling %s", pk.Name)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(lineWidth)
		p.Add(line)
		p.Legend.Add(pk.Name, line)

		x := marks[i+1]
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: x, Y: math.Min(x*bw, iops)}},
			Labels: []string{iounit.Rate(bw)},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "ceiling %s", pk.Name)
		}
		p.Add(labels)
	}

	for i, pt := range Points(t, opts.Mode) {
		clr := plotutil.Color(len(ps) + i)
		xy := plotter.XYs{{X: pt.Intensity, Y: pt.IOPS}}
		sc, err := plotter.NewScatter(xy)
		if err != nil {
			return nil, errors.Wrapf(err, "point %s", pt.Source)
		}
		sc.GlyphStyle.Color = clr
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(pointRad)

		errs := errPoints{
			XYs:     xy,
			XErrors: plotter.XErrors{{Low: pt.XErr[0], High: pt.XErr[1]}},
			YErrors: plotter.YErrors{{Low: pt.YErr[0], High: pt.YErr[1]}},
		}
		xerr, err := plotter.NewXErrorBars(errs)
		if err != nil {
			return nil, errors.Wrapf(err, "point %s", pt.Source)
		}
		yerr, err := plotter.NewYErrorBars(errs)
		if err != nil {
			return nil, errors.Wrapf(err, "point %s", pt.Source)
		}
		xerr.Color, yerr.Color = clr, clr

		p.Add(sc, xerr, yerr)
		p.Legend.Add(pt.Source, sc)
	}

	fitAxes(p, opts)
	return p, nil
}

// fitAxes keeps the requested intensity range visible and gives the
// y axis a positive, non-empty range, as log axes require. A single
// point without ceilings spans one decade on either side of it.
func fitAxes(p *plot.Plot, opts Options) {
	p.X.Min = math.Min(p.X.Min, opts.Start)
	p.X.Max = math.Max(p.X.Max, opts.End)
	switch {
	case !(p.Y.Min <= p.Y.Max) || p.Y.Min <= 0:
		p.Y.Min, p.Y.Max = 1, 10
	case p.Y.Min == p.Y.Max:
		p.Y.Min /= 10
		p.Y.Max *= 10
	}
}

// Save writes p to path in the format named by its extension. PNG
// output gets a white background; the other formats are those
// supported by plot.Plot.WriterTo, such as svg, pdf and eps.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var w io.WriterTo
	switch format {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
		p.Draw(draw.New(c))
		w = vgimg.PngCanvas{Canvas: c}
	default:
		var err error
		w, err = p.WriterTo(width, height, format)
		if err != nil {
			return errors.Wrapf(err, "saving %s", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "saving chart")
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "writing %s", path)
}
