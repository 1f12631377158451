// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Neutral is the color of every line and marker. Series are
// distinguished by line style only.
var Neutral color.Color = color.Gray{Y: 0}

const (
	lineWidth   = vg.Length(1)
	pointRadius = vg.Length(1.5)
)

// A Chart is a rendered Dataset.
type Chart struct {
	// Plot is the gonum plot holding the lines, axes and legend.
	Plot *plot.Plot

	// Lines has one entry per series, in display order.
	Lines []Line

	width, height vg.Length
}

// A Line is the drawn form of one Series.
type Line struct {
	Name   string
	Style  LineStyle
	Color  color.Color
	Points plotter.XYs
}

// XRange returns the bounds of the x axis.
func (c *Chart) XRange() (min, max float64) { return c.Plot.X.Min, c.Plot.X.Max }

// YRange returns the bounds of the y axis.
func (c *Chart) YRange() (min, max float64) { return c.Plot.Y.Min, c.Plot.Y.Max }

// Render draws d as configured by spec. Every series becomes one line
// with a marker at each sample, in d's series order.
//
// Render fails without producing a chart if d is empty or
// inconsistent, if spec names an unknown scale, or if the transform
// fails or yields a point that cannot be plotted.
func Render(d *Dataset, spec *ChartSpec) (*Chart, error) {
	if spec == nil {
		spec = new(ChartSpec)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(d.Series))
	for _, s := range d.Series {
		pts, err := derive(d.X, s, spec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Name: s.Name, Style: s.Style, Color: Neutral, Points: pts})
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	if spec.XScale.isLog() {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if spec.YScale.isLog() {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true

	for _, l := range lines {
		line, points, err := plotter.NewLinePoints(l.Points)
		if err != nil {
			// derive has already rejected NaN and Inf.
			return nil, err
		}
		line.LineStyle = draw.LineStyle{Color: l.Color, Width: lineWidth, Dashes: l.Style.Dashes()}
		points.GlyphStyle = draw.GlyphStyle{Color: l.Color, Radius: pointRadius, Shape: draw.CircleGlyph{}}
		p.Add(line, points)
		p.Legend.Add(l.Name, line, points)
	}

	if spec.ClampYMin {
		p.Y.Min = spec.YMin
		if p.Y.Max <= p.Y.Min {
			// Keep the axis from collapsing or flipping when
			// every point is at or below the clamp.
			p.Y.Max = p.Y.Min + 1
		}
	}

	w, h := spec.size()
	return &Chart{Plot: p, Lines: lines, width: w, height: h}, nil
}

// derive applies spec's transform to every sample of s.
func derive(xs []float64, s *Series, spec *ChartSpec) (plotter.XYs, error) {
	tr := spec.Transform
	if tr == nil {
		tr = Identity
	}
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		y := s.Values[i]
		fail := func(err error) error {
			return &TransformError{Series: s.Name, Index: i, X: x, Y: y, Err: err}
		}
		px, py, err := tr(x, y)
		if err != nil {
			return nil, fail(err)
		}
		if !finite(px) || !finite(py) {
			return nil, fail(ErrNonFinite)
		}
		if (spec.XScale.isLog() && px <= 0) || (spec.YScale.isLog() && py <= 0) {
			return nil, fail(ErrNonPositiveLog)
		}
		pts[i] = plotter.XY{X: px, Y: py}
	}
	return pts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
