// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark tables as grayscale line charts.
//
// A Dataset holds one independent variable (processor counts,
// sparsity levels, ...) and one Series of measurements per
// implementation. A ChartSpec describes how to draw it: axis labels,
// linear or log scales, an optional per-point Transform that derives
// a secondary metric such as parallel efficiency, and an optional
// lower bound for the y axis. Render combines the two into a Chart,
// which can be written out as PNG, SVG, PDF or EPS.
//
// Series are told apart only by line style and legend entry; every
// line is drawn in the same neutral color.
package chart

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// A LineStyle is the dash pattern used to draw one series.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
	DashDot
)

var lineStyleNames = [...]string{
	Solid:   "solid",
	Dashed:  "dashed",
	Dotted:  "dotted",
	DashDot: "dashdot",
}

func (s LineStyle) String() string {
	if s < 0 || int(s) >= len(lineStyleNames) {
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
	return lineStyleNames[s]
}

// ParseLineStyle parses a line style name. In addition to the names
// returned by LineStyle.String, it accepts the matplotlib shorthands
// "-", "--", ":" and "-.".
func ParseLineStyle(s string) (LineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid", "-":
		return Solid, nil
	case "dashed", "--":
		return Dashed, nil
	case "dotted", ":":
		return Dotted, nil
	case "dashdot", "dash-dot", "-.":
		return DashDot, nil
	}
	return 0, fmt.Errorf("unknown line style %q", s)
}

// Dashes returns the dash pattern for s, suitable for
// draw.LineStyle.Dashes. Solid lines have no pattern.
func (s LineStyle) Dashes() []vg.Length {
	switch s {
	case Dashed:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	case Dotted:
		return []vg.Length{vg.Points(1), vg.Points(1.5)}
	case DashDot:
		return []vg.Length{vg.Points(4), vg.Points(1.5), vg.Points(1), vg.Points(1.5)}
	}
	return nil
}

// A Series is one implementation's measurements across the swept
// independent variable.
type Series struct {
	// Name identifies the series in the legend. It must be unique
	// within a Dataset.
	Name string

	// Style is the dash pattern of the series' line.
	Style LineStyle

	// Values has one measurement per Dataset.X sample.
	Values []float64
}

// A Dataset is a benchmark table: the independent variable X plus
// one Series per implementation.
//
// The order of Series is the display order. Lines are drawn and
// listed in the legend in this order.
type Dataset struct {
	// X is the independent variable, assumed to be increasing.
	X []float64

	Series []*Series
}

// Add appends a new series to d and returns d, so tables can be
// written as a chain of Add calls.
func (d *Dataset) Add(name string, style LineStyle, values ...float64) *Dataset {
	d.Series = append(d.Series, &Series{Name: name, Style: style, Values: values})
	return d
}

// Lookup returns the series called name, or nil if there is none.
func (d *Dataset) Lookup(name string) *Series {
	for _, s := range d.Series {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Names returns the series names in display order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Series))
	for i, s := range d.Series {
		names[i] = s.Name
	}
	return names
}

// Validate checks the structure of d. It returns an *EmptySeriesError
// if d has no series or no samples, and an *InvalidDatasetError if a
// series is unnamed, named twice, or has a different number of values
// than d has samples.
func (d *Dataset) Validate() error {
	if d == nil || len(d.Series) == 0 {
		return &EmptySeriesError{Reason: "dataset has no series"}
	}
	if len(d.X) == 0 {
		return &EmptySeriesError{Reason: "dataset has no samples"}
	}
	seen := make(map[string]bool, len(d.Series))
	for _, s := range d.Series {
		if s == nil || s.Name == "" {
			return &InvalidDatasetError{Reason: "series has no name"}
		}
		if seen[s.Name] {
			return &InvalidDatasetError{Series: s.Name, Reason: "duplicate series name"}
		}
		seen[s.Name] = true
		if len(s.Values) != len(d.X) {
			return &InvalidDatasetError{Series: s.Name, Got: len(s.Values), Want: len(d.X)}
		}
	}
	return nil
}
