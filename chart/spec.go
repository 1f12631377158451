// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// A Scale is the mapping of data values onto an axis.
type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

func (s Scale) valid() bool {
	return s == "" || s == Linear || s == Log
}

func (s Scale) isLog() bool { return s == Log }

// Default export size, matching the 5x4 inch figures of the
// published results.
const (
	DefaultWidth  = 5 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// A ChartSpec configures one rendering of a Dataset.
type ChartSpec struct {
	Title          string
	XLabel, YLabel string

	// XScale and YScale select linear or log axes. The zero
	// value is Linear.
	XScale, YScale Scale

	// Transform derives the plotted point from each (x, value)
	// sample. A nil Transform plots samples unchanged.
	Transform Transform

	// If ClampYMin is set, the lower bound of the y axis is
	// exactly YMin. The upper bound is always computed from the
	// data.
	ClampYMin bool
	YMin      float64

	// Width and Height are the export size. Zero means
	// DefaultWidth and DefaultHeight.
	Width, Height vg.Length
}

func (s *ChartSpec) size() (w, h vg.Length) {
	w, h = s.Width, s.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (s *ChartSpec) validate() error {
	if !s.XScale.valid() {
		return &UnsupportedScaleError{Axis: "x", Scale: s.XScale}
	}
	if !s.YScale.valid() {
		return &UnsupportedScaleError{Axis: "y", Scale: s.YScale}
	}
	if s.ClampYMin {
		if math.IsNaN(s.YMin) || math.IsInf(s.YMin, 0) {
			return &UnsupportedScaleError{Axis: "y", Scale: s.YScale, Reason: "lower bound must be finite"}
		}
		if s.YScale.isLog() && s.YMin <= 0 {
			return &UnsupportedScaleError{Axis: "y", Scale: s.YScale, Reason: "lower bound must be positive"}
		}
	}
	return nil
}
