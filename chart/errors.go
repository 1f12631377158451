// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
)

// Errors wrapped by TransformError.
var (
	ErrDivideByZero   = errors.New("division by zero")
	ErrNonFinite      = errors.New("non-finite value")
	ErrNonPositiveLog = errors.New("non-positive value on log axis")
)

// An InvalidDatasetError reports a structural problem with a Dataset,
// typically a series whose length differs from the number of samples.
type InvalidDatasetError struct {
	Series string // empty if the problem is not specific to a series

	// Got and Want are the series length and sample count when
	// Reason is empty.
	Got, Want int

	Reason string
}

func (e *InvalidDatasetError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = fmt.Sprintf("has %d values, want %d", e.Got, e.Want)
	}
	if e.Series == "" {
		return "invalid dataset: " + msg
	}
	return fmt.Sprintf("invalid dataset: series %q: %s", e.Series, msg)
}

// A TransformError reports a numeric failure while deriving the
// plotted point at Index of Series.
type TransformError struct {
	Series string
	Index  int
	X, Y   float64 // input to the transform
	Err    error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed: series %q sample %d (x=%g, y=%g): %v", e.Series, e.Index, e.X, e.Y, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// An UnsupportedScaleError reports an axis scale that cannot be drawn.
type UnsupportedScaleError struct {
	Axis   string // "x" or "y"
	Scale  Scale
	Reason string
}

func (e *UnsupportedScaleError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s axis: %s scale: %s", e.Axis, e.Scale, e.Reason)
	}
	return fmt.Sprintf("%s axis: unsupported scale %q", e.Axis, string(e.Scale))
}

// An EmptySeriesError reports a Dataset with nothing to draw.
type EmptySeriesError struct {
	Reason string
}

func (e *EmptySeriesError) Error() string {
	return "empty dataset: " + e.Reason
}
