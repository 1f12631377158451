// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "fmt"

// A Transform maps a sample (x, y) to the point that is plotted for
// it. Transforms must be pure: the same input always yields the same
// point.
type Transform func(x, y float64) (float64, float64, error)

// Identity plots samples unchanged.
func Identity(x, y float64) (float64, float64, error) {
	return x, y, nil
}

// InvertX plots (1/x, y). It turns sparsity samples into density of
// nonzeros on the x axis and leaves the measurement alone.
func InvertX(x, y float64) (float64, float64, error) {
	if x == 0 {
		return 0, 0, ErrDivideByZero
	}
	return 1 / x, y, nil
}

// ParallelEfficiency returns a Transform for strong-scaling data,
// where x is a processor count and y a runtime. The derived value is
// baseline / (y * x), so 1 is ideal linear speedup relative to the
// baseline runtime.
func ParallelEfficiency(baseline float64) Transform {
	return func(procs, runtime float64) (float64, float64, error) {
		cpu := runtime * procs
		if cpu == 0 {
			return 0, 0, ErrDivideByZero
		}
		return procs, baseline / cpu, nil
	}
}

// Baseline returns the first sample of the series called name, which
// for strong-scaling data is its single-processor runtime.
func Baseline(d *Dataset, name string) (float64, error) {
	s := d.Lookup(name)
	if s == nil {
		return 0, &InvalidDatasetError{Series: name, Reason: "baseline series not found"}
	}
	if len(s.Values) == 0 {
		return 0, &EmptySeriesError{Reason: fmt.Sprintf("baseline series %q has no samples", name)}
	}
	return s.Values[0], nil
}
