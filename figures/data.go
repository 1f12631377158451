// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figures

import "github.com/slapgas/benchplot/chart"

// Styles is the line style of each implementation in every figure.
var Styles = map[string]chart.LineStyle{
	"RC":        chart.Dashed,
	"SingleCSR": chart.Dotted,
	"BlockCSR":  chart.Solid,
	"PETSc":     chart.DashDot,
}

// Order is the legend order of the implementations.
var Order = []string{"RC", "SingleCSR", "BlockCSR", "PETSc"}

// build assembles a Dataset from per-implementation columns, in
// Order, skipping implementations that have no column.
func build(x []float64, cols map[string][]float64) *chart.Dataset {
	ds := &chart.Dataset{X: x}
	for _, name := range Order {
		if vals, ok := cols[name]; ok {
			ds.Add(name, Styles[name], vals...)
		}
	}
	return ds
}

// SparsityData returns the sparsity-scaling table: runtime in seconds
// against matrix sparsity (one nonzero per sparsity columns), for a
// 10000x10000 matrix on 32 nodes with one processor each. Iterations
// equal the sparsity.
func SparsityData() *chart.Dataset {
	return build(
		[]float64{1, 10, 25, 100, 250, 500, 750, 1000},
		map[string][]float64{
			"RC":        {0.0151379, 0.119727, 0.298592, 1.12657, 2.81762, 3.56664, 3.5817, 3.52355},
			"SingleCSR": {2.67412, 3.42723, 3.45157, 3.45063, 3.50171, 3.54059, 3.607, 3.64559},
			"BlockCSR":  {0.00930965, 0.00834375, 0.0108969, 0.0200195, 0.0354688, 0.065416, 0.090024, 0.11696},
			"PETSc":     {0.00907474, 0.00826985, 0.01178220, 0.02672828, 0.0583496, 0.094636, 0.117575, 0.168006},
		})
}

// StrongScalingData returns the strong-scaling table: runtime in
// seconds against processor count, for dimension 30000, sparsity 100
// and 100 iterations.
func StrongScalingData() *chart.Dataset {
	return build(
		[]float64{1, 2, 4, 8, 12, 16, 24, 32},
		map[string][]float64{
			"PETSc":     {5.286902, 2.772392, 0.881947, 0.375177, 0.253327, 0.199869, 0.155552, 0.141784},
			"BlockCSR":  {4.42098, 2.80139, 0.934391, 0.431943, 0.302391, 0.204759, 0.160694, 0.12086},
			"SingleCSR": {3.64, 180.523, 140.28, 81.799, 78.9919, 59.6613, 40.7031, 30.6574},
			"RC":        {5.21182, 3.36233, 2.84909, 2.5633, 2.59377, 2.62786, 2.72344, 2.74589},
		})
}

// WeakScalingData returns the weak-scaling table: runtime in seconds
// against processor count, with sparsity 100, 50 iterations and the
// dimension growing as 30000*sqrt(p) (30K at p=1, 169,706 at p=32).
// SingleCSR was not measured.
func WeakScalingData() *chart.Dataset {
	return build(
		[]float64{1, 4, 9, 12, 16, 24, 32},
		map[string][]float64{
			"BlockCSR": {1.97196, 2.76628, 3.64278, 3.68643, 4.01226, 4.02458, 4.02916},
			"RC":       {2.62366, 4.16499, 6.38339, 6.64633, 7.46794, 9.29513, 10.2702},
			"PETSc":    {2.754051, 2.756393, 3.425108, 3.388548, 3.588989, 3.616102, 3.535188},
		})
}
