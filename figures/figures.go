// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figures holds the published sparse matrix-vector product
// benchmark results and the chart configuration for each benchmark
// dimension: sparsity scaling, strong scaling and weak scaling.
package figures

import (
	"fmt"
	"strings"

	"github.com/slapgas/benchplot/chart"
)

// A Kind is a benchmark dimension. It determines how a table is
// turned into a chart.
type Kind int

const (
	// Sparsity plots runtime against density of nonzeros
	// (the reciprocal of the sparsity samples), log/log.
	Sparsity Kind = iota
	// Strong plots parallel efficiency against processor count,
	// relative to a baseline series' single-processor runtime.
	Strong
	// Weak plots runtime against processor count.
	Weak
)

var kindNames = [...]string{Sparsity: "sparsity", Strong: "strong", Weak: "weak"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a Kind name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown figure kind %q (want sparsity, strong or weak)", s)
}

// DefaultBaseline is the series whose single-processor runtime
// normalizes parallel efficiency.
const DefaultBaseline = "PETSc"

// Spec returns the chart configuration for plotting ds as kind. For
// Strong, baseline names the reference series; it is ignored for the
// other kinds.
func Spec(kind Kind, ds *chart.Dataset, baseline string) (*chart.ChartSpec, error) {
	switch kind {
	case Sparsity:
		return &chart.ChartSpec{
			XLabel:    "Density of nonzeros",
			YLabel:    "Runtime/density [s]",
			XScale:    chart.Log,
			YScale:    chart.Log,
			Transform: chart.InvertX,
		}, nil
	case Strong:
		base, err := chart.Baseline(ds, baseline)
		if err != nil {
			return nil, err
		}
		return &chart.ChartSpec{
			XLabel:    "Number of Processors",
			YLabel:    fmt.Sprintf("Parallel Efficiency [Inverse CPU-s, scaled to 1-process %s]", baseline),
			XScale:    chart.Linear,
			YScale:    chart.Linear,
			Transform: chart.ParallelEfficiency(base),
			ClampYMin: true,
		}, nil
	case Weak:
		return &chart.ChartSpec{
			XLabel:    "Number of Processors",
			YLabel:    "Runtime [s]",
			XScale:    chart.Linear,
			YScale:    chart.Linear,
			ClampYMin: true,
		}, nil
	}
	return nil, fmt.Errorf("unknown figure kind %v", kind)
}

// A Figure is one of the published charts.
type Figure struct {
	Name string
	Kind Kind
	Data func() *chart.Dataset
}

var all = []Figure{
	{"sparsity_scaling", Sparsity, SparsityData},
	{"strong_scaling", Strong, StrongScalingData},
	{"weak_scaling", Weak, WeakScalingData},
}

// All returns the published figures.
func All() []Figure {
	return append([]Figure(nil), all...)
}

// Lookup returns the figure called name. The "_scaling" suffix may be
// omitted.
func Lookup(name string) (Figure, bool) {
	for _, f := range all {
		if f.Name == name || strings.TrimSuffix(f.Name, "_scaling") == name {
			return f, true
		}
	}
	return Figure{}, false
}

// Render builds f's dataset and chart configuration and renders it.
func (f Figure) Render() (*chart.Chart, error) {
	ds := f.Data()
	spec, err := Spec(f.Kind, ds, DefaultBaseline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	c, err := chart.Render(ds, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return c, nil
}
