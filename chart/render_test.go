// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"pgregory.net/rapid"
)

func fourImpls() *Dataset {
	ds := &Dataset{X: []float64{1, 2, 4, 8}}
	ds.Add("RC", Dashed, 5.2, 3.4, 2.8, 2.6)
	ds.Add("SingleCSR", Dotted, 3.6, 180.5, 140.3, 81.8)
	ds.Add("BlockCSR", Solid, 4.4, 2.8, 0.93, 0.43)
	ds.Add("PETSc", DashDot, 5.3, 2.8, 0.88, 0.38)
	return ds
}

func TestRenderLines(t *testing.T) {
	ds := fourImpls()
	c, err := Render(ds, &ChartSpec{XLabel: "Number of Processors", YLabel: "Runtime [s]"})
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Lines) != len(ds.Series) {
		t.Fatalf("got %d lines, want %d", len(c.Lines), len(ds.Series))
	}
	for i, l := range c.Lines {
		s := ds.Series[i]
		if l.Name != s.Name || l.Style != s.Style {
			t.Errorf("line %d = %s/%v, want %s/%v", i, l.Name, l.Style, s.Name, s.Style)
		}
		if l.Color != Neutral {
			t.Errorf("line %s has color %v, want %v", l.Name, l.Color, Neutral)
		}
		if len(l.Points) != len(ds.X) {
			t.Errorf("line %s has %d points, want %d", l.Name, len(l.Points), len(ds.X))
		}
	}
	if c.Plot.X.Label.Text != "Number of Processors" || c.Plot.Y.Label.Text != "Runtime [s]" {
		t.Errorf("labels = %q, %q", c.Plot.X.Label.Text, c.Plot.Y.Label.Text)
	}
	if _, ok := c.Plot.Y.Scale.(plot.LinearScale); !ok {
		t.Errorf("y scale is %T, want plot.LinearScale", c.Plot.Y.Scale)
	}
}

func TestRenderLogAxes(t *testing.T) {
	c, err := Render(fourImpls(), &ChartSpec{XScale: Log, YScale: Log})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Plot.X.Scale.(plot.LogScale); !ok {
		t.Errorf("x scale is %T, want plot.LogScale", c.Plot.X.Scale)
	}
	if _, ok := c.Plot.Y.Scale.(plot.LogScale); !ok {
		t.Errorf("y scale is %T, want plot.LogScale", c.Plot.Y.Scale)
	}
}

func TestRenderLogNonPositive(t *testing.T) {
	ds := (&Dataset{X: []float64{1, 2}}).Add("RC", Dashed, 1, 0)
	_, err := Render(ds, &ChartSpec{YScale: Log})
	var te *TransformError
	if !errors.As(err, &te) || !errors.Is(err, ErrNonPositiveLog) {
		t.Errorf("got %v, want *TransformError wrapping ErrNonPositiveLog", err)
	}
}

func TestRenderUnsupportedScale(t *testing.T) {
	for _, spec := range []*ChartSpec{
		{XScale: "symlog"},
		{YScale: "logit"},
		{YScale: Log, ClampYMin: true, YMin: 0},
	} {
		_, err := Render(fourImpls(), spec)
		var use *UnsupportedScaleError
		if !errors.As(err, &use) {
			t.Errorf("Render with %+v: got %v, want *UnsupportedScaleError", spec, err)
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	ds := &Dataset{X: []float64{1, 2, 4, 8, 12, 16, 24, 32}}
	ds.Add("RC", Dashed, 1, 2, 3, 4, 5, 6, 7)
	c, err := Render(ds, nil)
	var ide *InvalidDatasetError
	if !errors.As(err, &ide) {
		t.Errorf("got %v, want *InvalidDatasetError", err)
	}
	if c != nil {
		t.Errorf("got partial chart")
	}

	var ese *EmptySeriesError
	if _, err := Render(&Dataset{}, nil); !errors.As(err, &ese) {
		t.Errorf("empty dataset: got %v, want *EmptySeriesError", err)
	}
}

func TestRenderClampYMin(t *testing.T) {
	for _, test := range []struct {
		values  []float64
		wantMax float64
	}{
		{[]float64{0.5, 1.5, 2}, 2},
		{[]float64{-3, -1, 2}, 2},
		{[]float64{-3, -2, -1}, 1}, // all below the clamp
	} {
		ds := (&Dataset{X: []float64{1, 2, 3}}).Add("RC", Dashed, test.values...)
		c, err := Render(ds, &ChartSpec{ClampYMin: true, YMin: 0})
		if err != nil {
			t.Fatal(err)
		}
		// Drawing must not move the bounds.
		if _, err := c.WriteTo(io.Discard, SVG); err != nil {
			t.Fatal(err)
		}
		min, max := c.YRange()
		if min != 0 || max != test.wantMax {
			t.Errorf("values %v: y range [%v, %v], want [0, %v]", test.values, min, max, test.wantMax)
		}
	}
}

func TestRenderNoClamp(t *testing.T) {
	ds := (&Dataset{X: []float64{1, 2, 3}}).Add("RC", Dashed, 0.5, 1.5, 2)
	c, err := Render(ds, &ChartSpec{})
	if err != nil {
		t.Fatal(err)
	}
	if min, _ := c.YRange(); min != 0.5 {
		t.Errorf("y min = %v, want data minimum 0.5", min)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	ds := fourImpls()
	before := fourImpls()
	if _, err := Render(ds, &ChartSpec{Transform: ParallelEfficiency(5.3)}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, ds); diff != "" {
		t.Errorf("Render mutated dataset (-before +after):\n%s", diff)
	}
}

func genDataset(t *rapid.T) *Dataset {
	n := rapid.IntRange(1, 6).Draw(t, "samples")
	ds := &Dataset{X: make([]float64, n)}
	x := 0.0
	for i := range ds.X {
		x += rapid.Float64Range(0.5, 100).Draw(t, "step")
		ds.X[i] = x
	}
	styles := []LineStyle{Solid, Dashed, Dotted, DashDot}
	k := rapid.IntRange(1, 5).Draw(t, "series")
	for i := 0; i < k; i++ {
		vals := rapid.SliceOfN(rapid.Float64Range(1e-3, 1e3), n, n).Draw(t, "values")
		ds.Add(fmt.Sprintf("impl%d", i), styles[i%len(styles)], vals...)
	}
	return ds
}

func genSpec(t *rapid.T, ds *Dataset) *ChartSpec {
	spec := &ChartSpec{
		XScale: rapid.SampledFrom([]Scale{"", Linear, Log}).Draw(t, "xscale"),
		YScale: rapid.SampledFrom([]Scale{"", Linear, Log}).Draw(t, "yscale"),
	}
	switch rapid.IntRange(0, 2).Draw(t, "transform") {
	case 1:
		spec.Transform = InvertX
	case 2:
		spec.Transform = ParallelEfficiency(ds.Series[0].Values[0])
	}
	if !spec.YScale.isLog() && rapid.Bool().Draw(t, "clamp") {
		spec.ClampYMin = true
	}
	return spec
}

func TestRenderProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ds := genDataset(t)
		spec := genSpec(t, ds)

		c, err := Render(ds, spec)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if len(c.Lines) != len(ds.Series) {
			t.Fatalf("got %d lines, want %d", len(c.Lines), len(ds.Series))
		}
		for i, l := range c.Lines {
			if l.Name != ds.Series[i].Name || l.Style != ds.Series[i].Style {
				t.Fatalf("line %d is %s/%v, want %s/%v", i, l.Name, l.Style, ds.Series[i].Name, ds.Series[i].Style)
			}
			if l.Color != Neutral {
				t.Fatalf("line %s is colored %v", l.Name, l.Color)
			}
			if len(l.Points) != len(ds.X) {
				t.Fatalf("line %s has %d points, want %d", l.Name, len(l.Points), len(ds.X))
			}
		}
		if spec.ClampYMin {
			if min, _ := c.YRange(); min != spec.YMin {
				t.Fatalf("y min = %v, want %v", min, spec.YMin)
			}
		}

		again, err := Render(ds, spec)
		if err != nil {
			t.Fatalf("second Render: %v", err)
		}
		for i := range c.Lines {
			if diff := cmp.Diff(c.Lines[i].Points, again.Lines[i].Points); diff != "" {
				t.Fatalf("line %s differs between renders:\n%s", c.Lines[i].Name, diff)
			}
		}
	})
}
