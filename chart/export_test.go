// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"strong.png":       PNG,
		"out/weak.SVG":     SVG,
		"sparsity.pdf":     PDF,
		"/tmp/figure3.eps": EPS,
	} {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v, want %q", path, got, err, want)
		}
	}
	if _, err := FormatFromPath("chart.gif"); err == nil {
		t.Errorf("FormatFromPath(chart.gif) succeeded, want error")
	}
}

func TestWriteTo(t *testing.T) {
	c, err := Render(fourImpls(), &ChartSpec{Title: "Strong scaling", ClampYMin: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		f    Format
		mark string
	}{
		{PNG, "\x89PNG"},
		{SVG, "<svg"},
		{PDF, "%PDF"},
		{EPS, "PS-Adobe"},
	} {
		var buf bytes.Buffer
		if _, err := c.WriteTo(&buf, test.f); err != nil {
			t.Errorf("WriteTo(%s): %v", test.f, err)
			continue
		}
		if !strings.Contains(buf.String(), test.mark) {
			t.Errorf("WriteTo(%s) output does not contain %q", test.f, test.mark)
		}
	}
	if _, err := c.WriteTo(new(bytes.Buffer), "gif"); err == nil {
		t.Errorf("WriteTo(gif) succeeded, want error")
	}
}

func TestPNGSize(t *testing.T) {
	c, err := Render(fourImpls(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf, PNG); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// 5x4 inches at DPI.
	if cfg.Width != 5*DPI || cfg.Height != 4*DPI {
		t.Errorf("PNG is %dx%d, want %dx%d", cfg.Width, cfg.Height, 5*DPI, 4*DPI)
	}
}

func TestSave(t *testing.T) {
	c, err := Render(fourImpls(), nil)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "chart.svg")
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("Save wrote nothing: %v", err)
	}
	if err := c.Save(filepath.Join(t.TempDir(), "chart.bmp")); err == nil {
		t.Errorf("Save(chart.bmp) succeeded, want error")
	}
}

func TestWriteCSV(t *testing.T) {
	ds := (&Dataset{X: []float64{1, 10}}).Add("RC", Dashed, 0.5, 2).Add("PETSc", DashDot, 0.25, 1)
	c, err := Render(ds, &ChartSpec{Transform: InvertX})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := `series,x,y
RC,1,0.5
RC,0.1,2
PETSc,1,0.25
PETSc,0.1,1
`
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV got:\n%s\nwant:\n%s", got, want)
	}
}
