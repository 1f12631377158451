// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Format is an image file format a Chart can be written in.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
	EPS Format = "eps"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, SVG, PDF, EPS}

// DPI is the resolution of PNG output.
const DPI = 300

// FormatFromPath returns the Format named by path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q for %s", ext, path)
}

func (c *Chart) canvas(f Format) (vg.CanvasWriterTo, error) {
	w, h := c.width, c.height
	switch f {
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}, nil
	case SVG:
		return vgsvg.New(w, h), nil
	case PDF:
		return vgpdf.New(w, h), nil
	case EPS:
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported image format %q", string(f))
}

// WriteTo draws c in format f and writes the image to w.
func (c *Chart) WriteTo(w io.Writer, f Format) (int64, error) {
	can, err := c.canvas(f)
	if err != nil {
		return 0, err
	}
	c.Plot.Draw(draw.New(can))
	return can.WriteTo(w)
}

// Save writes c to the file at path, in the format given by its
// extension.
func (c *Chart) Save(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(out, f)
	return err
}

// WriteCSV writes the plotted points of c as "series,x,y" records,
// one per point, preceded by a header.
func (c *Chart) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"series", "x", "y"})
	for _, l := range c.Lines {
		for _, pt := range l.Points {
			cw.Write([]string{l.Name, strof(pt.X), strof(pt.Y)})
		}
	}
	cw.Flush()
	return cw.Error()
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
