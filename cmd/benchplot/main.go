// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws the sparse matrix-vector product benchmark charts.
//
// Usage:
//
//	benchplot [flags] [results.txt ...]
//
// With no input files, benchplot renders the published figures
// selected by -figure (sparsity_scaling, strong_scaling and
// weak_scaling by default). With input files in the Go benchmark
// format, it builds one figure of the dimension given by -kind from
// those results; -series and -x select the series and the
// independent variable of each result.
//
// Charts are written to the directories given by -png, -svg, -pdf and
// -eps, named after the figure. -csv prints the plotted points to
// standard output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/slapgas/benchplot/benchload"
	"github.com/slapgas/benchplot/chart"
	"github.com/slapgas/benchplot/figures"
	"golang.org/x/perf/benchfmt"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchplot [flags] [results.txt ...]\n")
	fmt.Fprintf(os.Stderr, "flags:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagFigure = flag.String("figure", "all", "comma-separated published `figures` to draw: sparsity, strong, weak or all")
	flagPNG    = flag.String("png", "", "`directory` to write png charts into")
	flagSVG    = flag.String("svg", "", "`directory` to write svg charts into")
	flagPDF    = flag.String("pdf", "", "`directory` to write pdf charts into")
	flagEPS    = flag.String("eps", "", "`directory` to write eps charts into")
	flagCSV    = flag.Bool("csv", false, "print the plotted points in CSV form")

	flagKind     = flag.String("kind", "strong", "benchmark `dimension` of input results: sparsity, strong or weak")
	flagSeries   = flag.String("series", "/impl", "projection `expression` naming the series of each result")
	flagX        = flag.String("x", "/nprocs", "projection `expression` giving the x value of each result")
	flagUnit     = flag.String("unit", "sec/op", "`unit` of the plotted measurement")
	flagFilter   = flag.String("filter", "*", "use only results matching `query`")
	flagSummary  = flag.String("summary", "median", "reduce repeated runs by `stat`: median, mean or min")
	flagBaseline = flag.String("baseline", figures.DefaultBaseline, "`series` whose 1-processor runtime normalizes parallel efficiency")
	flagName     = flag.String("name", "", "output file `name` for a figure built from input files (default the -kind name)")
	flagTitle    = flag.String("title", "", "chart title")
)

// outputs says where rendered charts go.
type outputs struct {
	dirs map[chart.Format]string
	csv  io.Writer
}

func (o *outputs) empty() bool {
	return len(o.dirs) == 0 && o.csv == nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	out := &outputs{dirs: make(map[chart.Format]string)}
	for f, dir := range map[chart.Format]string{
		chart.PNG: *flagPNG, chart.SVG: *flagSVG, chart.PDF: *flagPDF, chart.EPS: *flagEPS,
	} {
		if dir != "" {
			out.dirs[f] = dir
		}
	}
	if *flagCSV {
		out.csv = os.Stdout
	}
	if out.empty() {
		fmt.Fprintf(os.Stderr, "benchplot: no output selected; use -png, -svg, -pdf, -eps or -csv\n")
		flag.Usage()
	}

	var err error
	if flag.NArg() > 0 {
		err = plotFiles(flag.Args(), out)
	} else {
		err = plotFigures(*flagFigure, out)
	}
	if err != nil {
		fail("benchplot: %v\n", err)
	}
}

// plotFigures renders the published figures named in the
// comma-separated list names.
func plotFigures(names string, out *outputs) error {
	var figs []figures.Figure
	if names == "all" {
		figs = figures.All()
	} else {
		for _, name := range strings.Split(names, ",") {
			f, ok := figures.Lookup(strings.TrimSpace(name))
			if !ok {
				return fmt.Errorf("unknown figure %q", name)
			}
			figs = append(figs, f)
		}
	}
	for _, f := range figs {
		c, err := f.Render()
		if err != nil {
			return err
		}
		if err := out.write(f.Name, c); err != nil {
			return err
		}
	}
	return nil
}

// plotFiles builds a figure from benchmark results in paths.
func plotFiles(paths []string, out *outputs) error {
	kind, err := figures.ParseKind(*flagKind)
	if err != nil {
		return err
	}
	summary, err := benchload.ParseSummary(*flagSummary)
	if err != nil {
		return err
	}
	b, err := benchload.NewBuilder(&benchload.Options{
		Series:  *flagSeries,
		X:       *flagX,
		Unit:    *flagUnit,
		Filter:  *flagFilter,
		Summary: summary,
		Styles:  figures.Styles,
		Warn:    warn,
	})
	if err != nil {
		return err
	}
	files := benchfmt.Files{Paths: paths, AllowStdin: true, AllowLabels: true}
	if err := b.AddFiles(files); err != nil {
		return err
	}
	ds, err := b.Dataset()
	if err != nil {
		return err
	}
	spec, err := figures.Spec(kind, ds, *flagBaseline)
	if err != nil {
		return err
	}
	spec.Title = *flagTitle
	c, err := chart.Render(ds, spec)
	if err != nil {
		return err
	}
	name := *flagName
	if name == "" {
		name = kind.String() + "_scaling"
	}
	return out.write(name, c)
}

func (o *outputs) write(name string, c *chart.Chart) error {
	for _, f := range chart.Formats {
		dir, ok := o.dirs[f]
		if !ok {
			continue
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
		if err := c.Save(filepath.Join(dir, name+"."+string(f))); err != nil {
			return err
		}
	}
	if o.csv != nil {
		return c.WriteCSV(o.csv)
	}
	return nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	exit(1)
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
