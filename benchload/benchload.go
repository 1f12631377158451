// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchload builds chart datasets from benchmark results in
// the Go benchmark format.
//
// Each result is assigned to a series and an x sample by projecting
// it with benchproc projection expressions, by default "/impl" and
// "/nprocs". For example, the lines
//
//	BenchmarkMatVec/impl=PETSc/nprocs=1 1 5.286902 sec/op
//	BenchmarkMatVec/impl=PETSc/nprocs=2 1 2.772392 sec/op
//
// contribute two samples to the PETSc series. Repeated measurements of
// the same (series, x) cell are summarized into one value.
package benchload

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/slapgas/benchplot/chart"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchproc"
	"golang.org/x/perf/benchunit"
)

// A Summary reduces repeated measurements to one value.
type Summary int

const (
	Median Summary = iota
	Mean
	Min
)

var summaryNames = [...]string{Median: "median", Mean: "mean", Min: "min"}

func (s Summary) String() string {
	if s < 0 || int(s) >= len(summaryNames) {
		return fmt.Sprintf("Summary(%d)", int(s))
	}
	return summaryNames[s]
}

// ParseSummary parses a Summary name.
func ParseSummary(s string) (Summary, error) {
	for i, name := range summaryNames {
		if s == name {
			return Summary(i), nil
		}
	}
	return 0, fmt.Errorf("unknown summary %q (want median, mean or min)", s)
}

// Options configures a Builder.
type Options struct {
	// Series and X are projection expressions selecting the
	// series name and the independent variable of each result.
	// X must project to a number.
	Series string
	X      string

	// Unit is the measurement plotted. It is tidied the same way
	// benchfmt tidies units, so "ns/op" selects "sec/op" values
	// (in seconds).
	Unit string

	// Filter is a benchproc filter expression.
	Filter string

	Summary    Summary
	Confidence float64

	// Styles assigns line styles to series names. Series not
	// listed get styles in Solid, Dashed, Dotted, DashDot order.
	Styles map[string]chart.LineStyle

	// Warn, if not nil, is called for non-fatal problems such as
	// unparseable input lines or cells that mix results differing
	// in other keys.
	Warn func(format string, args ...interface{})
}

// DefaultOptions returns the options matching the layout of the
// matrix-vector product benchmark results.
func DefaultOptions() *Options {
	return &Options{
		Series:     "/impl",
		X:          "/nprocs",
		Unit:       "sec/op",
		Filter:     "*",
		Summary:    Median,
		Confidence: 0.95,
	}
}

// A Builder collects benchmark results into a Dataset.
type Builder struct {
	filter            *benchproc.Filter
	seriesBy, xBy     *benchproc.Projection
	residue           *benchproc.Projection
	unit              string
	summary           Summary
	confidence        float64
	styles            map[string]chart.LineStyle
	warn              func(format string, args ...interface{})
	cells             map[cellKey]*cell
	seriesKeys, xKeys map[benchproc.Key]struct{}
}

type cellKey struct {
	series, x benchproc.Key
}

type cell struct {
	values  []float64
	residue map[benchproc.Key]struct{}
}

// NewBuilder returns a Builder configured by opts. A nil opts means
// DefaultOptions.
func NewBuilder(opts *Options) (*Builder, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	filterExpr := opts.Filter
	if filterExpr == "" {
		filterExpr = "*"
	}
	filter, err := benchproc.NewFilter(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("parsing filter: %w", err)
	}

	var parser benchproc.ProjectionParser
	seriesBy, err := parser.Parse(opts.Series, filter)
	if err != nil {
		return nil, fmt.Errorf("parsing series projection: %w", err)
	}
	xBy, err := parser.Parse(opts.X, filter)
	if err != nil {
		return nil, fmt.Errorf("parsing x projection: %w", err)
	}
	if opts.Unit == "" {
		return nil, fmt.Errorf("no unit selected")
	}
	_, unit := benchunit.Tidy(1, opts.Unit)

	conf := opts.Confidence
	if conf <= 0 || conf >= 1 {
		conf = 0.95
	}
	warn := opts.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &Builder{
		filter:     filter,
		seriesBy:   seriesBy,
		xBy:        xBy,
		residue:    parser.Residue(),
		unit:       unit,
		summary:    opts.Summary,
		confidence: conf,
		styles:     opts.Styles,
		warn:       warn,
		cells:      make(map[cellKey]*cell),
		seriesKeys: make(map[benchproc.Key]struct{}),
		xKeys:      make(map[benchproc.Key]struct{}),
	}, nil
}

// AddFiles adds every result read from files. Syntax errors in the
// input are reported through Warn and skipped.
func (b *Builder) AddFiles(files benchfmt.Files) error {
	for files.Scan() {
		rec := files.Result()
		if err, ok := rec.(*benchfmt.SyntaxError); ok {
			b.warn("%v\n", err)
			continue
		}
		if res, ok := rec.(*benchfmt.Result); ok {
			b.Add(res)
		}
	}
	return files.Err()
}

// Add adds result's measurement in the selected unit. Results that
// do not match the filter or have no such measurement are ignored.
func (b *Builder) Add(result *benchfmt.Result) {
	if ok, _ := b.filter.Apply(result); !ok {
		return
	}
	v, ok := result.Value(b.unit)
	if !ok {
		return
	}

	k := cellKey{b.seriesBy.Project(result), b.xBy.Project(result)}
	c := b.cells[k]
	if c == nil {
		c = &cell{residue: make(map[benchproc.Key]struct{})}
		b.cells[k] = c
		b.seriesKeys[k.series] = struct{}{}
		b.xKeys[k.x] = struct{}{}
	}
	c.values = append(c.values, v)
	c.residue[b.residue.Project(result)] = struct{}{}
}

// Dataset returns the collected results as a Dataset. The x samples
// are sorted numerically; series appear in the order they were first
// seen. Every series must have a measurement at every x sample.
func (b *Builder) Dataset() (*chart.Dataset, error) {
	if len(b.cells) == 0 {
		return nil, &chart.EmptySeriesError{Reason: fmt.Sprintf("no %s measurements", b.unit)}
	}

	type xSample struct {
		key benchproc.Key
		val float64
	}
	var xs []xSample
	for k := range b.xKeys {
		s := k.StringValues()
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("x value %q is not a number", s)
		}
		xs = append(xs, xSample{k, v})
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].val < xs[j].val })
	for i := 1; i < len(xs); i++ {
		if xs[i].val == xs[i-1].val {
			return nil, fmt.Errorf("x values %q and %q are equal", xs[i-1].key.StringValues(), xs[i].key.StringValues())
		}
	}

	seriesKeys := mapKeys(b.seriesKeys)
	benchproc.SortKeys(seriesKeys)

	ds := &chart.Dataset{X: make([]float64, len(xs))}
	for i, x := range xs {
		ds.X[i] = x.val
	}
	for i, sk := range seriesKeys {
		name := sk.StringValues()
		style, ok := b.styles[name]
		if !ok {
			style = chart.LineStyle(i % 4)
		}
		vals := make([]float64, len(xs))
		for j, x := range xs {
			c := b.cells[cellKey{sk, x.key}]
			if c == nil {
				return nil, &chart.InvalidDatasetError{Series: name, Reason: fmt.Sprintf("no measurement at x=%s", x.key.StringValues())}
			}
			b.warnResidue(name, x.key, c)
			vals[j] = b.summarize(c.values)
		}
		ds.Add(name, style, vals...)
	}
	return ds, nil
}

func (b *Builder) summarize(values []float64) float64 {
	switch b.summary {
	case Mean:
		return stats.Mean(values)
	case Min:
		lo, _ := stats.Bounds(values)
		return lo
	}
	sample := benchmath.NewSample(values, &benchmath.DefaultThresholds)
	return benchmath.AssumeNothing.Summary(sample, b.confidence).Center
}

func (b *Builder) warnResidue(series string, x benchproc.Key, c *cell) {
	nsk := benchproc.NonSingularFields(mapKeys(c.residue))
	if len(nsk) == 0 {
		return
	}
	var fields []string
	for _, f := range nsk {
		fields = append(fields, f.String())
	}
	b.warn("%s at x=%s: benchmarks vary in %s\n", series, x.StringValues(), strings.Join(fields, ", "))
}

func mapKeys(m map[benchproc.Key]struct{}) []benchproc.Key {
	var keys []benchproc.Key
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
