package hudf

import (
	"fmt"
	"sort"
	"time"
)

// RollingOptions configures RollingAggs. Zero values mean a plain mean over
// ungrouped rows with the window's default observation threshold.
type RollingOptions struct {
	Aggs       []string // statistics to compute, default ["mean"]
	GroupBy    []string // optional partition key columns
	MinPeriods int      // observations required for a value, 0 for the window default
}

// RollingStatsOptions configures RollingStats.
type RollingStatsOptions struct {
	Stats      []string // default ["mean", "std", "min", "max"]
	On         string   // time column; required for duration windows
	GroupBy    []string
	MinPeriods int
	Suffix     string // appended to every generated column name
}

// RollingAggs computes rolling aggregations of valueCol over every requested
// window, ordered and bounded by timeCol. One column named
// {valueCol}_{window}_{agg} is added per window and aggregation. Rows are
// sorted by time within each group (stable, ties keep original row order) for
// the computation; results are written back at the original row positions and
// the returned frame keeps the caller's row order.
//
// Windows that have not yet accumulated MinPeriods valid observations yield a
// missing value. Window membership never crosses a group boundary.
func RollingAggs(f *Frame, valueCol, timeCol string, windows []Window, opt RollingOptions) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: no windows given", ErrInvalidArgument)
	}
	for _, w := range windows {
		if err := w.validate(); err != nil {
			return nil, err
		}
	}
	if opt.MinPeriods < 0 {
		return nil, fmt.Errorf("%w: MinPeriods must not be negative", ErrInvalidArgument)
	}
	aggs := opt.Aggs
	if len(aggs) == 0 {
		aggs = []string{"mean"}
	}
	fns, err := resolveAggs(aggs, numericAggs)
	if err != nil {
		return nil, err
	}
	vcol, err := f.Column(valueCol)
	if err != nil {
		return nil, err
	}
	if !vcol.numeric() {
		return nil, fmt.Errorf("column %q: %w: rolling aggregation needs a numeric column", valueCol, ErrTypeMismatch)
	}
	tcol, err := timeColumn(f, timeCol)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(windows)*len(aggs))
	for _, w := range windows {
		for _, agg := range aggs {
			names = append(names, rollingName(valueCol, w, agg, ""))
		}
	}
	if err := ensureNewColumns(f, names); err != nil {
		return nil, err
	}
	parts, err := partitions(f, opt.GroupBy)
	if err != nil {
		return nil, err
	}

	n := f.NumRows()
	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = newNullColumn(name, Float, n)
	}

	for _, part := range parts {
		ord, times := orderPartition(part, tcol)
		vals, valid := gatherFloats(vcol, ord)
		for wi, w := range windows {
			mp := opt.MinPeriods
			if mp == 0 {
				mp = w.minPeriods()
			}
			dst := cols[wi*len(aggs) : (wi+1)*len(aggs)]
			rollingFill(dst, fns, w, mp, ord, times, vals, valid)
		}
	}

	out := f.Clone()
	for _, c := range cols {
		if err := out.addColumn(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RollingStats computes a fixed set of rolling statistics for several columns
// over a single window, adding one column named {col}_{window}_{stat}{suffix}
// per combination. Duration windows need a time column via Options.On; count
// windows without On use the current row order within each group.
func RollingStats(f *Frame, columns []string, window Window, opt RollingStatsOptions) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	if err := window.validate(); err != nil {
		return nil, err
	}
	if opt.MinPeriods < 0 {
		return nil, fmt.Errorf("%w: MinPeriods must not be negative", ErrInvalidArgument)
	}
	if window.IsDuration() && opt.On == "" {
		return nil, fmt.Errorf("%w: duration windows need a time column via On", ErrInvalidArgument)
	}
	stats := opt.Stats
	if len(stats) == 0 {
		stats = []string{"mean", "std", "min", "max"}
	}
	fns, err := resolveAggs(stats, numericAggs)
	if err != nil {
		return nil, err
	}
	vcols, err := f.columns(columns)
	if err != nil {
		return nil, err
	}
	for _, c := range vcols {
		if !c.numeric() {
			return nil, fmt.Errorf("column %q: %w: rolling statistics need a numeric column", c.Name(), ErrTypeMismatch)
		}
	}
	var tcol *Column
	if opt.On != "" {
		if tcol, err = timeColumn(f, opt.On); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(columns)*len(stats))
	for _, col := range columns {
		for _, s := range stats {
			names = append(names, rollingName(col, window, s, opt.Suffix))
		}
	}
	if err := ensureNewColumns(f, names); err != nil {
		return nil, err
	}
	parts, err := partitions(f, opt.GroupBy)
	if err != nil {
		return nil, err
	}

	mp := opt.MinPeriods
	if mp == 0 {
		mp = window.minPeriods()
	}
	n := f.NumRows()
	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = newNullColumn(name, Float, n)
	}

	for _, part := range parts {
		ord, times := orderPartition(part, tcol)
		for ci, vcol := range vcols {
			vals, valid := gatherFloats(vcol, ord)
			dst := cols[ci*len(stats) : (ci+1)*len(stats)]
			rollingFill(dst, fns, window, mp, ord, times, vals, valid)
		}
	}

	out := f.Clone()
	for _, c := range cols {
		if err := out.addColumn(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// timeColumn resolves name to a Time column.
func timeColumn(f *Frame, name string) (*Column, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind() != Time {
		return nil, fmt.Errorf("column %q: %w: must be a timestamp column", name, ErrTypeMismatch)
	}
	return c, nil
}

// orderPartition returns the partition's row indices in computation order.
// With a time column the rows are stably sorted by it, ties keeping original
// row order, and times holds the timestamps aligned with ord; rows whose time
// is missing are dropped from the ordering (their outputs stay missing).
// Without a time column the partition order is kept as-is and times is nil.
func orderPartition(part []int, tcol *Column) (ord []int, times []time.Time) {
	if tcol == nil {
		return part, nil
	}
	ord = make([]int, 0, len(part))
	for _, i := range part {
		if !tcol.IsNull(i) {
			ord = append(ord, i)
		}
	}
	sort.SliceStable(ord, func(a, b int) bool {
		ta, _ := tcol.Time(ord[a])
		tb, _ := tcol.Time(ord[b])
		return ta.Before(tb)
	})
	times = make([]time.Time, len(ord))
	for i, row := range ord {
		times[i], _ = tcol.Time(row)
	}
	return ord, times
}

// gatherFloats extracts the column's values in ord order, with a validity
// mask covering both missing entries and (for safety) non-numeric cells.
func gatherFloats(c *Column, ord []int) (vals []float64, valid []bool) {
	vals = make([]float64, len(ord))
	valid = make([]bool, len(ord))
	for i, row := range ord {
		vals[i], valid[i] = c.Float(row)
	}
	return vals, valid
}

// rollingFill computes every aggregation for one window over one ordered
// partition, writing results back at original row positions. dst is aligned
// with fns.
func rollingFill(dst []*Column, fns []aggFunc, w Window, minPeriods int, ord []int, times []time.Time, vals []float64, valid []bool) {
	var buf []float64
	for pos := range ord {
		start := w.start(times, pos)
		buf = windowValues(buf, vals, valid, start, pos+1)
		if len(buf) < minPeriods {
			continue
		}
		for i, fn := range fns {
			if v, ok := fn(buf); ok {
				dst[i].setFloat(ord[pos], v)
			}
		}
	}
}
