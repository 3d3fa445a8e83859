package hudf

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// aggFunc computes one statistic over the valid observations of a window or
// group. The second return is false when the statistic is undefined for the
// given sample (the result becomes a missing value).
type aggFunc func(xs []float64) (float64, bool)

// numericAggs are the statistics available to the rolling operations.
// Grouped statistics add a few non-numeric ones on top (see grouped.go).
var numericAggs = map[string]aggFunc{
	"mean": func(xs []float64) (float64, bool) {
		if len(xs) == 0 {
			return 0, false
		}
		return stat.Mean(xs, nil), true
	},
	"std": func(xs []float64) (float64, bool) {
		// Sample standard deviation; undefined for a single observation.
		if len(xs) < 2 {
			return 0, false
		}
		return stat.StdDev(xs, nil), true
	},
	"min": func(xs []float64) (float64, bool) {
		if len(xs) == 0 {
			return 0, false
		}
		return floats.Min(xs), true
	},
	"max": func(xs []float64) (float64, bool) {
		if len(xs) == 0 {
			return 0, false
		}
		return floats.Max(xs), true
	},
	"sum": func(xs []float64) (float64, bool) {
		if len(xs) == 0 {
			return 0, false
		}
		return floats.Sum(xs), true
	},
	"count": func(xs []float64) (float64, bool) {
		return float64(len(xs)), true
	},
	"median": func(xs []float64) (float64, bool) {
		// Midpoint median: the mean of the two central order statistics for
		// even sample sizes.
		if len(xs) == 0 {
			return 0, false
		}
		sorted := append([]float64(nil), xs...)
		sort.Float64s(sorted)
		n := len(sorted)
		if n%2 == 1 {
			return sorted[n/2], true
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2, true
	},
	"skew": func(xs []float64) (float64, bool) {
		if len(xs) < 3 {
			return 0, false
		}
		return stat.Skew(xs, nil), true
	},
	"kurt": func(xs []float64) (float64, bool) {
		if len(xs) < 4 {
			return 0, false
		}
		return stat.ExKurtosis(xs, nil), true
	},
}

// resolveAggs maps statistic names onto their implementations, rejecting
// unknown names.
func resolveAggs(names []string, table map[string]aggFunc, extra ...string) ([]aggFunc, error) {
	valid := make([]string, 0, len(table)+len(extra))
	for name := range table {
		valid = append(valid, name)
	}
	valid = append(valid, extra...)
	sort.Strings(valid)

	fns := make([]aggFunc, len(names))
	for i, name := range names {
		fn, ok := table[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown statistic %q (valid: %s)",
				ErrInvalidArgument, name, strings.Join(valid, ", "))
		}
		fns[i] = fn
	}
	return fns, nil
}

// windowValues gathers the valid observations of vals[start:end] into buf.
func windowValues(buf []float64, vals []float64, valid []bool, start, end int) []float64 {
	buf = buf[:0]
	for i := start; i < end; i++ {
		if valid[i] {
			buf = append(buf, vals[i])
		}
	}
	return buf
}
