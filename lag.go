package hudf

import "fmt"

// LagOptions configures LagFeatures.
type LagOptions struct {
	GroupBy []string // optional partition key columns
}

// LagFeatures adds, for every column and lag k, a column named {col}_lag_{k}
// holding the column's value from k rows earlier within the same group, by
// the current row order. Rows with fewer than k preceding rows in their group
// get a missing value. A lag of 0 copies the source column; a negative lag is
// a lead, taking the value from |k| rows later.
//
// Any column kind can be lagged; the generated column keeps the source kind.
func LagFeatures(f *Frame, cols []string, lags []int, opt LagOptions) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	srcs, err := f.columns(cols)
	if err != nil {
		return nil, err
	}
	if len(lags) == 0 {
		return nil, fmt.Errorf("%w: no lags given", ErrInvalidArgument)
	}

	names := make([]string, 0, len(cols)*len(lags))
	for _, col := range cols {
		for _, k := range lags {
			names = append(names, lagName(col, k))
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
	out := f.Clone()
	for ci, src := range srcs {
		for li, k := range lags {
			dst := newNullColumn(names[ci*len(lags)+li], src.Kind(), n)
			for _, part := range parts {
				shiftInto(dst, src, part, k)
			}
			if err := out.addColumn(dst); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// shiftInto writes src shifted by k rows (within one partition) into dst.
func shiftInto(dst, src *Column, part []int, k int) {
	for i := range part {
		j := i - k
		if j < 0 || j >= len(part) {
			continue
		}
		copyCell(dst, part[i], src, part[j])
	}
}
