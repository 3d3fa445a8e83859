package hudf

import "fmt"

// DiffOptions configures DiffFeatures. The zero value computes an absolute
// first difference over ungrouped rows.
type DiffOptions struct {
	Periods []int    // offsets to difference over, default [1]
	Pct     bool     // percent change instead of absolute difference
	GroupBy []string // optional partition key columns
}

// DiffFeatures adds, for every numeric column and period p, a column named
// {col}_diff_{p} holding current minus the value p rows earlier within the
// same group, or {col}_pct_{p} holding (current-previous)/previous when Pct
// is set. Rows without a value p rows back, rows where either operand is
// missing, and percent changes over a zero base all get a missing value (the
// division-by-zero rule: missing, never infinity). Negative periods difference
// against later rows, mirroring negative lags.
func DiffFeatures(f *Frame, cols []string, opt DiffOptions) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	srcs, err := f.columns(cols)
	if err != nil {
		return nil, err
	}
	for _, c := range srcs {
		if !c.numeric() {
			return nil, fmt.Errorf("column %q: %w: differencing needs a numeric column", c.Name(), ErrTypeMismatch)
		}
	}
	periods := opt.Periods
	if len(periods) == 0 {
		periods = []int{1}
	}

	names := make([]string, 0, len(cols)*len(periods))
	for _, col := range cols {
		for _, p := range periods {
			names = append(names, diffName(col, p, opt.Pct))
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
		for pi, p := range periods {
			dst := newNullColumn(names[ci*len(periods)+pi], Float, n)
			for _, part := range parts {
				diffInto(dst, src, part, p, opt.Pct)
			}
			if err := out.addColumn(dst); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// diffInto writes the p-row difference (or percent change) of src within one
// partition into dst.
func diffInto(dst, src *Column, part []int, p int, pct bool) {
	for i := range part {
		j := i - p
		if j < 0 || j >= len(part) {
			continue
		}
		cur, ok := src.Float(part[i])
		if !ok {
			continue
		}
		prev, ok := src.Float(part[j])
		if !ok {
			continue
		}
		if pct {
			if prev == 0 {
				continue
			}
			dst.setFloat(part[i], (cur-prev)/prev)
		} else {
			dst.setFloat(part[i], cur-prev)
		}
	}
}
