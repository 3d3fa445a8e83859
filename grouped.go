package hudf

import "fmt"

// GroupedOptions configures GroupedStats. The zero value computes mean, std,
// min, and max.
type GroupedOptions struct {
	Stats  []string // default ["mean", "std", "min", "max"]
	Prefix string   // prepended to every generated column name
	Suffix string   // appended to every generated column name
}

// Statistics beyond the numeric set that GroupedStats accepts. They work on
// any column kind: nunique counts distinct present values, first and last
// take the group's first and last present value.
const (
	statNUnique = "nunique"
	statFirst   = "first"
	statLast    = "last"
	statCount   = "count"
)

func groupedStatKnown(s string) bool {
	if _, ok := numericAggs[s]; ok {
		return true
	}
	switch s {
	case statNUnique, statFirst, statLast:
		return true
	}
	return false
}

// GroupedStats computes one aggregate per group per (column, statistic) pair
// and broadcasts it onto every row of that group as a new column named
// {prefix}{col}_{stat}{suffix}. The result keeps the input's shape and row
// order: this enriches rows, it does not collapse the table.
func GroupedStats(f *Frame, columns []string, by []string, opt GroupedOptions) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	if len(by) == 0 {
		return nil, fmt.Errorf("%w: grouped statistics need a group key", ErrInvalidArgument)
	}
	srcs, err := f.columns(columns)
	if err != nil {
		return nil, err
	}
	stats := opt.Stats
	if len(stats) == 0 {
		stats = []string{"mean", "std", "min", "max"}
	}
	for _, s := range stats {
		if !groupedStatKnown(s) {
			// Reuse the registry's error message, with the grouped-only
			// statistics listed as valid too.
			if _, err := resolveAggs([]string{s}, numericAggs, statNUnique, statFirst, statLast); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range srcs {
		for _, s := range stats {
			if _, numericStat := numericAggs[s]; numericStat && s != statCount && !c.numeric() {
				return nil, fmt.Errorf("column %q: %w: statistic %q needs a numeric column", c.Name(), ErrTypeMismatch, s)
			}
		}
	}

	names := make([]string, 0, len(columns)*len(stats))
	for _, col := range columns {
		for _, s := range stats {
			names = append(names, groupedName(opt.Prefix, col, s, opt.Suffix))
		}
	}
	if err := ensureNewColumns(f, names); err != nil {
		return nil, err
	}
	parts, err := partitions(f, by)
	if err != nil {
		return nil, err
	}

	out := f.Clone()
	for ci, src := range srcs {
		for si, s := range stats {
			name := names[ci*len(stats)+si]
			c, err := groupedColumn(name, s, src, parts)
			if err != nil {
				return nil, err
			}
			if err := out.addColumn(c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// groupedColumn computes one statistic per partition of src and broadcasts
// each result to the partition's rows.
func groupedColumn(name, stat string, src *Column, parts [][]int) (*Column, error) {
	n := src.Len()
	switch stat {
	case statCount:
		// Counts present values and works for any column kind, unlike the
		// rolling count which is float-typed for uniformity with the other
		// rolling statistics.
		c := newNullColumn(name, Int, n)
		for _, part := range parts {
			cnt := int64(0)
			for _, i := range part {
				if !src.IsNull(i) {
					cnt++
				}
			}
			for _, i := range part {
				c.setInt(i, cnt)
			}
		}
		return c, nil

	case statNUnique:
		c := newNullColumn(name, Int, n)
		for _, part := range parts {
			seen := make(map[string]struct{}, len(part))
			for _, i := range part {
				if !src.IsNull(i) {
					seen[src.cellKey(i)] = struct{}{}
				}
			}
			for _, i := range part {
				c.setInt(i, int64(len(seen)))
			}
		}
		return c, nil

	case statFirst, statLast:
		c := newNullColumn(name, src.Kind(), n)
		for _, part := range parts {
			pick := -1
			for _, i := range part {
				if src.IsNull(i) {
					continue
				}
				pick = i
				if stat == statFirst {
					break
				}
			}
			if pick < 0 {
				continue
			}
			for _, i := range part {
				copyCell(c, i, src, pick)
			}
		}
		return c, nil
	}

	fn, ok := numericAggs[stat]
	if !ok {
		return nil, fmt.Errorf("%w: unknown statistic %q", ErrInvalidArgument, stat)
	}
	c := newNullColumn(name, Float, n)
	for _, part := range parts {
		vals := make([]float64, 0, len(part))
		for _, i := range part {
			if v, okV := src.Float(i); okV {
				vals = append(vals, v)
			}
		}
		if v, okV := fn(vals); okV {
			for _, i := range part {
				c.setFloat(i, v)
			}
		}
	}
	return c, nil
}
