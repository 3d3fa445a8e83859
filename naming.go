package hudf

import (
	"fmt"
	"strconv"
)

// Generated column names are built here and nowhere else, so that every
// operation shares one deterministic scheme and collision checking.

func rollingName(col string, w Window, agg, suffix string) string {
	return col + "_" + w.Label() + "_" + agg + suffix
}

func lagName(col string, k int) string {
	return col + "_lag_" + strconv.Itoa(k)
}

func diffName(col string, p int, pct bool) string {
	if pct {
		return col + "_pct_" + strconv.Itoa(p)
	}
	return col + "_diff_" + strconv.Itoa(p)
}

func groupedName(prefix, col, stat, suffix string) string {
	return prefix + col + "_" + stat + suffix
}

// ensureNewColumns verifies that generated names collide neither with
// existing frame columns nor with each other. Called before any column is
// written, so a failing operation leaves the frame untouched.
func ensureNewColumns(f *Frame, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if f.HasColumn(name) {
			return fmt.Errorf("%w: %q already exists", ErrDuplicateColumn, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q generated twice", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
