package hudf

import "strings"

// partitions splits row indices into independent groups keyed by the given
// columns, in first-seen order. An empty key list yields one partition with
// every row. Windowed, lag, and diff computations never cross a partition
// boundary.
func partitions(f *Frame, by []string) ([][]int, error) {
	n := f.NumRows()
	if len(by) == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return [][]int{all}, nil
	}

	keyCols, err := f.columns(by)
	if err != nil {
		return nil, err
	}

	var (
		order []string
		rows  = make(map[string][]int, 16)
		sb    strings.Builder
	)
	for i := 0; i < n; i++ {
		sb.Reset()
		for j, c := range keyCols {
			if j > 0 {
				sb.WriteByte(0x1f)
			}
			sb.WriteString(c.cellKey(i))
		}
		key := sb.String()
		if _, ok := rows[key]; !ok {
			order = append(order, key)
		}
		rows[key] = append(rows[key], i)
	}

	out := make([][]int, len(order))
	for i, key := range order {
		out[i] = rows[key]
	}
	return out, nil
}
