package hudf

import "fmt"

// Frame is an ordered, in-memory table of named, typed columns of equal
// length. Row order is significant for the time-series operations. A Frame is
// never mutated by an operation unless the caller asks for it explicitly.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// NewFrame creates a frame from the given columns. All columns must have the
// same length and distinct names.
func NewFrame(cols ...*Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: frame needs at least one column", ErrInvalidArgument)
	}
	f := &Frame{index: make(map[string]int, len(cols))}
	n := cols[0].Len()
	for _, c := range cols {
		if c.Len() != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrInvalidArgument, c.Name(), c.Len(), n)
		}
		if _, ok := f.index[c.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		f.index[c.Name()] = len(f.cols)
		f.cols = append(f.cols, c.clone())
	}
	return f, nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	return f.cols[0].Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// ColumnNames returns column names in frame order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return f.cols[i], nil
}

// Clone returns a deep copy that shares nothing with the receiver.
func (f *Frame) Clone() *Frame {
	dup := &Frame{
		cols:  make([]*Column, len(f.cols)),
		index: make(map[string]int, len(f.index)),
	}
	for i, c := range f.cols {
		dup.cols[i] = c.clone()
		dup.index[c.Name()] = i
	}
	return dup
}

// columns resolves a list of names, failing on the first absent one.
func (f *Frame) columns(names []string) ([]*Column, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no columns given", ErrInvalidArgument)
	}
	out := make([]*Column, len(names))
	for i, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// addColumn appends a column, which must match the frame's row count and not
// shadow an existing name.
func (f *Frame) addColumn(c *Column) error {
	if c.Len() != f.NumRows() {
		return fmt.Errorf("%w: column %q has %d rows, want %d",
			ErrInvalidArgument, c.Name(), c.Len(), f.NumRows())
	}
	if f.HasColumn(c.Name()) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
	}
	f.index[c.Name()] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// replaceColumn swaps in a column under an existing name, keeping position.
func (f *Frame) replaceColumn(c *Column) {
	f.cols[f.index[c.Name()]] = c
}
