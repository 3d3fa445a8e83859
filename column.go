package hudf

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind tags the logical type of a Column. Every operation checks kinds up
// front instead of probing values at compute time.
type Kind int

const (
	Float Kind = iota
	Int
	Time
	String
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Time:
		return "time"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Column is a named, homogeneously typed sequence of values with a validity
// mask. A masked-out entry is the missing-value marker; float storage
// additionally carries NaN there so raw float access stays unsurprising.
type Column struct {
	name   string
	kind   Kind
	floats []float64
	ints   []int64
	times  []time.Time
	strs   []string
	valid  []bool
}

// NewFloatColumn creates a float column. NaN inputs are treated as missing.
func NewFloatColumn(name string, values []float64) *Column {
	c := &Column{
		name:   name,
		kind:   Float,
		floats: append([]float64(nil), values...),
		valid:  make([]bool, len(values)),
	}
	for i, v := range values {
		c.valid[i] = !math.IsNaN(v)
	}
	return c
}

// NewIntColumn creates an integer column with every value present.
func NewIntColumn(name string, values []int64) *Column {
	c := &Column{
		name:  name,
		kind:  Int,
		ints:  append([]int64(nil), values...),
		valid: make([]bool, len(values)),
	}
	for i := range c.valid {
		c.valid[i] = true
	}
	return c
}

// NewTimeColumn creates a timestamp column. Zero times are treated as missing.
func NewTimeColumn(name string, values []time.Time) *Column {
	c := &Column{
		name:  name,
		kind:  Time,
		times: append([]time.Time(nil), values...),
		valid: make([]bool, len(values)),
	}
	for i, t := range values {
		c.valid[i] = !t.IsZero()
	}
	return c
}

// NewStringColumn creates a string column with every value present.
func NewStringColumn(name string, values []string) *Column {
	c := &Column{
		name:  name,
		kind:  String,
		strs:  append([]string(nil), values...),
		valid: make([]bool, len(values)),
	}
	for i := range c.valid {
		c.valid[i] = true
	}
	return c
}

// newNullColumn creates a column of the given kind with every entry missing.
func newNullColumn(name string, kind Kind, n int) *Column {
	c := &Column{name: name, kind: kind, valid: make([]bool, n)}
	switch kind {
	case Float:
		c.floats = make([]float64, n)
		for i := range c.floats {
			c.floats[i] = math.NaN()
		}
	case Int:
		c.ints = make([]int64, n)
	case Time:
		c.times = make([]time.Time, n)
	case String:
		c.strs = make([]string, n)
	}
	return c
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }
func (c *Column) Len() int     { return len(c.valid) }

// IsNull reports whether the value at index i is missing.
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// Float returns the value at i as a float64. It succeeds for Float and Int
// columns when the value is present.
func (c *Column) Float(i int) (float64, bool) {
	if !c.valid[i] {
		return 0, false
	}
	switch c.kind {
	case Float:
		return c.floats[i], true
	case Int:
		return float64(c.ints[i]), true
	}
	return 0, false
}

// Int returns the value at i for an Int column.
func (c *Column) Int(i int) (int64, bool) {
	if c.kind != Int || !c.valid[i] {
		return 0, false
	}
	return c.ints[i], true
}

// Time returns the value at i for a Time column.
func (c *Column) Time(i int) (time.Time, bool) {
	if c.kind != Time || !c.valid[i] {
		return time.Time{}, false
	}
	return c.times[i], true
}

// Str returns the value at i for a String column.
func (c *Column) Str(i int) (string, bool) {
	if c.kind != String || !c.valid[i] {
		return "", false
	}
	return c.strs[i], true
}

func (c *Column) clone() *Column {
	dup := &Column{
		name:  c.name,
		kind:  c.kind,
		valid: append([]bool(nil), c.valid...),
	}
	dup.floats = append([]float64(nil), c.floats...)
	dup.ints = append([]int64(nil), c.ints...)
	dup.times = append([]time.Time(nil), c.times...)
	dup.strs = append([]string(nil), c.strs...)
	return dup
}

func (c *Column) setFloat(i int, v float64) {
	c.floats[i] = v
	c.valid[i] = true
}

func (c *Column) setInt(i int, v int64) {
	c.ints[i] = v
	c.valid[i] = true
}

func (c *Column) setTime(i int, t time.Time) {
	c.times[i] = t
	c.valid[i] = true
}

func (c *Column) setStr(i int, s string) {
	c.strs[i] = s
	c.valid[i] = true
}

// copyCell copies the value at src index si into dst index di. Both columns
// must share a Kind. Missing stays missing.
func copyCell(dst *Column, di int, src *Column, si int) {
	if !src.valid[si] {
		return
	}
	switch src.kind {
	case Float:
		dst.setFloat(di, src.floats[si])
	case Int:
		dst.setInt(di, src.ints[si])
	case Time:
		dst.setTime(di, src.times[si])
	case String:
		dst.setStr(di, src.strs[si])
	}
}

// cellKey renders the value at i into a string stable enough for grouping
// and distinct-counting.
func (c *Column) cellKey(i int) string {
	if !c.valid[i] {
		return "\x00null"
	}
	switch c.kind {
	case Float:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	case Int:
		return strconv.FormatInt(c.ints[i], 10)
	case Time:
		return strconv.FormatInt(c.times[i].UnixNano(), 10)
	case String:
		return c.strs[i]
	}
	return ""
}

// numeric reports whether the column can feed numeric aggregations.
func (c *Column) numeric() bool {
	return c.kind == Float || c.kind == Int
}
