package hudf

import (
	"fmt"
	"time"
)

// Unit is the granularity of an epoch count.
type Unit string

const (
	UnitSeconds Unit = "s"
	UnitMillis  Unit = "ms"
	UnitMicros  Unit = "us"
)

// ErrorMode controls how ToEpoch reacts to unconvertible columns or values.
type ErrorMode string

const (
	// ErrorsRaise fails the whole call on the first bad column or value.
	ErrorsRaise ErrorMode = "raise"
	// ErrorsCoerce turns unparseable values into missing values.
	ErrorsCoerce ErrorMode = "coerce"
	// ErrorsIgnore skips columns that cannot be converted.
	ErrorsIgnore ErrorMode = "ignore"
)

// EpochOptions configures ToEpoch. The zero value means microseconds,
// a returned copy, and raise-on-error.
type EpochOptions struct {
	Unit    Unit
	InPlace bool
	Errors  ErrorMode
}

// FromEpochOptions configures FromEpoch. The zero value means microseconds
// and UTC.
type FromEpochOptions struct {
	Unit Unit
	TZ   string
}

// Timestamp layouts accepted when converting string columns.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToEpoch converts the named columns to integer epoch counts at the requested
// unit. Time columns are rescaled directly; string columns are parsed first
// (naive timestamps are read as UTC). The converted columns have Kind Int.
//
// With InPlace the receiver frame is modified and returned; conversion still
// happens on scratch columns that are only swapped in once every column
// succeeded, so a failing call never leaves a half-converted frame. Without
// InPlace the receiver is untouched and a converted copy is returned.
func ToEpoch(f *Frame, columns []string, opt EpochOptions) (*Frame, error) {
	unit, err := normalizeUnit(opt.Unit)
	if err != nil {
		return nil, err
	}
	mode, err := normalizeErrors(opt.Errors)
	if err != nil {
		return nil, err
	}
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns given", ErrInvalidArgument)
	}

	var converted []*Column
	for _, name := range columns {
		src, err := f.Column(name)
		if err != nil {
			if mode == ErrorsRaise {
				return nil, err
			}
			continue
		}
		c, err := epochColumn(src, unit, mode)
		if err != nil {
			return nil, err
		}
		if c != nil {
			converted = append(converted, c)
		}
	}

	out := f
	if !opt.InPlace {
		out = f.Clone()
	}
	for _, c := range converted {
		out.replaceColumn(c)
	}
	return out, nil
}

// epochColumn converts one column, or returns nil when the column is skipped
// under ErrorsIgnore.
func epochColumn(src *Column, unit Unit, mode ErrorMode) (*Column, error) {
	n := src.Len()
	out := newNullColumn(src.Name(), Int, n)

	switch src.Kind() {
	case Time:
		for i := 0; i < n; i++ {
			if t, ok := src.Time(i); ok {
				out.setInt(i, epochAt(t, unit))
			}
		}
		return out, nil

	case String:
		for i := 0; i < n; i++ {
			s, ok := src.Str(i)
			if !ok {
				continue
			}
			t, err := parseTimestamp(s)
			if err != nil {
				switch mode {
				case ErrorsRaise:
					return nil, fmt.Errorf("column %q row %d: %w: %v", src.Name(), i, ErrTypeMismatch, err)
				case ErrorsIgnore:
					return nil, nil
				}
				continue // coerce: leave missing
			}
			out.setInt(i, epochAt(t, unit))
		}
		return out, nil
	}

	// Numeric columns cannot be reinterpreted as timestamps.
	switch mode {
	case ErrorsRaise:
		return nil, fmt.Errorf("column %q: %w: %s column is not timestamp-like", src.Name(), ErrTypeMismatch, src.Kind())
	case ErrorsCoerce:
		return out, nil // all missing
	}
	return nil, nil
}

// FromEpoch reinterprets the named integer columns as timestamps at the given
// unit and localizes them to the requested timezone (default UTC). Float
// columns are accepted when every present value is integral. The receiver is
// untouched; a converted copy is returned.
func FromEpoch(f *Frame, columns []string, opt FromEpochOptions) (*Frame, error) {
	unit, err := normalizeUnit(opt.Unit)
	if err != nil {
		return nil, err
	}
	tz := opt.TZ
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidArgument, tz)
	}
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	cols, err := f.columns(columns)
	if err != nil {
		return nil, err
	}

	out := f.Clone()
	for _, src := range cols {
		if !src.numeric() {
			return nil, fmt.Errorf("column %q: %w: %s column holds no epoch counts", src.Name(), ErrTypeMismatch, src.Kind())
		}
		n := src.Len()
		c := newNullColumn(src.Name(), Time, n)
		for i := 0; i < n; i++ {
			v, ok := src.Float(i)
			if !ok {
				continue
			}
			ticks := int64(v)
			if float64(ticks) != v {
				return nil, fmt.Errorf("column %q row %d: %w: %v is not an integer epoch count", src.Name(), i, ErrTypeMismatch, v)
			}
			c.setTime(i, timeAt(ticks, unit).In(loc))
		}
		out.replaceColumn(c)
	}
	return out, nil
}

// ToMicroseconds converts timestamp columns to microseconds since epoch. It
// is a strict variant of ToEpoch: only Time columns are accepted.
func ToMicroseconds(f *Frame, columns []string, inplace bool) (*Frame, error) {
	if f.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	cols, err := f.columns(columns)
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if c.Kind() != Time {
			return nil, fmt.Errorf("column %q: %w: must be a timestamp column", c.Name(), ErrTypeMismatch)
		}
	}
	return ToEpoch(f, columns, EpochOptions{Unit: UnitMicros, InPlace: inplace})
}

func normalizeUnit(u Unit) (Unit, error) {
	switch u {
	case "":
		return UnitMicros, nil
	case UnitSeconds, UnitMillis, UnitMicros:
		return u, nil
	}
	return "", fmt.Errorf("%w: unit must be one of s, ms, us; got %q", ErrInvalidArgument, string(u))
}

func normalizeErrors(m ErrorMode) (ErrorMode, error) {
	switch m {
	case "":
		return ErrorsRaise, nil
	case ErrorsRaise, ErrorsCoerce, ErrorsIgnore:
		return m, nil
	}
	return "", fmt.Errorf("%w: errors must be one of raise, coerce, ignore; got %q", ErrInvalidArgument, string(m))
}

func epochAt(t time.Time, unit Unit) int64 {
	switch unit {
	case UnitSeconds:
		return t.Unix()
	case UnitMillis:
		return t.UnixMilli()
	}
	return t.UnixMicro()
}

func timeAt(ticks int64, unit Unit) time.Time {
	switch unit {
	case UnitSeconds:
		return time.Unix(ticks, 0)
	case UnitMillis:
		return time.UnixMilli(ticks)
	}
	return time.UnixMicro(ticks)
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as timestamp", s)
}
