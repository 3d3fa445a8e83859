package hudf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Window bounds the rows contributing to one rolling computation. It is
// either count-based (the last N rows up to and including the current one) or
// duration-based (every row whose time lies in (t_current - span, t_current],
// right edge inclusive: on daily data a "2d" window covers the current row
// and one prior day).
type Window struct {
	rows  int
	span  time.Duration
	label string
}

// Rows returns a count-based window over the last n rows.
func Rows(n int) Window {
	return Window{rows: n, label: strconv.Itoa(n)}
}

// Span returns a duration-based window of the given length.
func Span(d time.Duration) Window {
	return Window{span: d, label: spanLabel(d)}
}

// ParseWindow parses a window specification: a bare integer ("7") for a
// count window, or an integer with a d/h/m/s suffix ("7d", "24h", "90m",
// "45s") for a duration window. The original token becomes the window's
// label in generated column names.
func ParseWindow(s string) (Window, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return Window{}, fmt.Errorf("%w: empty window spec", ErrInvalidArgument)
	}
	if n, err := strconv.Atoi(spec); err == nil {
		if n <= 0 {
			return Window{}, fmt.Errorf("%w: window rows must be positive, got %d", ErrInvalidArgument, n)
		}
		return Window{rows: n, label: spec}, nil
	}

	unit := spec[len(spec)-1]
	n, err := strconv.Atoi(spec[:len(spec)-1])
	if err != nil || n <= 0 {
		return Window{}, fmt.Errorf("%w: malformed window spec %q", ErrInvalidArgument, s)
	}
	var d time.Duration
	switch unit {
	case 'd', 'D':
		d = time.Duration(n) * 24 * time.Hour
	case 'h', 'H':
		d = time.Duration(n) * time.Hour
	case 'm':
		d = time.Duration(n) * time.Minute
	case 's':
		d = time.Duration(n) * time.Second
	default:
		return Window{}, fmt.Errorf("%w: malformed window spec %q", ErrInvalidArgument, s)
	}
	return Window{span: d, label: spec}, nil
}

// Label returns the token used for this window in generated column names.
func (w Window) Label() string { return w.label }

// IsDuration reports whether the window is duration-based.
func (w Window) IsDuration() bool { return w.span > 0 }

func (w Window) validate() error {
	if w.rows > 0 && w.span == 0 {
		return nil
	}
	if w.span > 0 && w.rows == 0 {
		return nil
	}
	return fmt.Errorf("%w: window must be either count- or duration-based", ErrInvalidArgument)
}

// start returns the index of the first row belonging to the window ending at
// pos. times holds the ascending timestamps of the partition and is only
// consulted for duration windows.
func (w Window) start(times []time.Time, pos int) int {
	if !w.IsDuration() {
		if start := pos + 1 - w.rows; start > 0 {
			return start
		}
		return 0
	}
	cutoff := times[pos].Add(-w.span)
	// First index with time strictly after t - span: a row exactly span ago
	// falls out of the window.
	return sort.Search(pos+1, func(i int) bool {
		return times[i].After(cutoff)
	})
}

// minPeriods returns the default observation threshold: a count window must
// be full, a duration window needs a single observation.
func (w Window) minPeriods() int {
	if w.IsDuration() {
		return 1
	}
	return w.rows
}

// spanLabel renders a duration in its largest exact unit so that
// Span(48*time.Hour).Label() == "2d".
func spanLabel(d time.Duration) string {
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d"
	case d >= time.Hour && d%time.Hour == 0:
		return strconv.Itoa(int(d/time.Hour)) + "h"
	case d >= time.Minute && d%time.Minute == 0:
		return strconv.Itoa(int(d/time.Minute)) + "m"
	case d >= time.Second && d%time.Second == 0:
		return strconv.Itoa(int(d/time.Second)) + "s"
	}
	return d.String()
}
