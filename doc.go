// Package hudf provides feature-engineering helpers over an in-memory frame.
//
// It covers epoch/timestamp conversion, rolling-window aggregations, lag and
// difference features, and grouped statistics. Every operation is a pure,
// synchronous transformation: it validates its inputs up front, then returns
// a frame with the derived columns added (or the converted columns swapped
// in), leaving the caller's frame untouched unless an in-place conversion was
// explicitly requested.
//
// Basic usage:
//
//	ts := hudf.NewTimeColumn("timestamp", stamps)
//	amount := hudf.NewFloatColumn("amount", []float64{10, 20, 30})
//	frame, err := hudf.NewFrame(ts, amount)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w, _ := hudf.ParseWindow("2d")
//	frame, err = hudf.RollingAggs(frame, "amount", "timestamp",
//	    []hudf.Window{w}, hudf.RollingOptions{Aggs: []string{"mean"}})
//	// frame now carries an "amount_2d_mean" column.
//
// Windowed, lag, and difference features accept an optional group key; the
// computation then runs independently within each partition and never reaches
// across a boundary. Missing values propagate: a window that has not seen
// enough observations, a lag without enough history, or a percent change over
// a zero base all yield a missing value rather than a fabricated number.
package hudf
