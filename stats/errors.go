// Package stats: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.

package stats

import "errors"

// Every message is prefixed with "stats: ...". Table operations wrap a
// sentinel with the offending column's name where that adds signal.
var (
	// ErrEmptySeries indicates a slice operation received zero values.
	ErrEmptySeries = errors.New("stats: series is empty")

	// ErrTooFewValues indicates an operation requiring at least two values
	// (sample variance, t-tests) received fewer.
	ErrTooFewValues = errors.New("stats: need at least two values")

	// ErrZeroVariance indicates a t-test on data with no variation;
	// the test statistic would divide by zero.
	ErrZeroVariance = errors.New("stats: zero variance")

	// ErrNaNInf signals a NaN or ±Inf value in a raw input slice.
	ErrNaNInf = errors.New("stats: NaN or Inf encountered")

	// ErrBadQuantile indicates a quantile probability outside [0, 1].
	ErrBadQuantile = errors.New("stats: quantile p must be in [0,1]")

	// ErrNilTable indicates a nil *frame.Table was passed.
	ErrNilTable = errors.New("stats: table is nil")

	// ErrEmptyTable indicates Describe was called on a zero-row table.
	ErrEmptyTable = errors.New("stats: table has no rows")
)
