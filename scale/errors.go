// Package scale: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.

package scale

import "errors"

// Every message is prefixed with "scale: ...". Sentinels are returned bare
// from the slice primitives; the table operations wrap them with the
// offending column's name via fmt.Errorf("...: %w", ErrX) so callers can
// both match the class and read the culprit.
var (
	// ErrEmptyTable indicates the input table has zero rows.
	ErrEmptyTable = errors.New("scale: table has no rows")

	// ErrEmptySeries indicates a slice primitive received zero values.
	ErrEmptySeries = errors.New("scale: series is empty")

	// ErrDegenerateColumn indicates a column with no variation: zero
	// variance (all values identical), zero range, zero IQR, or a single
	// value under the sample variant. Scaling would divide by zero.
	ErrDegenerateColumn = errors.New("scale: column has zero variance")

	// ErrNaNInf signals a NaN or ±Inf value in a raw input slice.
	// frame.Table inputs are already finite by construction.
	ErrNaNInf = errors.New("scale: NaN or Inf encountered")

	// ErrNilTable indicates a nil *frame.Table was passed.
	ErrNilTable = errors.New("scale: table is nil")

	// ErrBadOptions indicates an invalid Options value (negative Epsilon
	// or an unknown Variant).
	ErrBadOptions = errors.New("scale: invalid options")
)
