// Package scale: min-max rescaling onto [0, 1].

package scale

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tabular/frame"
)

// MinMax rescales vals onto [0, 1] via (v − min) / (max − min).
//
// Useful when a bounded range matters more than unit variance, e.g. for
// distance-based clustering of mixed-unit measurements.
//
// Errors:
//   - ErrEmptySeries       — vals is empty.
//   - ErrNaNInf            — vals contains NaN or ±Inf.
//   - ErrDegenerateColumn  — max == min (all values identical).
func MinMax(vals []float64) ([]float64, error) {
	if len(vals) == 0 {
		return nil, ErrEmptySeries
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi == lo {
		return nil, ErrDegenerateColumn
	}

	span := hi - lo
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v - lo) / span
	}

	return out, nil
}

// MinMaxTable rescales every numeric column of t onto [0, 1] and copies
// text columns unchanged, returning a new table of identical shape.
// Per-column failures are wrapped with the column's name.
//
// Errors: ErrNilTable, ErrEmptyTable, and per-column MinMax errors.
func MinMaxTable(t *frame.Table) (*frame.Table, error) {
	return applyTable(t, MinMax)
}
