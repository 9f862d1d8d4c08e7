// Package scale: robust scaling on median and interquartile range.

package scale

import (
	"math"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/stats"
)

// Robust scales vals by (v − median) / IQR, where IQR = Q3 − Q1.
//
// Median and IQR shrug off outliers that would drag the mean and inflate
// the standard deviation, so Robust is the scaler of choice for
// heavy-tailed measurements. Quantiles interpolate linearly between order
// statistics (see stats.Quantile), matching mainstream statistical software.
//
// Complexity: O(N·logN) time (quantiles sort a copy), O(N) memory.
//
// Errors:
//   - ErrEmptySeries       — vals is empty.
//   - ErrNaNInf            — vals contains NaN or ±Inf.
//   - ErrDegenerateColumn  — IQR is zero (middle half identical).
func Robust(vals []float64) ([]float64, error) {
	if len(vals) == 0 {
		return nil, ErrEmptySeries
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	median, err := stats.Median(vals)
	if err != nil {
		return nil, err
	}
	q1, err := stats.Quantile(0.25, vals)
	if err != nil {
		return nil, err
	}
	q3, err := stats.Quantile(0.75, vals)
	if err != nil {
		return nil, err
	}

	iqr := q3 - q1
	if iqr == 0 {
		return nil, ErrDegenerateColumn
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v - median) / iqr
	}

	return out, nil
}

// RobustTable scales every numeric column of t by median/IQR and copies
// text columns unchanged, returning a new table of identical shape.
// Per-column failures are wrapped with the column's name.
//
// Errors: ErrNilTable, ErrEmptyTable, and per-column Robust errors.
func RobustTable(t *frame.Table) (*frame.Table, error) {
	return applyTable(t, Robust)
}
