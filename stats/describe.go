// Package stats: per-table summaries, the library's answer to a console
// summary() call.

package stats

import (
	"fmt"

	"github.com/katalvlaran/tabular/frame"
)

// Summary is a five-number summary plus mean and sample standard deviation
// for one numeric column.
type Summary struct {
	// Column is the summarized column's name.
	Column string

	// N is the number of rows.
	N int

	// Min, Q1, Median, Q3, Max are the five-number summary
	// (quantiles interpolate linearly between order statistics).
	Min, Q1, Median, Q3, Max float64

	// Mean is the arithmetic mean.
	Mean float64

	// StdDev is the sample standard deviation (denominator N−1).
	StdDev float64
}

// Describe summarizes every numeric column of t, in column order. Text
// columns are skipped; a table with no numeric columns yields an empty
// (non-nil) slice.
//
// Errors: ErrNilTable, ErrEmptyTable, and ErrTooFewValues for a one-row
// table (the sample standard deviation needs N ≥ 2).
func Describe(t *frame.Table) ([]Summary, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.NumRows() == 0 {
		return nil, ErrEmptyTable
	}
	if t.NumRows() < 2 {
		return nil, ErrTooFewValues
	}

	out := make([]Summary, 0, t.NumCols())
	for i := 0; i < t.NumCols(); i++ {
		col, err := t.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		if col.Kind() != frame.Float64 {
			continue
		}

		vals, err := col.Floats()
		if err != nil {
			return nil, err
		}
		s, err := summarize(col.Name(), vals)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		out = append(out, s)
	}

	return out, nil
}

// summarize computes one Summary. Inputs come from a frame.Table, so they
// are finite and non-empty by construction; errors remain possible only
// through the shared validators.
func summarize(name string, vals []float64) (Summary, error) {
	s := Summary{Column: name, N: len(vals)}

	var err error
	if s.Min, err = Min(vals); err != nil {
		return Summary{}, err
	}
	if s.Q1, err = Quantile(0.25, vals); err != nil {
		return Summary{}, err
	}
	if s.Median, err = Median(vals); err != nil {
		return Summary{}, err
	}
	if s.Q3, err = Quantile(0.75, vals); err != nil {
		return Summary{}, err
	}
	if s.Max, err = Max(vals); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = Mean(vals); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = StdDev(vals); err != nil {
		return Summary{}, err
	}

	return s, nil
}
