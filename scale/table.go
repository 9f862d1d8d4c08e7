// Package scale: the shared table walker. All three table scalers differ
// only in the per-series transform; the walk, the eager validation sweep,
// and the shape guarantee live here.

package scale

import (
	"fmt"

	"github.com/katalvlaran/tabular/frame"
)

// seriesTransform maps one numeric series onto a fresh, equally long slice.
type seriesTransform func(vals []float64) ([]float64, error)

// applyTable runs transform over every Float64 column of t and clones text
// columns verbatim, preserving row count, column names, and column order.
//
// Phase 1 transforms every numeric column and collects results, so any
// failure (wrapped with the column's name) surfaces before a single output
// column is assembled. Phase 2 builds the new table.
func applyTable(t *frame.Table, transform seriesTransform) (*frame.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.NumRows() == 0 {
		return nil, ErrEmptyTable
	}

	// Phase 1: transform or clone, collecting every output first.
	cols := make([]*frame.Column, t.NumCols())
	for i := 0; i < t.NumCols(); i++ {
		col, err := t.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		if col.Kind() != frame.Float64 {
			cols[i] = col.Clone()

			continue
		}

		vals, err := col.Floats()
		if err != nil {
			return nil, err
		}
		scaled, err := transform(vals)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		out, err := frame.NewFloatColumn(col.Name(), scaled)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		cols[i] = out
	}

	// Phase 2: assemble. Shape invariants were established above, so New
	// cannot fail on a table it already accepted once.
	return frame.New(cols...)
}
