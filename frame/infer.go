// Package frame: numeric/text classification for raw ingested data.
// The decision is made once here, when the column is built; nothing
// downstream ever re-probes values.

package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// InferColumn classifies raw text entries and builds a typed Column.
//
// Classification rule (deterministic):
//   - every entry parses as a float → Float64 column;
//   - no entry parses as a float    → String column;
//   - anything in between           → ErrMixedColumn, wrapped with name.
//
// Entries are trimmed of surrounding whitespace before parsing; String
// columns keep the original, untrimmed text. Zero entries yield an empty
// String column — with no values there is no evidence of numbers.
func InferColumn(name string, raw []string) (*Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(raw) == 0 {
		return NewStringColumn(name, nil)
	}

	numeric := 0
	vals := make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			continue
		}
		numeric++
		vals = append(vals, v)
	}

	switch numeric {
	case len(raw):
		return NewFloatColumn(name, vals)
	case 0:
		return NewStringColumn(name, raw)
	default:
		return nil, fmt.Errorf("column %q: %d of %d entries numeric: %w",
			name, numeric, len(raw), ErrMixedColumn)
	}
}
