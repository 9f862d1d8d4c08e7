// Package frame: the Column type — a named, typed sequence of values.
// Kind is fixed at construction; all constructors copy their input slice and
// all accessors return copies, so Column data is immutable through the
// public API.

package frame

import "math"

// Kind tags the value type a Column holds.
//
//   - Float64 — real numbers, eligible for scaling and summary statistics.
//   - String  — categorical / free text, passed through transforms unchanged.
type Kind int

const (
	// Float64 marks a numeric column.
	Float64 Kind = iota

	// String marks a categorical or free-text column.
	String
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Column is a named, equal-typed sequence of values.
//
// Exactly one of the two backing slices is populated, selected by kind.
// The zero Column is not usable; build one with NewFloatColumn,
// NewStringColumn, or InferColumn.
type Column struct {
	name    string
	kind    Kind
	floats  []float64
	strings []string
}

// NewFloatColumn builds a numeric column from vals.
//
// The input slice is copied. Every value must be finite; NaN or ±Inf
// returns ErrNaNInf so later arithmetic cannot silently poison results.
// An empty vals is permitted — a zero-row column is well-formed here, and
// operations that need rows (scale, stats) reject it themselves.
func NewFloatColumn(name string, vals []float64) (*Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	data := make([]float64, len(vals))
	copy(data, vals)

	return &Column{name: name, kind: Float64, floats: data}, nil
}

// NewStringColumn builds a text column from vals. The input slice is copied.
func NewStringColumn(name string, vals []string) (*Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	data := make([]string, len(vals))
	copy(data, vals)

	return &Column{name: name, kind: String, strings: data}, nil
}

// Name returns the column's name.
func (c *Column) Name() string { return c.name }

// Kind returns the column's value kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	if c.kind == Float64 {
		return len(c.floats)
	}

	return len(c.strings)
}

// Floats returns a copy of the numeric values.
// Returns ErrKindMismatch on a String column.
func (c *Column) Floats() ([]float64, error) {
	if c.kind != Float64 {
		return nil, ErrKindMismatch
	}

	out := make([]float64, len(c.floats))
	copy(out, c.floats)

	return out, nil
}

// Strings returns a copy of the text values.
// Returns ErrKindMismatch on a Float64 column.
func (c *Column) Strings() ([]string, error) {
	if c.kind != String {
		return nil, ErrKindMismatch
	}

	out := make([]string, len(c.strings))
	copy(out, c.strings)

	return out, nil
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	out := &Column{name: c.name, kind: c.kind}
	if c.kind == Float64 {
		out.floats = make([]float64, len(c.floats))
		copy(out.floats, c.floats)

		return out
	}
	out.strings = make([]string, len(c.strings))
	copy(out.strings, c.strings)

	return out
}
