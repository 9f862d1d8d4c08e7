// Package frame: the Table type — an ordered collection of uniquely named,
// equal-length columns. New validates everything eagerly so that any Table
// handed to a caller is structurally sound; accessors never re-validate.

package frame

import "fmt"

// Table is an ordered sequence of named, equal-length columns.
//
// Row order is meaningful and preserved; column order follows construction
// order. A Table is immutable through its public API: accessors hand out
// copies and transforms build new Tables.
type Table struct {
	cols  []*Column
	index map[string]int // name → position in cols
	rows  int
}

// New builds a Table from cols, validating shape up front.
//
// Rules enforced:
//   - at least one column;
//   - no nil columns (ErrNilColumn);
//   - unique names (ErrDuplicateColumn, wrapped with the name);
//   - equal lengths (ErrLengthMismatch, wrapped with the offending name).
//
// A table with zero rows is legal — emptiness is an error only for the
// operations that need data (see scale.ErrEmptyTable).
func New(cols ...*Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNilColumn
	}

	t := &Table{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c == nil {
			return nil, ErrNilColumn
		}
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.name, ErrDuplicateColumn)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				c.name, c.Len(), t.rows, ErrLengthMismatch)
		}
		t.index[c.name] = len(t.cols)
		t.cols = append(t.cols, c.Clone())
	}

	return t, nil
}

// NumRows returns the number of rows shared by every column.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Names returns the column names in construction order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}

	return out
}

// Column returns the column with the given name, or ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumnNotFound)
	}

	return t.cols[i], nil
}

// ColumnAt returns the i-th column (0-based), or ErrOutOfRange.
func (t *Table) ColumnAt(i int) (*Column, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, ErrOutOfRange
	}

	return t.cols[i], nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		cols:  make([]*Column, len(t.cols)),
		index: make(map[string]int, len(t.index)),
		rows:  t.rows,
	}
	for i, c := range t.cols {
		out.cols[i] = c.Clone()
		out.index[c.name] = i
	}

	return out
}
