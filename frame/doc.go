// Package frame defines the central Table and Column types for in-memory
// tabular data, with strict construction-time validation and cloning.
//
// A Table T = (C₁ … Cₖ) is an ordered sequence of uniquely named columns of
// equal length N. Each Column carries a Kind — Float64 or String — fixed when
// the column is built and never re-inferred afterwards. Operations downstream
// (scaling, summaries) switch on the Kind instead of probing values.
//
// Why use frame.Table?
//
//   - Deterministic typing — numeric vs. text is decided once, at construction.
//   - Shape guarantees — equal column lengths and unique names are enforced
//     by New; a Table that exists is a Table that is well-formed.
//   - Value semantics — constructors and accessors copy slices, so a Table
//     can never be mutated behind your back (and never mutates your data).
//   - Deterministic iteration — Names() and ColumnAt() follow construction order.
//
// Classification of raw text data happens in InferColumn: a column whose
// entries all parse as floats becomes Float64, one where none parse becomes
// String, and a mix of the two is rejected with ErrMixedColumn.
//
// Errors:
//
//	ErrNilColumn       - a nil *Column was passed to New.
//	ErrEmptyName       - column name is the empty string.
//	ErrDuplicateColumn - two columns share a name.
//	ErrLengthMismatch  - columns disagree on row count.
//	ErrColumnNotFound  - requested column does not exist.
//	ErrOutOfRange      - positional index outside [0, NumCols).
//	ErrKindMismatch    - Floats() on a String column or vice versa.
//	ErrNaNInf          - NaN or ±Inf handed to NewFloatColumn.
//	ErrMixedColumn     - InferColumn saw both numeric and non-numeric entries.
package frame
