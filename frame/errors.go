// Package frame: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the frame
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on user input.

package frame

import "errors"

// Every message is prefixed with "frame: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential (e.g. the offending column name), wrap
// with fmt.Errorf("...: %w", ErrX) at the outer boundary — callers still
// match with errors.Is.
var (
	// ErrNilColumn indicates a nil *Column was passed to New.
	ErrNilColumn = errors.New("frame: nil column")

	// ErrEmptyName indicates a column was constructed with an empty name.
	ErrEmptyName = errors.New("frame: column name is empty")

	// ErrDuplicateColumn indicates two columns in a Table share a name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrLengthMismatch indicates columns of unequal length were combined.
	ErrLengthMismatch = errors.New("frame: column lengths differ")

	// ErrColumnNotFound indicates a lookup referenced a non-existent column.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrOutOfRange indicates a positional index outside [0, NumCols).
	ErrOutOfRange = errors.New("frame: column index out of range")

	// ErrKindMismatch indicates a typed accessor was called on a column of
	// the other kind (Floats on a String column, Strings on a Float64 one).
	ErrKindMismatch = errors.New("frame: column kind mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	// Float columns validate at ingestion so downstream math never sees them.
	ErrNaNInf = errors.New("frame: NaN or Inf encountered")

	// ErrMixedColumn indicates raw data mixing numeric and non-numeric
	// entries, so a deterministic Kind cannot be assigned.
	ErrMixedColumn = errors.New("frame: column mixes numeric and non-numeric values")
)
