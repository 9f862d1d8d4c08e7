// Package csvio reads delimited files into frame.Tables, inferring each
// column's kind (numeric or text) from the data.
//
// 🚀 What does it do?
//
//	The bridge between files on disk and the typed in-memory Table:
//	  • Read      — any io.Reader of delimited records
//	  • ReadFile  — convenience wrapper for a path
//	  • header handling: first record as names, or generated V1…Vk names
//	  • column typing via frame.InferColumn, decided once at load time
//
// ⚙️ Usage:
//
//	opts := csvio.DefaultOptions() // comma-separated, first row is header
//	tab, err := csvio.ReadFile("iris.csv", &opts)
//	if errors.Is(err, frame.ErrMixedColumn) {
//	  // a column mixes numbers and text; the error names it
//	}
//
//	opts.Comma = '\t'      // tab-separated
//	opts.HasHeader = false // columns become V1, V2, …
//	tab, err = csvio.Read(r, &opts)
//
// Ragged records (rows with a deviating field count) surface ErrRaggedRow
// wrapped with the offending line number; a mixed-kind column surfaces
// frame.ErrMixedColumn wrapped with the column's name. Either way the
// load fails as a whole — no partially typed table is ever returned.
//
// Errors:
//   - ErrNilReader — Read was handed a nil io.Reader.
//   - ErrNoData    — the input contains no records at all.
//   - ErrRaggedRow — a record's field count deviates from the first record's.
//   - wrapped csv parse errors / frame sentinels as described above.
package csvio
