// Package scale transforms numeric columns onto comparable scales:
// z-score standardization, min-max rescaling, and robust (median/IQR)
// scaling, over plain slices or whole frame.Tables.
//
// 🚀 What is standardization?
//
//	The linear transform (v − μ) / σ maps a numeric series to mean 0 and
//	standard deviation 1, so columns measured in different units become
//	directly comparable. It is the usual preprocessing step before:
//	  • Principal component analysis
//	  • k-means and other distance-based clustering
//	  • Regression with mixed-unit predictors
//
// ✨ Key features:
//   - Standardize / StandardizeTable — z-scores with sample (N−1) or
//     population (N) standard deviation (choose via Options.Variant)
//   - MinMax / MinMaxTable — rescale onto [0, 1]
//   - Robust / RobustTable — center on the median, scale by the IQR
//   - text columns pass through table transforms untouched
//   - fail-loud degenerate handling: a zero-variance column is a typed
//     error, never a silent division by zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tabular/scale"
//
//	opts := scale.DefaultOptions() // sample variance, exact zero detection
//	z, err := scale.Standardize([]float64{1, 2, 3, 4, 5}, &opts)
//	// z ≈ [-1.2649, -0.6325, 0, 0.6325, 1.2649]
//
//	out, err := scale.StandardizeTable(tab, &opts)
//	// out: same shape as tab; numeric columns → mean 0, sd 1
//
// Guarantees:
//
//   - Output tables have identical shape: same row count, same column
//     names, same column order.
//   - Inputs are never mutated; every transform returns fresh data.
//   - All columns are validated before any output is built, so a failure
//     never yields a partially transformed table.
//
// Performance: O(N) time and O(N) extra memory per column (robust scaling
// sorts a copy: O(N·logN)).
//
// Errors:
//   - ErrEmptyTable       — table has zero rows.
//   - ErrEmptySeries      — slice primitive given zero values.
//   - ErrDegenerateColumn — zero variance / zero range / zero IQR, or a
//     single row under the sample variant (σ undefined).
//   - ErrNaNInf           — non-finite value in a raw slice.
//   - ErrNilTable         — nil *frame.Table.
//   - ErrBadOptions       — negative Epsilon or unknown Variant.
package scale
