// Package tabular is your in-memory toolkit for loading, reshaping, and
// standardizing tabular data — from typed columns to summary statistics.
//
// 🚀 What is tabular?
//
//	A small, pure-Go library that brings together:
//		• Typed columns & tables: numeric / text columns fixed at construction
//		• Scaling: z-score standardization, min-max rescaling, robust scaling
//		• Summaries: mean, variance, quantiles, five-number summaries
//		• Inference: one- and two-sample t-tests (Welch)
//		• Ingestion: delimited-file reading with numeric/text column inference
//
// ✨ Why choose tabular?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable typing – a column is numeric or text, decided once, never re-guessed
//   - Fail-loud numerics – zero-variance and empty inputs are typed errors, never NaNs
//   - Pure operations – every transform returns a new table; inputs are never mutated
//
// Under the hood, everything is organized under four subpackages:
//
//	frame/ — Table and Column types: construction, validation, cloning
//	scale/ — column-wise standardization and its scaling siblings
//	stats/ — univariate summaries and t-tests on top of gonum
//	csvio/ — delimited-file → frame.Table ingestion
//
// Quick ASCII example:
//
//	    Petal.Length │ Species
//	    ─────────────┼─────────
//	         1.4     │ setosa          standardize
//	         4.7     │ versicolor  ──────────────▶  numeric columns → mean 0, sd 1
//	         6.0     │ virginica                    text columns    → untouched
//
// See scale.StandardizeTable for the central operation, and each package's
// example_test.go for runnable walkthroughs.
//
//	go get github.com/katalvlaran/tabular
package tabular
