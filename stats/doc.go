// Package stats provides univariate summary statistics and t-tests over
// numeric series and frame.Tables, delegating all numeric kernels to gonum.
//
// 🚀 What is in here?
//
//	The everyday toolbox of exploratory data analysis:
//	  • Location & spread: Mean, Variance, StdDev (sample and population)
//	  • Order statistics: Min, Max, Median, Quantile (linear interpolation)
//	  • Describe — per-column five-number summary + mean/sd for a Table
//	  • OneSampleTTest / WelchTTest — classic mean-comparison inference
//
// ✨ Design:
//   - Thin, delegating wrappers — gonum.org/v1/gonum/stat does the math;
//     this package adds input validation, typed errors, and Table plumbing.
//   - Fail-loud — empty series, single values, NaN/Inf, and zero variance
//     are sentinel errors, never silently propagated NaNs.
//   - Quantiles interpolate linearly between order statistics, matching
//     the default of mainstream statistical software.
//
// ⚙️ Usage:
//
//	m, err := stats.Mean(vals)
//	s, err := stats.StdDev(vals)            // sample, N−1
//	q, err := stats.Quantile(0.95, vals)
//
//	summaries, err := stats.Describe(tab)   // one Summary per numeric column
//
//	res, err := stats.WelchTTest(groupA, groupB)
//	fmt.Printf("t=%.3f df=%.1f p=%.4f\n", res.Statistic, res.DF, res.PValue)
//
// Errors:
//   - ErrEmptySeries  — a slice operation received zero values.
//   - ErrTooFewValues — an operation needing N ≥ 2 received fewer.
//   - ErrZeroVariance — a t-test saw no variation at all.
//   - ErrNaNInf       — non-finite value in a raw slice.
//   - ErrBadQuantile  — requested p outside [0, 1].
//   - ErrNilTable     — nil *frame.Table.
//   - ErrEmptyTable   — Describe on a zero-row table.
package stats
