package scale

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tabular/frame"
)

// Standardize — column-wise z-score transform.
//
// Description:
//
//	Maps a numeric series onto mean 0 and standard deviation 1 via
//	z = (v − μ) / σ, the usual preprocessing step before PCA, k-means,
//	and mixed-unit regression.
//
// Algorithm Outline:
//  1. Resolve and validate options (nil ⇒ DefaultOptions).
//  2. Reject empty input and non-finite values.
//  3. μ = arithmetic mean; σ per Options.Variant:
//     SampleVariance     ⇒ denominator N−1 (needs N ≥ 2),
//     PopulationVariance ⇒ denominator N.
//  4. If σ ≤ Epsilon, the series has no variation: fail loudly rather
//     than divide by zero.
//  5. Emit a fresh slice of (v − μ) / σ.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N)
//
// Errors:
//   - ErrBadOptions        — negative Epsilon or unknown Variant.
//   - ErrEmptySeries       — vals is empty.
//   - ErrNaNInf            — vals contains NaN or ±Inf.
//   - ErrDegenerateColumn  — σ ≤ Epsilon, or N = 1 under SampleVariance
//     (sample σ of a single value is undefined).
func Standardize(vals []float64, opts *Options) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	mu, sigma, err := moments(vals, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v - mu) / sigma
	}

	return out, nil
}

// StandardizeTable standardizes every numeric column of t and copies text
// columns unchanged, returning a NEW table of identical shape. The input
// table is never mutated.
//
// Every column is validated before any output is built, so a failing
// column never yields a partially standardized table. Errors from a
// specific column are wrapped with its name:
//
//	out, err := scale.StandardizeTable(tab, nil)
//	if errors.Is(err, scale.ErrDegenerateColumn) {
//	  // err.Error() names the zero-variance column
//	}
//
// Errors: ErrNilTable, ErrEmptyTable, ErrBadOptions, and per-column
// ErrDegenerateColumn wrapped with the column name.
func StandardizeTable(t *frame.Table, opts *Options) (*frame.Table, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return applyTable(t, func(vals []float64) ([]float64, error) {
		mu, sigma, merr := moments(vals, o)
		if merr != nil {
			return nil, merr
		}
		out := make([]float64, len(vals))
		for i, v := range vals {
			out[i] = (v - mu) / sigma
		}

		return out, nil
	})
}

// moments computes mean and standard deviation per the chosen variant and
// performs all per-series validation.
func moments(vals []float64, o Options) (mu, sigma float64, err error) {
	n := len(vals)
	if n == 0 {
		return 0, 0, ErrEmptySeries
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, ErrNaNInf
		}
	}
	if o.Variant == SampleVariance && n < 2 {
		return 0, 0, ErrDegenerateColumn
	}

	mu = stat.Mean(vals, nil)
	switch o.Variant {
	case SampleVariance:
		sigma = stat.StdDev(vals, nil)
	case PopulationVariance:
		sigma = stat.PopStdDev(vals, nil)
	}
	if sigma <= o.Epsilon {
		return 0, 0, ErrDegenerateColumn
	}

	return mu, sigma, nil
}
