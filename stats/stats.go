// Package stats: slice-level summary statistics. Each function validates
// its input, then hands the arithmetic to gonum; quantiles interpolate
// order statistics directly to pin the p·(N−1) convention.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// check validates a series for minimum length and finiteness.
func check(x []float64, minLen int) error {
	if len(x) == 0 {
		return ErrEmptySeries
	}
	if len(x) < minLen {
		return ErrTooFewValues
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// Mean returns the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if err := check(x, 1); err != nil {
		return 0, err
	}

	return stat.Mean(x, nil), nil
}

// Variance returns the sample variance of x (denominator N−1).
// Requires at least two values.
func Variance(x []float64) (float64, error) {
	if err := check(x, 2); err != nil {
		return 0, err
	}

	return stat.Variance(x, nil), nil
}

// StdDev returns the sample standard deviation of x (denominator N−1).
// Requires at least two values.
func StdDev(x []float64) (float64, error) {
	if err := check(x, 2); err != nil {
		return 0, err
	}

	return stat.StdDev(x, nil), nil
}

// PopVariance returns the population variance of x (denominator N).
func PopVariance(x []float64) (float64, error) {
	if err := check(x, 1); err != nil {
		return 0, err
	}

	return stat.PopVariance(x, nil), nil
}

// PopStdDev returns the population standard deviation of x (denominator N).
func PopStdDev(x []float64) (float64, error) {
	if err := check(x, 1); err != nil {
		return 0, err
	}

	return stat.PopStdDev(x, nil), nil
}

// Min returns the smallest value in x.
func Min(x []float64) (float64, error) {
	if err := check(x, 1); err != nil {
		return 0, err
	}

	return floats.Min(x), nil
}

// Max returns the largest value in x.
func Max(x []float64) (float64, error) {
	if err := check(x, 1); err != nil {
		return 0, err
	}

	return floats.Max(x), nil
}

// Median returns the 0.5 quantile of x.
func Median(x []float64) (float64, error) {
	return Quantile(0.5, x)
}

// Quantile returns the p-th quantile of x, interpolating linearly between
// order statistics at rank p·(N−1) — the default convention of mainstream
// statistical software. The input is not modified (sorting happens on a copy).
//
// Errors: ErrBadQuantile for p outside [0,1], plus the usual series checks.
func Quantile(p float64, x []float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrBadQuantile
	}
	if err := check(x, 1); err != nil {
		return 0, err
	}

	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo == len(sorted)-1 {
		return sorted[lo], nil
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo]), nil
}
