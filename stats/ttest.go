// Package stats: one- and two-sample t-tests. The test statistics are
// plain arithmetic; p-values delegate to gonum's Student's t distribution.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult reports a t-test in the shape statistical software prints it.
type TTestResult struct {
	// Statistic is the t value.
	Statistic float64

	// DF is the degrees of freedom (fractional for Welch).
	DF float64

	// PValue is the two-sided p-value.
	PValue float64

	// Estimate is the sample mean (one-sample) or the difference of
	// sample means (two-sample).
	Estimate float64
}

// OneSampleTTest tests whether the mean of x differs from mu.
//
//	t  = (x̄ − mu) / (s / √N),  df = N − 1
//
// Errors: ErrEmptySeries / ErrTooFewValues / ErrNaNInf for bad input,
// ErrZeroVariance when x has no variation.
func OneSampleTTest(x []float64, mu float64) (TTestResult, error) {
	if err := check(x, 2); err != nil {
		return TTestResult{}, err
	}

	n := float64(len(x))
	mean, sd := stat.Mean(x, nil), stat.StdDev(x, nil)
	if sd == 0 {
		return TTestResult{}, ErrZeroVariance
	}

	t := (mean - mu) / (sd / math.Sqrt(n))
	df := n - 1

	return TTestResult{
		Statistic: t,
		DF:        df,
		PValue:    twoSidedP(t, df),
		Estimate:  mean,
	}, nil
}

// WelchTTest tests whether the means of x and y differ, without assuming
// equal variances (Welch's unequal-variances t-test).
//
//	t  = (x̄ − ȳ) / √(sx²/Nx + sy²/Ny)
//	df = Welch–Satterthwaite approximation (fractional)
//
// Errors: ErrEmptySeries / ErrTooFewValues / ErrNaNInf for bad input,
// ErrZeroVariance when both samples are constant.
func WelchTTest(x, y []float64) (TTestResult, error) {
	if err := check(x, 2); err != nil {
		return TTestResult{}, err
	}
	if err := check(y, 2); err != nil {
		return TTestResult{}, err
	}

	nx, ny := float64(len(x)), float64(len(y))
	mx, my := stat.Mean(x, nil), stat.Mean(y, nil)
	vx, vy := stat.Variance(x, nil), stat.Variance(y, nil)

	sex, sey := vx/nx, vy/ny
	se := math.Sqrt(sex + sey)
	if se == 0 {
		return TTestResult{}, ErrZeroVariance
	}

	t := (mx - my) / se
	df := (sex + sey) * (sex + sey) /
		(sex*sex/(nx-1) + sey*sey/(ny-1))

	return TTestResult{
		Statistic: t,
		DF:        df,
		PValue:    twoSidedP(t, df),
		Estimate:  mx - my,
	}, nil
}

// twoSidedP returns the two-sided p-value of t under Student's t with df
// degrees of freedom.
func twoSidedP(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return 2 * dist.CDF(-math.Abs(t))
}
