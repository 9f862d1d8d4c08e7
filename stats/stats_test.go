package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabular/stats"
)

const eps = 1e-9

// TestMean_KnownValues verifies the arithmetic mean and empty-input error.
func TestMean_KnownValues(t *testing.T) {
	m, err := stats.Mean([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 3, m, eps)

	_, err = stats.Mean(nil)
	assert.ErrorIs(t, err, stats.ErrEmptySeries)
}

// TestVariance_SampleVsPopulation pins the two denominators against each
// other: for [1..5], sample variance 2.5 vs population variance 2.
func TestVariance_SampleVsPopulation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	v, err := stats.Variance(x)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, eps, "sample variance, denominator N-1")

	pv, err := stats.PopVariance(x)
	require.NoError(t, err)
	assert.InDelta(t, 2, pv, eps, "population variance, denominator N")

	sd, err := stats.StdDev(x)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.5), sd, eps)

	psd, err := stats.PopStdDev(x)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, psd, eps)
}

// TestVariance_TooFew ensures sample variance demands N ≥ 2.
func TestVariance_TooFew(t *testing.T) {
	_, err := stats.Variance([]float64{7})
	assert.ErrorIs(t, err, stats.ErrTooFewValues)

	_, err = stats.StdDev([]float64{7})
	assert.ErrorIs(t, err, stats.ErrTooFewValues)
}

// TestMinMax_Basic verifies extremes and NaN rejection.
func TestMinMax_Basic(t *testing.T) {
	lo, err := stats.Min([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)

	hi, err := stats.Max([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, hi)

	_, err = stats.Min([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, stats.ErrNaNInf)
}

// TestQuantile_LinearInterpolation verifies the interpolation convention:
// quantiles land on p·(N−1) fractional order statistics.
func TestQuantile_LinearInterpolation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	q1, err := stats.Quantile(0.25, x)
	require.NoError(t, err)
	assert.InDelta(t, 2, q1, eps)

	q3, err := stats.Quantile(0.75, x)
	require.NoError(t, err)
	assert.InDelta(t, 4, q3, eps)

	// Even length interpolates between the middle pair.
	med, err := stats.Median([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, med, eps)
}

// TestQuantile_UnsortedInput verifies sorting happens internally on a copy.
func TestQuantile_UnsortedInput(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}

	med, err := stats.Median(x)
	require.NoError(t, err)
	assert.InDelta(t, 3, med, eps)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, x, "input order must survive")
}

// TestQuantile_BadP ensures probabilities outside [0,1] error ErrBadQuantile.
func TestQuantile_BadP(t *testing.T) {
	_, err := stats.Quantile(-0.1, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrBadQuantile)

	_, err = stats.Quantile(1.1, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrBadQuantile)

	_, err = stats.Quantile(math.NaN(), []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrBadQuantile)
}
