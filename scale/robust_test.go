package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabular/scale"
)

// TestRobust_KnownValues verifies median/IQR scaling on a series with one
// gross outlier: median 3, Q1 2, Q3 4 → IQR 2.
func TestRobust_KnownValues(t *testing.T) {
	got, err := scale.Robust([]float64{1, 2, 3, 4, 100})
	require.NoError(t, err)

	want := []float64{-1, -0.5, 0, 0.5, 48.5}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// TestRobust_OutlierResistance shows the property that motivates the
// scaler: the bulk of the data lands in a narrow band regardless of the
// outlier's magnitude.
func TestRobust_OutlierResistance(t *testing.T) {
	mild, err := scale.Robust([]float64{1, 2, 3, 4, 10})
	require.NoError(t, err)
	wild, err := scale.Robust([]float64{1, 2, 3, 4, 1e6})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.InDelta(t, mild[i], wild[i], eps,
			"non-outlier index %d must not depend on the outlier", i)
	}
}

// TestRobust_Errors covers empty input and a zero IQR.
func TestRobust_Errors(t *testing.T) {
	_, err := scale.Robust(nil)
	assert.ErrorIs(t, err, scale.ErrEmptySeries)

	// Middle half identical: Q1 == Q3 even though the extremes vary.
	_, err = scale.Robust([]float64{0, 5, 5, 5, 5, 5, 9})
	assert.ErrorIs(t, err, scale.ErrDegenerateColumn, "zero IQR must error")
}

// TestRobust_InputUntouched verifies the sort happens on a copy.
func TestRobust_InputUntouched(t *testing.T) {
	in := []float64{3, 1, 2, 5, 4}
	_, err := scale.Robust(in)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1, 2, 5, 4}, in, "input order must survive")
}
