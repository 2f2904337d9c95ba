package tsutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSeriesTransformationFibonacci(t *testing.T) {
	series := []float64{1, 1, 2, 3, 5, 8, 13, 21}
	X, y, err := TimeSeriesTransformation(series, 2)
	require.NoError(t, err)

	want := [][]float64{{1, 1}, {1, 2}, {2, 3}, {3, 5}, {5, 8}, {8, 13}}
	assert.Equal(t, want, X)
	assert.Equal(t, []float64{2, 3, 5, 8, 13, 21}, y)
}

func TestTimeSeriesTransformationInvalidLags(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6}
	for _, lags := range []int{0, -1, 6, 7} {
		_, _, err := TimeSeriesTransformation(series, lags)
		assert.Error(t, err, "lags=%d should be rejected", lags)
	}
	_, _, err := TimeSeriesTransformation(nil, 2)
	assert.Error(t, err)
}

func TestSplitDataS1(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}, {1, 4}, {2, 6}}
	y := []float64{3, 5, 7, 10, 5, 8}

	xTr, xTe, yTr, yTe, err := SplitData(X, y, 0.33, false, 0)
	require.NoError(t, err)
	assert.Len(t, xTe, 2)
	assert.Len(t, xTr, 4)
	assert.Equal(t, [][]float64{{1, 4}, {2, 6}}, xTe)
	assert.Equal(t, []float64{5, 8}, yTe)
	assert.Equal(t, X[:4], xTr)
	assert.Equal(t, y[:4], yTr)
}

func TestSplitDataPreservesPartition(t *testing.T) {
	X := make([][]float64, 10)
	y := make([]float64, 10)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = float64(i)
	}
	xTr, xTe, yTr, yTe, err := SplitData(X, y, 0.3, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, len(xTr)+len(xTe))
	assert.Equal(t, 10, len(yTr)+len(yTe))
}

func TestSplitDataShuffleDeterministic(t *testing.T) {
	X := make([][]float64, 20)
	y := make([]float64, 20)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = float64(i)
	}
	xTr1, xTe1, _, _, err := SplitData(X, y, 0.25, true, 42)
	require.NoError(t, err)
	xTr2, xTe2, _, _, err := SplitData(X, y, 0.25, true, 42)
	require.NoError(t, err)
	assert.Equal(t, xTr1, xTr2)
	assert.Equal(t, xTe1, xTe2)
}

func TestSplitDataRejectsBadInput(t *testing.T) {
	_, _, _, _, err := SplitData(nil, nil, 0.3, false, 0)
	assert.Error(t, err)

	X := [][]float64{{1}, {2}}
	y := []float64{1, 2, 3}
	_, _, _, _, err = SplitData(X, y, 0.3, false, 0)
	assert.Error(t, err)

	_, _, _, _, err = SplitData([][]float64{{1}, {2}}, []float64{1, 2}, 0, false, 0)
	assert.Error(t, err)
	_, _, _, _, err = SplitData([][]float64{{1}, {2}}, []float64{1, 2}, 1, false, 0)
	assert.Error(t, err)
}

func TestSplitDataRejectsNaN(t *testing.T) {
	_, _, _, _, err := SplitData([][]float64{{1}, {math.NaN()}}, []float64{1, 2}, 0.3, false, 0)
	assert.Error(t, err)

	_, _, _, _, err = SplitData([][]float64{{1}, {2}}, []float64{1, math.Inf(1)}, 0.3, false, 0)
	assert.Error(t, err)
}

func TestTimeSeriesTransformationRejectsNaN(t *testing.T) {
	_, _, err := TimeSeriesTransformation([]float64{1, 2, math.NaN(), 4, 5}, 2)
	assert.Error(t, err)
}
