package gmdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS1CombiSum reproduces spec.md §8's S1 scenario exactly.
func TestS1CombiSum(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}, {1, 4}, {2, 6}}
	y := []float64{3, 5, 7, 10, 5, 8}

	xTrain, xTest, yTrain, _, err := SplitData(X, y, 0.33, false, 0)
	require.NoError(t, err)

	var model Combi
	_, err = model.Fit(xTrain, yTrain, DefaultCombiParams())
	require.NoError(t, err)

	got, err := model.Predict(xTest)
	require.NoError(t, err)
	assert.InDelta(t, 5, got[0], 1e-4)
	assert.InDelta(t, 8, got[1], 1e-4)

	assert.Equal(t, "y = x1 + x2", model.GetBestPolynomial())
}

// TestS2CombiFibonacci reproduces spec.md §8's S2 scenario.
func TestS2CombiFibonacci(t *testing.T) {
	series := []float64{1, 1, 2, 3, 5, 8, 13, 21}
	X, y, err := TimeSeriesTransformation(series, 2)
	require.NoError(t, err)

	xTrain, xTest, yTrain, _, err := SplitData(X, y, 0.25, false, 0)
	require.NoError(t, err)

	var model Combi
	_, err = model.Fit(xTrain, yTrain, DefaultCombiParams())
	require.NoError(t, err)

	got, err := model.Predict(xTest)
	require.NoError(t, err)
	assert.InDelta(t, 13, got[0], 1e-3)
	assert.InDelta(t, 21, got[1], 1e-3)
}

// TestS5MiaTimeSeriesForecast reproduces the shape of spec.md §8's S5
// scenario: a linearly increasing series forecast recursively.
func TestS5MiaTimeSeriesForecast(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	X, y, err := TimeSeriesTransformation(series, 3)
	require.NoError(t, err)

	params := DefaultMiaParams()
	params.PolynomialType = LINEAR
	var model Mia
	_, err = model.Fit(X, y, params)
	require.NoError(t, err)

	firstTestRow := []float64{7, 8, 9}
	got, err := model.Predict([][]float64{firstTestRow}, 5)
	require.NoError(t, err)
	want := []float64{10, 11, 12, 13, 14}
	require.Len(t, got, 5)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 0.5)
	}
}

// TestS6Persistence reproduces spec.md §8's S6 scenario: predictions before
// save and after loading into a fresh model must match exactly.
func TestS6Persistence(t *testing.T) {
	X := [][]float64{{0, 2}, {7, 4}, {5, 5}, {9, 12}}
	y := []float64{2, 11, 10, 21}

	var model Combi
	params := DefaultCombiParams()
	params.TestSize = 0.25
	_, err := model.Fit(X, y, params)
	require.NoError(t, err)

	rows := [][]float64{{4, 3}, {1, 11}}
	before, err := model.Predict(rows)
	require.NoError(t, err)

	path := t.TempDir() + "/s6.json"
	require.NoError(t, model.Save(path))

	var loaded Combi
	require.NoError(t, loaded.Load(path))

	after, err := loaded.Predict(rows)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestNewCriterionRejectsInvalidAlpha(t *testing.T) {
	_, err := NewParallelCriterion(REGULARITY, STABILITY, 1.5, FAST)
	assert.Error(t, err)
}

// TestS4RiaComposite reproduces spec.md §8's S4 scenario's prediction; the
// literal constant-last polynomial ordering is covered by
// TestRenderExpandedConstantLast in polynomial_test.go.
func TestS4RiaComposite(t *testing.T) {
	rows := [][]float64{
		{1, 2}, {3, 1}, {0, 4}, {2, 0}, {4, 3}, {1, 1}, {3, 2},
	}
	y := make([]float64, len(rows))
	for i, r := range rows {
		x1, x2 := r[0], r[1]
		y[i] = x1*x1 + 10*x2*x2 + 80
	}

	var model Ria
	params := DefaultRiaParams()
	_, err := model.Fit(rows[:6], y[:6], params)
	require.NoError(t, err)

	got, err := model.Predict(rows[6:])
	require.NoError(t, err)
	assert.InDelta(t, y[6], got[0], 1.0)
}

// TestPredictRejectsEmptyInput covers the §7 invalid-argument case for an
// empty X passed to Predict, including the lags>0 forecast path.
func TestPredictRejectsEmptyInput(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}}
	y := []float64{3, 5, 7, 10}

	var model Combi
	_, err := model.Fit(X, y, DefaultCombiParams())
	require.NoError(t, err)

	_, err = model.Predict(nil)
	assert.Error(t, err)
	_, err = model.Predict([][]float64{}, 5)
	assert.Error(t, err)
}
