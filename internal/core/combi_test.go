package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauman-team/GMDH/internal/criterion"
	"github.com/bauman-team/GMDH/internal/linalg"
	"github.com/bauman-team/GMDH/internal/predict"
)

func defaultParams(t *testing.T) Params {
	t.Helper()
	c, err := criterion.NewSingle(criterion.STABILITY, linalg.FAST)
	require.NoError(t, err)
	return Params{Criterion: c, TestSize: 0.2, PAverage: 1, NJobs: 1, RandomState: 7}
}

// TestFitCombiRecoversLinearSum reproduces spec.md's S1 scenario: y = x1+x2
// exactly, so Combi should find the two-variable combination and predict the
// held-out rows to within floating-point noise.
func TestFitCombiRecoversLinearSum(t *testing.T) {
	XTrain := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}}
	yTrain := []float64{3, 5, 7, 10}

	m, err := FitCombi(XTrain, yTrain, defaultParams(t))
	require.NoError(t, err)

	got, err := predict.Predict(m, [][]float64{{1, 4}, {2, 6}})
	require.NoError(t, err)
	assert.InDelta(t, 5, got[0], 1e-6)
	assert.InDelta(t, 8, got[1], 1e-6)

	best := m.Best()
	assert.ElementsMatch(t, []int{0, 1}, best.Inputs)
}

func TestFitCombiStopsAtFeatureCount(t *testing.T) {
	XTrain := [][]float64{{1, 2, 5}, {3, 2, 1}, {7, 0, 4}, {5, 5, 9}, {2, 3, 1}, {8, 1, 2}}
	yTrain := []float64{3, 5, 7, 10, 5, 9}

	m, err := FitCombi(XTrain, yTrain, defaultParams(t))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(m.Layers), 3)
	assert.Equal(t, 3, m.NFeatures)
}

// TestFitCombiRejectsNaN covers spec.md §3's "no NaN" invariant and §7's
// invalid-argument taxonomy entry for NaN in X or y.
func TestFitCombiRejectsNaN(t *testing.T) {
	_, err := FitCombi([][]float64{{1, 2}, {math.NaN(), 2}}, []float64{3, 5}, defaultParams(t))
	assert.Error(t, err)

	_, err = FitCombi([][]float64{{1, 2}, {3, 2}}, []float64{3, math.Inf(-1)}, defaultParams(t))
	assert.Error(t, err)
}
