package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauman-team/GMDH/internal/predict"
)

func TestFitMultiRecoversLinearSum(t *testing.T) {
	XTrain := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}, {2, 3}, {8, 1}}
	yTrain := []float64{3, 5, 7, 10, 5, 9}

	m, err := FitMulti(XTrain, yTrain, defaultParams(t))
	require.NoError(t, err)
	require.NotNil(t, m.Best())

	got, err := predict.Predict(m, [][]float64{{1, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 5, got[0], 1e-3)
}

func TestFitMultiTerminatesWhenExtensionsExhausted(t *testing.T) {
	XTrain := [][]float64{{1, 2}, {3, 2}, {7, 0}, {5, 5}, {2, 3}, {8, 1}}
	yTrain := []float64{3, 5, 7, 10, 5, 9}

	params := defaultParams(t)
	params.KBest = 5
	m, err := FitMulti(XTrain, yTrain, params)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(m.Layers), 2) // only 2 original features to extend with
}
