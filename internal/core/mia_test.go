package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/predict"
)

// TestFitMiaRecoversQuadraticComposite reproduces the shape of spec.md's S3
// scenario: y = x1^2 + 2*x1*x4 + x4^2 (== (x1+x4)^2), noiseless, so Mia with
// the QUADRATIC basis should predict a held-out row almost exactly.
func TestFitMiaRecoversQuadraticComposite(t *testing.T) {
	rows := [][]float64{
		{1, 5, 2, 1},
		{2, 1, 7, 3},
		{0, 4, 1, 2},
		{3, 2, 0, 1},
		{1, 1, 1, 4},
		{2, 3, 2, 0},
		{4, 0, 3, 2},
	}
	y := make([]float64, len(rows))
	for i, r := range rows {
		x1, x4 := r[0], r[3]
		y[i] = x1*x1 + 2*x1*x4 + x4*x4
	}

	params := defaultParams(t)
	params.PolynomialType = basis.QUADRATIC

	m, err := FitMia(rows[:6], y[:6], params)
	require.NoError(t, err)

	got, err := predict.Predict(m, [][]float64{rows[6]})
	require.NoError(t, err)
	assert.InDelta(t, y[6], got[0], 1e-2)
}

func TestFitMiaFallsBackOnSingleFeature(t *testing.T) {
	XTrain := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}}
	yTrain := []float64{2, 4, 6, 8, 10, 12}

	m, err := FitMia(XTrain, yTrain, defaultParams(t))
	require.NoError(t, err)
	require.Len(t, m.Layers, 1)
	assert.Equal(t, []int{0}, m.Best().Inputs)
}
