package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/predict"
)

// TestFitRiaRecoversComposite reproduces the shape of spec.md's S4 scenario:
// y = x1^2 + 10*x2^2 + 80, noiseless.
func TestFitRiaRecoversComposite(t *testing.T) {
	rows := [][]float64{
		{1, 2}, {3, 1}, {0, 4}, {2, 0}, {4, 3}, {1, 1}, {3, 2},
	}
	y := make([]float64, len(rows))
	for i, r := range rows {
		x1, x2 := r[0], r[1]
		y[i] = x1*x1 + 10*x2*x2 + 80
	}

	params := defaultParams(t)
	params.PolynomialType = basis.QUADRATIC

	m, err := FitRia(rows[:6], y[:6], params)
	require.NoError(t, err)

	got, err := predict.Predict(m, [][]float64{rows[6]})
	require.NoError(t, err)
	assert.InDelta(t, y[6], got[0], 1.0)
}

func TestFitRiaLayersGrowPoolWithOriginalsAndSurvivors(t *testing.T) {
	rows := [][]float64{
		{1, 2, 1}, {3, 1, 2}, {0, 4, 1}, {2, 0, 3}, {4, 3, 0}, {1, 1, 2}, {3, 2, 1},
	}
	y := make([]float64, len(rows))
	for i, r := range rows {
		y[i] = r[0] + r[1] + r[2]
	}

	params := defaultParams(t)
	m, err := FitRia(rows, y, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(m.Layers), 1)
	// From layer 2 on, every pair joins one original (index < F=3) with one
	// previous-layer survivor output (index >= F).
	for _, l := range m.Layers[1:] {
		for _, c := range l.Combinations {
			require.Len(t, c.Inputs, 2)
			assert.Less(t, c.Inputs[0], 3)
			assert.GreaterOrEqual(t, c.Inputs[1], 3)
		}
	}
}
