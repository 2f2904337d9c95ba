// Package predict evaluates a fitted core.Model on new rows: spec.md §4.6's
// two prediction modes, regular (one-shot) and time-series (recursive,
// shift-and-append). Both walk the model's layer chain bottom-up exactly the
// way the teacher's ReducedFormVAR.Forecast recursively re-evaluates earlier
// lags to produce later ones (functions.go), generalized from a fixed VAR
// lag structure to GMDH's arbitrary layer-to-layer input references.
package predict

import (
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/gmdherr"
)

// Predict evaluates the model's best combination on every row of X, which
// must have exactly m.NFeatures columns.
func Predict(m *core.Model, X [][]float64) ([]float64, error) {
	if len(X) == 0 {
		return nil, gmdherr.New(gmdherr.InvalidArgument, "predict.Predict", "X has no rows")
	}
	for i, row := range X {
		if len(row) != m.NFeatures {
			return nil, gmdherr.New(gmdherr.ShapeMismatch, "predict.Predict", "row %d has %d columns, model expects %d", i, len(row), m.NFeatures)
		}
	}
	if err := gmdherr.CheckFiniteMatrix(X, "X", "predict.Predict"); err != nil {
		return nil, err
	}
	memo := make(map[[2]int][]float64)
	return evalCombination(m, m.BestLayerIdx, m.BestComboIdx, X, memo), nil
}

// ForecastTimeSeries recursively predicts steps future values from a single
// starting lag window firstRow (length m.NFeatures): each prediction is
// appended to the window and its oldest lag is dropped before the next step,
// per spec.md §4.6.
func ForecastTimeSeries(m *core.Model, firstRow []float64, steps int) ([]float64, error) {
	if steps <= 0 {
		return nil, gmdherr.New(gmdherr.InvalidArgument, "predict.ForecastTimeSeries", "steps must be positive, got %d", steps)
	}
	if len(firstRow) != m.NFeatures {
		return nil, gmdherr.New(gmdherr.ShapeMismatch, "predict.ForecastTimeSeries", "firstRow has %d columns, model expects %d", len(firstRow), m.NFeatures)
	}

	window := make([]float64, len(firstRow))
	copy(window, firstRow)

	out := make([]float64, steps)
	for s := 0; s < steps; s++ {
		pred, err := Predict(m, [][]float64{window})
		if err != nil {
			return nil, err
		}
		v := pred[0]
		out[s] = v
		window = append(window[1:], v)
	}
	return out, nil
}

// evalCombination evaluates Layers[layerIdx].Combinations[comboIdx] on X,
// recursively resolving any Inputs index >= m.NFeatures against the
// preceding layer's corresponding survivor output, per the global offset
// convention of spec.md §9. Results are memoized per (layerIdx, comboIdx)
// since a single layer's outputs may feed more than one later combination.
func evalCombination(m *core.Model, layerIdx, comboIdx int, X [][]float64, memo map[[2]int][]float64) []float64 {
	key := [2]int{layerIdx, comboIdx}
	if v, ok := memo[key]; ok {
		return v
	}
	comb := m.Layers[layerIdx].Combinations[comboIdx]
	cols := make([][]float64, len(comb.Inputs))
	for i, idx := range comb.Inputs {
		if idx < m.NFeatures {
			cols[i] = columnOf(X, idx)
		} else {
			cols[i] = evalCombination(m, layerIdx-1, idx-m.NFeatures, X, memo)
		}
	}
	out := comb.Eval(cols)
	memo[key] = out
	return out
}

func columnOf(X [][]float64, idx int) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = row[idx]
	}
	return out
}
