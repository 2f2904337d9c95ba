package core

import "math"

// FitCombi implements the Combi algorithm of spec.md §4.5: at layer L it
// evaluates every L-subset of the F original features (candidate.CombiSubsets)
// against the unchanging original pool, keeps only the layer's best-ranked
// combination, and advances L while the layer's error improves by more than
// params.Limit, stopping at L==F regardless.
func FitCombi(X [][]float64, y []float64, params Params) (*Model, error) {
	pool, f, err := originalPool(X, y, params.TestSize, params.RandomState)
	if err != nil {
		return nil, err
	}
	d := params.driver()

	var layers []Layer
	bestErr := math.Inf(1)
	for l := 1; l <= f && l <= maxLayers; l++ {
		res, err := d.Evaluate(l, combiSpecs(f, l), pool)
		if err != nil {
			return nil, err
		}
		cur := Layer{Combinations: res.Candidates[:1], Error: res.LayerError}
		if l > 1 && cur.Error >= bestErr-params.Limit {
			break
		}
		layers = append(layers, cur)
		bestErr = cur.Error
	}

	if len(layers) == 0 {
		fb, err := fallbackSingleVariable(pool, f, d)
		if err != nil {
			return nil, err
		}
		layers = []Layer{fb}
	}

	return &Model{
		Algorithm:    Combi,
		NFeatures:    f,
		Layers:       layers,
		BestLayerIdx: len(layers) - 1,
		BestComboIdx: 0,
	}, nil
}
