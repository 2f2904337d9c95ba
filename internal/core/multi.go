package core

import (
	"math"

	"github.com/bauman-team/GMDH/internal/candidate"
)

// FitMulti implements the Multi algorithm of spec.md §4.5: layer 1 seeds
// from every single original feature (identical to Combi's first layer),
// then each subsequent layer extends the previous layer's top-k_best
// survivors by one not-yet-used original feature (candidate.MultiExtensions).
// It stops when the survivor pool can no longer be extended (every survivor
// has reached arity F) or the layer error fails to improve by params.Limit.
func FitMulti(X [][]float64, y []float64, params Params) (*Model, error) {
	pool, f, err := originalPool(X, y, params.TestSize, params.RandomState)
	if err != nil {
		return nil, err
	}
	d := params.driver()
	kBest := params.KBest
	if kBest < 1 {
		kBest = 1
	}

	var layers []Layer
	bestErr := math.Inf(1)
	specs := combiSpecs(f, 1)

	for l := 1; l <= maxLayers; l++ {
		res, err := d.Evaluate(l, specs, pool)
		if err != nil {
			return nil, err
		}
		cur := Layer{Combinations: res.Candidates, Error: res.LayerError}
		if l > 1 && cur.Error >= bestErr-params.Limit {
			break
		}
		layers = append(layers, cur)
		bestErr = cur.Error

		k := kBest
		if k > len(cur.Combinations) {
			k = len(cur.Combinations)
		}
		survivorTuples := make([][]int, k)
		for i := 0; i < k; i++ {
			survivorTuples[i] = cur.Combinations[i].Inputs
		}
		extensions := candidate.MultiExtensions(survivorTuples, f)
		if len(extensions) == 0 {
			break
		}
		specs = multiSpecs(extensions)
	}

	if len(layers) == 0 {
		fb, err := fallbackSingleVariable(pool, f, d)
		if err != nil {
			return nil, err
		}
		layers = []Layer{fb}
	}

	return &Model{
		Algorithm:    Multi,
		NFeatures:    f,
		Layers:       layers,
		BestLayerIdx: len(layers) - 1,
		BestComboIdx: 0,
	}, nil
}
