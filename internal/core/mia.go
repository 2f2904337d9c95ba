package core

import (
	"math"

	"github.com/bauman-team/GMDH/internal/candidate"
	"github.com/bauman-team/GMDH/internal/layer"
)

// miaMinKBest is the floor of spec.md §4.5/§6's k_best for Mia: at least 3
// survivors are kept so the next layer has enough pairs to try, clamped down
// when fewer candidates are even available. Ria's floor is lower
// (riaMinKBest, in ria.go) since its pool always keeps the originals around
// as pairing partners even when only 1 survivor is kept.
const miaMinKBest = 3

// FitMia implements the Mia algorithm of spec.md §4.5: layer 1 pairs every
// two of the F original features (candidate.MiaPairs) under the fixed pair
// basis; layer L>1 pairs every two of the PREVIOUS layer's surviving outputs
// only — Mia's pool never again includes the originals. Survivors' stored
// Inputs are offset by F so prediction can resolve them against the global
// layer-output convention of spec.md §9, independent of Mia's local,
// originals-free pool layout.
func FitMia(X [][]float64, y []float64, params Params) (*Model, error) {
	pool, f, err := originalPool(X, y, params.TestSize, params.RandomState)
	if err != nil {
		return nil, err
	}
	d := params.driver()
	kBest := params.KBest
	if kBest < miaMinKBest {
		kBest = miaMinKBest
	}

	var layers []Layer
	bestErr := math.Inf(1)
	curPool := pool
	specs := pairSpecs(candidate.MiaPairs(f), params.PolynomialType, identity)

	for l := 1; l <= maxLayers && len(specs) > 0; l++ {
		res, err := d.Evaluate(l, specs, curPool)
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
		if k < 2 {
			// Too few survivors to form another pair: terminate here.
			break
		}
		survivors := cur.Combinations[:k]
		localInputs := make([][]int, k)
		for i, s := range survivors {
			localInputs[i] = specs[s.GenIndex].PoolInputs
		}
		curPool = layer.SurvivorPool(survivors, localInputs, curPool)
		specs = pairSpecs(candidate.MiaPairs(k), params.PolynomialType, func(idx int) int { return f + idx })
	}

	if len(layers) == 0 {
		fb, err := fallbackSingleVariable(pool, f, d)
		if err != nil {
			return nil, err
		}
		layers = []Layer{fb}
	}

	return &Model{
		Algorithm:    Mia,
		PolyType:     params.PolynomialType,
		NFeatures:    f,
		Layers:       layers,
		BestLayerIdx: len(layers) - 1,
		BestComboIdx: 0,
	}, nil
}
