package core

import (
	"math"

	"github.com/bauman-team/GMDH/internal/candidate"
	"github.com/bauman-team/GMDH/internal/layer"
)

// riaMinKBest is the floor of spec.md §4.5's k_best for Ria: unlike Mia, Ria
// requires only 1 survivor to continue, since originals remain in the pool
// as pairing partners at every layer.
const riaMinKBest = 1

// FitRia implements the Ria algorithm of spec.md §4.5: layer 1 pairs every
// two of the F original features, exactly like Mia's first layer. From
// layer 2 on, Ria's pool is the F originals concatenated with the previous
// layer's survivor outputs (layer.Concat), and candidates are restricted to
// cross pairs of one original with one survivor output (candidate.RiaPairs)
// — unlike Mia, originals never drop out of the pool. Because the pool is
// laid out originals-then-survivors, a candidate's pool index already equals
// its global storage index at every layer, so no remap is needed.
func FitRia(X [][]float64, y []float64, params Params) (*Model, error) {
	pool, f, err := originalPool(X, y, params.TestSize, params.RandomState)
	if err != nil {
		return nil, err
	}
	d := params.driver()
	kBest := params.KBest
	if kBest < riaMinKBest {
		kBest = riaMinKBest
	}

	var layers []Layer
	bestErr := math.Inf(1)
	curPool := pool
	specs := pairSpecs(candidate.RiaPairsLayer1(f), params.PolynomialType, identity)

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
		if k < 1 {
			break
		}
		survivors := cur.Combinations[:k]
		localInputs := make([][]int, k)
		for i, s := range survivors {
			localInputs[i] = specs[s.GenIndex].PoolInputs
		}
		survivorOutputs := layer.SurvivorPool(survivors, localInputs, curPool)
		curPool = layer.Concat(pool, survivorOutputs)
		specs = pairSpecs(candidate.RiaPairs(k, f), params.PolynomialType, identity)
	}

	if len(layers) == 0 {
		fb, err := fallbackSingleVariable(pool, f, d)
		if err != nil {
			return nil, err
		}
		layers = []Layer{fb}
	}

	return &Model{
		Algorithm:    Ria,
		PolyType:     params.PolynomialType,
		NFeatures:    f,
		Layers:       layers,
		BestLayerIdx: len(layers) - 1,
		BestComboIdx: 0,
	}, nil
}
