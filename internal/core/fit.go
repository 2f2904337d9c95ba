package core

import (
	"gonum.org/v1/gonum/mat"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/candidate"
	"github.com/bauman-team/GMDH/internal/combination"
	"github.com/bauman-team/GMDH/internal/gmdherr"
	"github.com/bauman-team/GMDH/internal/layer"
	"github.com/bauman-team/GMDH/internal/tsutil"
)

// toMatrix stacks row-major samples into an n x k gonum matrix.
func toMatrix(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	n := len(rows)
	k := len(rows[0])
	data := make([]float64, n*k)
	for i, row := range rows {
		copy(data[i*k:i*k+k], row)
	}
	return mat.NewDense(n, k, data)
}

// originalPool splits (X, y) into the internal train/test partition used to
// score layer-1 (and every subsequent layer's) candidates, per spec.md §4.1:
// Fit always holds out test_size of the rows for internal model selection,
// independent of any external test set the caller keeps for its own use.
func originalPool(X [][]float64, y []float64, testSize float64, randomState int64) (layer.Pool, int, error) {
	if len(X) == 0 {
		return layer.Pool{}, 0, gmdherr.New(gmdherr.InvalidArgument, "core.originalPool", "X has no rows")
	}
	f := len(X[0])
	for _, row := range X {
		if len(row) != f {
			return layer.Pool{}, 0, gmdherr.New(gmdherr.ShapeMismatch, "core.originalPool", "ragged feature matrix")
		}
	}
	if len(X) != len(y) {
		return layer.Pool{}, 0, gmdherr.New(gmdherr.ShapeMismatch, "core.originalPool", "X has %d rows but y has %d", len(X), len(y))
	}
	if err := gmdherr.CheckFiniteMatrix(X, "X", "core.originalPool"); err != nil {
		return layer.Pool{}, 0, err
	}
	if err := gmdherr.CheckFiniteVector(y, "y", "core.originalPool"); err != nil {
		return layer.Pool{}, 0, err
	}
	// Fit's internal train/test split must be reproducible given the same
	// inputs and hyperparameters (spec.md §5's determinism guarantee), so a
	// zero RandomState selects a fixed internal seed here rather than
	// tsutil.SplitData's own "0 means nondeterministic" public contract.
	seed := randomState
	if seed == 0 {
		seed = 1
	}
	xTrain, xTest, yTrain, yTest, err := tsutil.SplitData(X, y, testSize, true, seed)
	if err != nil {
		return layer.Pool{}, 0, gmdherr.Wrap(gmdherr.InvalidArgument, "core.originalPool", err)
	}
	pool := layer.NewOriginalPool(toMatrix(xTrain), toMatrix(xTest), yTrain, yTest)
	return pool, f, nil
}

// fallbackSingleVariable builds a one-layer, single-variable model from the
// original pool when an algorithm's normal layer loop cannot produce a
// usable layer (spec.md §7's "fit produces no usable layer" edge case):
// every original feature is scored alone and the best one kept.
func fallbackSingleVariable(pool layer.Pool, f int, d *layer.Driver) (Layer, error) {
	specs := make([]layer.CandidateSpec, f)
	for i := 0; i < f; i++ {
		specs[i] = layer.CandidateSpec{
			PoolInputs:    []int{i},
			StorageInputs: []int{i},
			Kind:          combination.Multilinear,
		}
	}
	res, err := d.Evaluate(1, specs, pool)
	if err != nil {
		return Layer{}, err
	}
	return Layer{Combinations: res.Candidates, Error: res.LayerError}, nil
}

// combiSpecs builds the CandidateSpec batch for one Combi layer: every
// L-subset of the original F features, identity pool/storage indices.
func combiSpecs(f, l int) []layer.CandidateSpec {
	subsets := candidate.CombiSubsets(f, l)
	specs := make([]layer.CandidateSpec, len(subsets))
	for i, s := range subsets {
		specs[i] = layer.CandidateSpec{PoolInputs: s, StorageInputs: s, Kind: combination.Multilinear}
	}
	return specs
}

// multiSpecs builds the CandidateSpec batch for one Multi layer beyond the
// first: every survivor extended by one unused original feature.
func multiSpecs(extensions []candidate.Extension) []layer.CandidateSpec {
	specs := make([]layer.CandidateSpec, len(extensions))
	for i, e := range extensions {
		specs[i] = layer.CandidateSpec{PoolInputs: e.Tuple, StorageInputs: e.Tuple, Kind: combination.Multilinear}
	}
	return specs
}

// pairSpecs builds the CandidateSpec batch for a Mia/Ria layer from unordered
// pool-index pairs; remap turns each pool index into its stored (global)
// index. Mia's L>1 layers pass a remap that adds F, since their pool holds
// only survivor outputs but their stored Inputs must carry the global F+
// offset. Ria's layers and every layer 1 pass identity, since those pools are
// laid out in the same order as global storage.
func pairSpecs(pairs []candidate.Pair, pt basis.PolynomialType, remap func(poolIdx int) int) []layer.CandidateSpec {
	specs := make([]layer.CandidateSpec, len(pairs))
	for i, p := range pairs {
		specs[i] = layer.CandidateSpec{
			PoolInputs:    []int{p.I, p.J},
			StorageInputs: []int{remap(p.I), remap(p.J)},
			Kind:          combination.Pair,
			PolyType:      pt,
		}
	}
	return specs
}

func identity(idx int) int { return idx }
