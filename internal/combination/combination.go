// Package combination defines the Combination entity of spec.md §3: an
// input-index tuple over a layer's variable pool, a basis, fitted
// coefficients and a cached criterion score. Input indices name originals
// as 0..F-1 and previous-layer outputs as F.. per the offset convention of
// spec.md §9 — a Combination never stores pointers into other layers, only
// integer indices, so layers serialize trivially (internal/persist).
package combination

import (
	"gonum.org/v1/gonum/mat"

	"github.com/bauman-team/GMDH/internal/basis"
)

// Kind tags which expansion a Combination uses.
type Kind int

const (
	// Multilinear is [1, x_i1, ..., x_ik] used by Combi/Multi.
	Multilinear Kind = iota
	// Pair is basis.ExpandPair(PolyType, u, v) used by Mia/Ria.
	Pair
)

// Combination is one candidate or survivor: its input tuple (resolved
// against the preceding layer's pool), its basis, its fitted coefficients
// and its criterion error.
type Combination struct {
	Inputs   []int
	Kind     Kind
	PolyType basis.PolynomialType // only meaningful when Kind == Pair
	Coeffs   []float64
	Error    float64
	GenIndex int // generation order, used to break criterion ties
}

// Arity returns the expected coefficient count for this Combination's basis.
func (c *Combination) Arity() int {
	if c.Kind == Pair {
		return c.PolyType.Arity()
	}
	return len(c.Inputs) + 1
}

// Expand builds this Combination's design matrix from the raw columns
// supplied (already resolved to the right variables, in Inputs order).
func (c *Combination) Expand(cols [][]float64) *mat.Dense {
	if c.Kind == Pair {
		return basis.ExpandPair(c.PolyType, cols[0], cols[1])
	}
	return basis.ExpandMultilinear(cols)
}

// ExpandMatrix is Expand for a raw n x len(Inputs) matrix instead of a
// pre-split column slice; it is the Expander plugged into
// criterion.Fitter when fitting/scoring this Combination.
func (c *Combination) ExpandMatrix(X *mat.Dense) *mat.Dense {
	n, k := X.Dims()
	cols := make([][]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = X.At(i, j)
		}
		cols[j] = col
	}
	return c.Expand(cols)
}

// Eval evaluates this Combination's fitted coefficients on raw columns,
// returning one prediction per row.
func (c *Combination) Eval(cols [][]float64) []float64 {
	if c.Kind == Pair {
		return basis.EvalPair(c.PolyType, c.Coeffs, cols[0], cols[1])
	}
	return basis.EvalMultilinear(c.Coeffs, cols)
}

// ByError sorts Combinations ascending by Error, breaking ties by ascending
// GenIndex — the deterministic ordering required by spec.md §4.3/§5.
type ByError []*Combination

func (b ByError) Len() int      { return len(b) }
func (b ByError) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b ByError) Less(i, j int) bool {
	if b[i].Error != b[j].Error {
		return b[i].Error < b[j].Error
	}
	return b[i].GenIndex < b[j].GenIndex
}
