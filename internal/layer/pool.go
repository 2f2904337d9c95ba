package layer

import (
	"gonum.org/v1/gonum/mat"

	"github.com/bauman-team/GMDH/internal/combination"
)

// Pool is the variable pool available to candidate generation at one layer:
// a set of columns, each sampled over both the internal train and test
// rows. For Combi/Multi the pool is always the original features. For
// Mia/Ria layer L>1 the pool additionally (Mia: exclusively) holds the
// evaluated outputs of the previous layer's survivors.
type Pool struct {
	Tr, Te   *mat.Dense // ntr x poolSize, nte x poolSize
	Ytr, Yte []float64  // internal split targets, fixed for the whole fit
}

func (p Pool) Size() int {
	_, k := p.Tr.Dims()
	return k
}

// Columns extracts the raw train/test column pair for each requested pool
// index, in the order given.
func (p Pool) Columns(indices []int) (trCols, teCols [][]float64) {
	trCols = make([][]float64, len(indices))
	teCols = make([][]float64, len(indices))
	for i, idx := range indices {
		trCols[i] = mat.Col(nil, idx, p.Tr)
		teCols[i] = mat.Col(nil, idx, p.Te)
	}
	return trCols, teCols
}

// NewOriginalPool builds a layer-1 pool directly from the internal train/test
// split of the original feature matrix.
func NewOriginalPool(Xtr, Xte *mat.Dense, ytr, yte []float64) Pool {
	return Pool{Tr: Xtr, Te: Xte, Ytr: ytr, Yte: yte}
}

// SurvivorPool builds the next layer's variable pool from a set of
// survivors evaluated against the pool they were fit on: one output column
// per survivor (Mia's layer L>1 pool). localInputs[i] gives survivors[i]'s
// input indices local to pool — the caller's own Pool, not the global
// storage convention recorded on Combination.Inputs, since a survivor's
// local fitting pool and its globally offset stored Inputs diverge from
// layer 2 onward (spec.md §9).
func SurvivorPool(survivors []*combination.Combination, localInputs [][]int, pool Pool) Pool {
	trCols := make([][]float64, len(survivors))
	teCols := make([][]float64, len(survivors))
	for i, s := range survivors {
		inTr, inTe := pool.Columns(localInputs[i])
		trCols[i] = s.Eval(inTr)
		teCols[i] = s.Eval(inTe)
	}
	return Pool{
		Tr:  columnsToMatrix(trCols),
		Te:  columnsToMatrix(teCols),
		Ytr: pool.Ytr,
		Yte: pool.Yte,
	}
}

// Concat horizontally concatenates two pools' columns (a before b; Ria
// calls this with originals as a and survivor outputs as b), used by Ria to
// build its layer L>1 pool.
func Concat(a, b Pool) Pool {
	trCols := append(matColumns(a.Tr), matColumns(b.Tr)...)
	teCols := append(matColumns(a.Te), matColumns(b.Te)...)
	return Pool{
		Tr:  columnsToMatrix(trCols),
		Te:  columnsToMatrix(teCols),
		Ytr: a.Ytr,
		Yte: a.Yte,
	}
}

func matColumns(m *mat.Dense) [][]float64 {
	_, k := m.Dims()
	cols := make([][]float64, k)
	for j := 0; j < k; j++ {
		cols[j] = mat.Col(nil, j, m)
	}
	return cols
}

// stackRows vertically concatenates two same-width matrices.
func stackRows(a, b *mat.Dense) *mat.Dense {
	ra, c := a.Dims()
	rb, _ := b.Dims()
	out := mat.NewDense(ra+rb, c, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}
	for i := 0; i < rb; i++ {
		for j := 0; j < c; j++ {
			out.Set(ra+i, j, b.At(i, j))
		}
	}
	return out
}

// columnsToMatrix stacks raw columns (n samples each) into an n x len(cols)
// matrix for basis expansion.
func columnsToMatrix(cols [][]float64) *mat.Dense {
	if len(cols) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	n := len(cols[0])
	k := len(cols)
	data := make([]float64, n*k)
	for j, col := range cols {
		for i, v := range col {
			data[i*k+j] = v
		}
	}
	return mat.NewDense(n, k, data)
}
