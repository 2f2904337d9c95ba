package criterion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/linalg"
)

func identityExpand(X *mat.Dense) *mat.Dense {
	// raw columns already include the leading constant column for this test
	return X
}

func sampleSplit() Split {
	// y = 1 + 2x, noiseless, split into two exact halves.
	xs := []float64{0, 1, 2, 3}
	ys := make([]float64, len(xs))
	rows := make([]float64, len(xs)*2)
	for i, x := range xs {
		rows[i*2] = 1
		rows[i*2+1] = x
		ys[i] = 1 + 2*x
	}
	Xtr := mat.NewDense(2, 2, rows[:4])
	Xte := mat.NewDense(2, 2, rows[4:])
	return Split{Xtr: Xtr, Xte: Xte, Ytr: ys[:2], Yte: ys[2:]}
}

func TestEvaluateRegularityIsZeroOnNoiselessData(t *testing.T) {
	f := Fitter{Expand: identityExpand, Solver: linalg.FAST}
	sp := sampleSplit()

	score, err := Evaluate(REGULARITY, f, sp)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestEvaluateAllTypesNonNegative(t *testing.T) {
	f := Fitter{Expand: identityExpand, Solver: linalg.FAST}
	sp := sampleSplit()

	for t2 := REGULARITY; t2 <= SYM_ABSOLUTE_NOISE_IMMUNITY; t2++ {
		score, err := Evaluate(t2, f, sp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0, "criterion %v produced negative score", t2)
	}
}

func TestNewParallelRejectsOutOfRangeAlpha(t *testing.T) {
	_, err := NewParallel(REGULARITY, STABILITY, 0, linalg.FAST)
	assert.Error(t, err)
	_, err = NewParallel(REGULARITY, STABILITY, 1, linalg.FAST)
	assert.Error(t, err)
	_, err = NewParallel(REGULARITY, STABILITY, 0.5, linalg.FAST)
	assert.NoError(t, err)
}

func TestNewSequentialRejectsNegativeTop(t *testing.T) {
	_, err := NewSequential(REGULARITY, STABILITY, -1, linalg.FAST)
	assert.Error(t, err)
}

func TestResolvedTopDefaultsToHalf(t *testing.T) {
	c, err := NewSequential(REGULARITY, STABILITY, 0, linalg.FAST)
	require.NoError(t, err)
	assert.Equal(t, 5, c.ResolvedTop(10))
	assert.Equal(t, 2, c.ResolvedTop(3)) // half of an odd count rounds up
}

func TestParallelScoreInterpolatesTowardEachComponent(t *testing.T) {
	// A candidate whose c1 and c2 differ measurably: use a basis with a
	// biased fit on a tiny, noisy split so REGULARITY != STABILITY.
	expand := func(X *mat.Dense) *mat.Dense { return basis.ExpandMultilinear(columnsOf(X)) }
	f := Fitter{Expand: expand, Solver: linalg.FAST}

	Xtr := mat.NewDense(3, 1, []float64{0, 1, 2})
	Xte := mat.NewDense(2, 1, []float64{3, 10})
	ytr := []float64{1, 3, 5}
	yte := []float64{7, 5}

	sp := Split{Xtr: Xtr, Xte: Xte, Ytr: ytr, Yte: yte}

	cLow, err := NewParallel(REGULARITY, STABILITY, 1e-6, linalg.FAST)
	require.NoError(t, err)
	cHigh, err := NewParallel(REGULARITY, STABILITY, 1-1e-6, linalg.FAST)
	require.NoError(t, err)

	sLow, err := cLow.ScoreParallel(f, sp)
	require.NoError(t, err)
	sHigh, err := cHigh.ScoreParallel(f, sp)
	require.NoError(t, err)

	regOnly, _ := Evaluate(REGULARITY, f, sp)
	stabOnly, _ := Evaluate(STABILITY, f, sp)

	assert.InDelta(t, stabOnly, sLow, 1e-4)
	assert.InDelta(t, regOnly, sHigh, 1e-4)
}

func columnsOf(X *mat.Dense) [][]float64 {
	n, k := X.Dims()
	cols := make([][]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = X.At(i, j)
		}
		cols[j] = col
	}
	return cols
}
