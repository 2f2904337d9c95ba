// Package linalg holds the dense linear-algebra core shared by every
// candidate fit: the three least-squares solver modes from spec.md §4.1.
// It mirrors the teacher's direct use of gonum.org/v1/gonum/mat for normal
// equations and SVD-based fallback (see functions.go's OLSEstimator.Estimate),
// generalized from a single fixed solve path into three selectable modes.
package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// Solver selects the least-squares strategy used to fit a candidate's
// coefficients against its design matrix.
type Solver int

const (
	// FAST solves the normal equations via Cholesky of AᵀA. Weakest under
	// ill-conditioning, regularized with a tiny ridge term when AᵀA is not
	// positive definite.
	FAST Solver = iota
	// ACCURATE solves via SVD-based pseudoinverse, robust to rank deficiency.
	ACCURATE
	// BALANCED solves via a column-pivoted QR.
	BALANCED
)

func (s Solver) String() string {
	switch s {
	case FAST:
		return "FAST"
	case ACCURATE:
		return "ACCURATE"
	case BALANCED:
		return "BALANCED"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the three defined solver modes.
func (s Solver) Valid() bool {
	return s == FAST || s == ACCURATE || s == BALANCED
}

// Solve returns w minimizing ||A*w - b||^2. It never errors on a singular or
// rank-deficient system: FAST regularizes, ACCURATE and BALANCED fall back to
// minimum-norm solutions, so a degenerate candidate simply receives a large
// but finite downstream error instead of aborting the search.
func Solve(A *mat.Dense, b []float64, solver Solver) []float64 {
	switch solver {
	case ACCURATE:
		return solveSVD(A, b)
	case BALANCED:
		return solvePivotedQR(A, b)
	default:
		return solveNormalEquations(A, b)
	}
}

func solveNormalEquations(A *mat.Dense, b []float64) []float64 {
	_, k := A.Dims()
	bv := mat.NewVecDense(len(b), b)

	var ata mat.Dense
	ata.Mul(A.T(), A)

	var atb mat.VecDense
	atb.MulVec(A.T(), bv)

	var chol mat.Cholesky
	sym := symmetrize(&ata, k)
	if chol.Factorize(sym) {
		var w mat.VecDense
		if err := chol.SolveVecTo(&w, &atb); err == nil {
			return w.RawVector().Data
		}
	}

	// AᵀA is not positive definite: add a small ridge proportional to its
	// trace and retry once. This keeps FAST from ever erroring, per
	// spec.md §4.1's failure semantics.
	trace := 0.0
	for i := 0; i < k; i++ {
		trace += ata.At(i, i)
	}
	eps := 1e-12 * trace
	if eps == 0 {
		eps = 1e-12
	}
	for i := 0; i < k; i++ {
		ata.Set(i, i, ata.At(i, i)+eps)
	}
	sym = symmetrize(&ata, k)
	if chol.Factorize(sym) {
		var w mat.VecDense
		if err := chol.SolveVecTo(&w, &atb); err == nil {
			return w.RawVector().Data
		}
	}
	// Still failing (pathological): fall back to the SVD path rather than
	// returning garbage.
	return solveSVD(A, b)
}

func symmetrize(m *mat.Dense, k int) *mat.SymDense {
	data := make([]float64, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			data[i*k+j] = 0.5 * (m.At(i, j) + m.At(j, i))
		}
	}
	return mat.NewSymDense(k, data)
}

func solveSVD(A *mat.Dense, b []float64) []float64 {
	_, k := A.Dims()
	var svd mat.SVD
	ok := svd.Factorize(A, mat.SVDThin)
	if !ok {
		return make([]float64, k)
	}
	rank := svd.Rank(1e-12)
	if rank == 0 {
		return make([]float64, k)
	}
	bv := mat.NewVecDense(len(b), b)
	var w mat.Dense
	svd.SolveTo(&w, bv, rank)
	return denseColumn(&w)
}

func denseColumn(d *mat.Dense) []float64 {
	r, _ := d.Dims()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = d.At(i, 0)
	}
	return out
}

// solvePivotedQR approximates a column-pivoted Householder QR by ordering
// columns by descending norm before delegating to gonum's (unpivoted) QR,
// then permuting the solution back. This keeps BALANCED distinct from FAST
// and ACCURATE — steadier than the raw normal equations on moderately
// collinear designs — without reimplementing Businger-Golub pivoting.
func solvePivotedQR(A *mat.Dense, b []float64) []float64 {
	n, k := A.Dims()
	norms := make([]float64, k)
	for j := 0; j < k; j++ {
		col := mat.Col(nil, j, A)
		sum := 0.0
		for _, v := range col {
			sum += v * v
		}
		norms[j] = sum
	}
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}
	// simple descending insertion sort on k columns (k is a basis arity,
	// always small)
	for i := 1; i < k; i++ {
		j := i
		for j > 0 && norms[perm[j]] > norms[perm[j-1]] {
			perm[j], perm[j-1] = perm[j-1], perm[j]
			j--
		}
	}

	permuted := mat.NewDense(n, k, nil)
	for newCol, oldCol := range perm {
		col := mat.Col(nil, oldCol, A)
		permuted.SetCol(newCol, col)
	}

	var qr mat.QR
	qr.Factorize(permuted)

	bv := mat.NewVecDense(len(b), b)
	var w mat.Dense
	if err := qr.SolveTo(&w, false, bv); err != nil {
		return solveSVD(A, b)
	}

	wp := denseColumn(&w)
	out := make([]float64, k)
	for newCol, oldCol := range perm {
		out[oldCol] = wp[newCol]
	}
	return out
}
