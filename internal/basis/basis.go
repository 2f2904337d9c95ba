// Package basis implements the feature-expansion rules of spec.md §3: the
// fixed pair bases used by Mia/Ria (LINEAR, LINEAR_COV, QUADRATIC) and the
// multilinear expansion used by Combi/Multi. It generalizes the teacher's
// inline design-matrix construction (functions.go's Estimate, which built X
// column-by-column for a fixed VAR lag structure) into a reusable expansion
// keyed by basis type and arity.
package basis

import "gonum.org/v1/gonum/mat"

// PolynomialType selects the pair-expansion rule used by Mia and Ria.
type PolynomialType int

const (
	LINEAR PolynomialType = iota
	LINEAR_COV
	QUADRATIC
)

func (p PolynomialType) String() string {
	switch p {
	case LINEAR:
		return "LINEAR"
	case LINEAR_COV:
		return "LINEAR_COV"
	case QUADRATIC:
		return "QUADRATIC"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether p is one of the three defined polynomial types.
func (p PolynomialType) Valid() bool {
	return p == LINEAR || p == LINEAR_COV || p == QUADRATIC
}

// Arity returns the coefficient count of the expanded basis, including the
// leading constant term.
func (p PolynomialType) Arity() int {
	switch p {
	case LINEAR:
		return 3
	case LINEAR_COV:
		return 4
	case QUADRATIC:
		return 6
	default:
		return 0
	}
}

// ExpandPair builds the n x Arity(p) design matrix from two raw columns u, v
// (n samples each) per spec.md §3:
//
//	LINEAR:     [1, u, v]
//	LINEAR_COV: [1, u, v, u*v]
//	QUADRATIC:  [1, u, v, u*v, u^2, v^2]
func ExpandPair(p PolynomialType, u, v []float64) *mat.Dense {
	n := len(u)
	k := p.Arity()
	data := make([]float64, n*k)
	for i := 0; i < n; i++ {
		row := data[i*k : i*k+k]
		row[0] = 1
		row[1] = u[i]
		row[2] = v[i]
		switch p {
		case LINEAR_COV:
			row[3] = u[i] * v[i]
		case QUADRATIC:
			row[3] = u[i] * v[i]
			row[4] = u[i] * u[i]
			row[5] = v[i] * v[i]
		}
	}
	return mat.NewDense(n, k, data)
}

// ExpandMultilinear builds the n x (k+1) design matrix [1, x_i1, ..., x_ik]
// used by Combi and Multi, from the k chosen raw columns.
func ExpandMultilinear(cols [][]float64) *mat.Dense {
	k := len(cols)
	if k == 0 {
		return mat.NewDense(0, 1, nil)
	}
	n := len(cols[0])
	data := make([]float64, n*(k+1))
	for i := 0; i < n; i++ {
		row := data[i*(k+1) : i*(k+1)+k+1]
		row[0] = 1
		for j, col := range cols {
			row[j+1] = col[i]
		}
	}
	return mat.NewDense(n, k+1, data)
}

// EvalPair evaluates a fitted pair combination w (length Arity(p)) on raw
// columns u, v and returns the predicted values.
func EvalPair(p PolynomialType, w []float64, u, v []float64) []float64 {
	design := ExpandPair(p, u, v)
	return evalDesign(design, w)
}

// EvalMultilinear evaluates a fitted multilinear combination w (length
// len(cols)+1) on the raw columns and returns the predicted values.
func EvalMultilinear(w []float64, cols [][]float64) []float64 {
	design := ExpandMultilinear(cols)
	return evalDesign(design, w)
}

func evalDesign(design *mat.Dense, w []float64) []float64 {
	n, k := design.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < k; j++ {
			sum += design.At(i, j) * w[j]
		}
		out[i] = sum
	}
	return out
}
