// Package criterion implements the external-criterion library of spec.md
// §4.2: the nine single criteria plus the two compound forms (parallel,
// sequential). Fitting inside a criterion evaluation reuses internal/linalg
// the same way the teacher's OLSEstimator.Estimate reused gonum's normal
// equations/SVD path, just parameterized by a caller-supplied Fitter instead
// of a fixed VAR design.
package criterion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/bauman-team/GMDH/internal/gmdherr"
	"github.com/bauman-team/GMDH/internal/linalg"
)

// CriterionType enumerates the nine external criteria of spec.md §4.2.
type CriterionType int

const (
	REGULARITY CriterionType = iota
	SYM_REGULARITY
	STABILITY
	SYM_STABILITY
	UNBIASED_OUTPUTS
	SYM_UNBIASED_OUTPUTS
	UNBIASED_COEFFS
	ABSOLUTE_NOISE_IMMUNITY
	SYM_ABSOLUTE_NOISE_IMMUNITY
)

func (c CriterionType) String() string {
	switch c {
	case REGULARITY:
		return "REGULARITY"
	case SYM_REGULARITY:
		return "SYM_REGULARITY"
	case STABILITY:
		return "STABILITY"
	case SYM_STABILITY:
		return "SYM_STABILITY"
	case UNBIASED_OUTPUTS:
		return "UNBIASED_OUTPUTS"
	case SYM_UNBIASED_OUTPUTS:
		return "SYM_UNBIASED_OUTPUTS"
	case UNBIASED_COEFFS:
		return "UNBIASED_COEFFS"
	case ABSOLUTE_NOISE_IMMUNITY:
		return "ABSOLUTE_NOISE_IMMUNITY"
	case SYM_ABSOLUTE_NOISE_IMMUNITY:
		return "SYM_ABSOLUTE_NOISE_IMMUNITY"
	default:
		return "UNKNOWN"
	}
}

func (c CriterionType) valid() bool {
	return c >= REGULARITY && c <= SYM_ABSOLUTE_NOISE_IMMUNITY
}

// Expander maps raw candidate input columns to a design matrix; it is the
// basis expansion (pair or multilinear) chosen by the caller's algorithm.
type Expander func(X *mat.Dense) *mat.Dense

// Fitter bundles the basis expansion with a solver mode, giving criterion
// evaluation everything it needs to fit coefficients on any split.
type Fitter struct {
	Expand Expander
	Solver linalg.Solver
}

// Fit returns the coefficients minimizing ||Expand(X)*w - y||^2.
func (f Fitter) Fit(X *mat.Dense, y []float64) []float64 {
	design := f.Expand(X)
	return linalg.Solve(design, y, f.Solver)
}

// Predict evaluates w on Expand(X).
func (f Fitter) Predict(X *mat.Dense, w []float64) []float64 {
	design := f.Expand(X)
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

// Split holds the internal train/test partition a candidate is scored
// against, in raw (pre-expansion) column form.
type Split struct {
	Xtr, Xte *mat.Dense
	Ytr, Yte []float64
}

func mse(pred, actual []float64) float64 {
	diffs := make([]float64, len(pred))
	for i := range pred {
		d := pred[i] - actual[i]
		diffs[i] = d * d
	}
	return stat.Mean(diffs, nil)
}

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

func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func sqDiffSum(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Evaluate scores a single CriterionType on a fitted candidate's split,
// exactly per the formulas of spec.md §4.2.
func Evaluate(t CriterionType, f Fitter, sp Split) (float64, error) {
	wTr := f.Fit(sp.Xtr, sp.Ytr)
	wTe := f.Fit(sp.Xte, sp.Yte)

	switch t {
	case REGULARITY:
		return mse(f.Predict(sp.Xte, wTr), sp.Yte), nil

	case SYM_REGULARITY:
		a := mse(f.Predict(sp.Xte, wTr), sp.Yte)
		b := mse(f.Predict(sp.Xtr, wTe), sp.Ytr)
		return a + b, nil

	case STABILITY:
		Xall := stackRows(sp.Xtr, sp.Xte)
		Yall := concat(sp.Ytr, sp.Yte)
		return mse(f.Predict(Xall, wTr), Yall), nil

	case SYM_STABILITY:
		Xall := stackRows(sp.Xtr, sp.Xte)
		Yall := concat(sp.Ytr, sp.Yte)
		a := mse(f.Predict(Xall, wTr), Yall)
		b := mse(f.Predict(Xall, wTe), Yall)
		return a + b, nil

	case UNBIASED_OUTPUTS:
		return mse(f.Predict(sp.Xte, wTr), f.Predict(sp.Xte, wTe)), nil

	case SYM_UNBIASED_OUTPUTS:
		a := mse(f.Predict(sp.Xte, wTr), f.Predict(sp.Xte, wTe))
		b := mse(f.Predict(sp.Xtr, wTr), f.Predict(sp.Xtr, wTe))
		return a + b, nil

	case UNBIASED_COEFFS:
		return sqDiffSum(wTr, wTe), nil

	case ABSOLUTE_NOISE_IMMUNITY:
		return absoluteNoiseImmunity(f, sp.Xtr, sp.Ytr, sp.Xte, sp.Yte), nil

	case SYM_ABSOLUTE_NOISE_IMMUNITY:
		a := absoluteNoiseImmunity(f, sp.Xtr, sp.Ytr, sp.Xte, sp.Yte)
		b := absoluteNoiseImmunity(f, sp.Xte, sp.Yte, sp.Xtr, sp.Ytr)
		return a + b, nil

	default:
		return 0, gmdherr.New(gmdherr.InvalidArgument, "criterion.Evaluate", "unknown criterion type %v", t)
	}
}

// absoluteNoiseImmunity computes the ABSOLUTE_NOISE_IMMUNITY term for the
// (train, test) ordering given; SYM_ABSOLUTE_NOISE_IMMUNITY adds the swapped
// call.
func absoluteNoiseImmunity(f Fitter, Xtr *mat.Dense, ytr []float64, Xte *mat.Dense, yte []float64) float64 {
	wTr := f.Fit(Xtr, ytr)
	wTe := f.Fit(Xte, yte)
	Xall := stackRows(Xtr, Xte)
	Yall := concat(ytr, yte)
	wAll := f.Fit(Xall, Yall)

	predTrOnTe := f.Predict(Xte, wTr)
	predTeOnTe := f.Predict(Xte, wTe)
	predAllOnTe := f.Predict(Xte, wAll)

	sum := 0.0
	n := len(yte)
	for i := 0; i < n; i++ {
		sum += (predTrOnTe[i] - predTeOnTe[i]) * (predAllOnTe[i] - predTrOnTe[i])
	}
	if n == 0 {
		return 0
	}
	v := sum / float64(n)
	if v < 0 {
		v = -v
	}
	return v
}

// Kind tags which of the three public Criterion shapes a config represents.
type Kind int

const (
	KindSingle Kind = iota
	KindParallel
	KindSequential
)

// Criterion is the opaque configuration behind the public Single/Parallel/
// Sequential criterion constructors (spec.md §6).
type Criterion struct {
	Kind   Kind
	T1, T2 CriterionType
	Alpha  float64
	Top    int
	Solver linalg.Solver
}

// NewSingle builds a plain single-criterion configuration.
func NewSingle(t CriterionType, solver linalg.Solver) (Criterion, error) {
	if !t.valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewSingle", "unknown criterion type %v", t)
	}
	if !solver.Valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewSingle", "unknown solver %v", solver)
	}
	return Criterion{Kind: KindSingle, T1: t, Solver: solver}, nil
}

// NewParallel builds a ParallelCriterion: score = alpha*c1 + (1-alpha)*c2.
func NewParallel(t1, t2 CriterionType, alpha float64, solver linalg.Solver) (Criterion, error) {
	if !t1.valid() || !t2.valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewParallel", "unknown criterion type")
	}
	if alpha <= 0 || alpha >= 1 {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewParallel", "alpha must be in (0,1), got %v", alpha)
	}
	if !solver.Valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewParallel", "unknown solver %v", solver)
	}
	return Criterion{Kind: KindParallel, T1: t1, T2: t2, Alpha: alpha, Solver: solver}, nil
}

// NewSequential builds a SequentialCriterion: stage 1 ranks by c1, stage 2
// re-scores the top `top` candidates (half the pool when top==0) by c2.
func NewSequential(t1, t2 CriterionType, top int, solver linalg.Solver) (Criterion, error) {
	if !t1.valid() || !t2.valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewSequential", "unknown criterion type")
	}
	if top < 0 {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewSequential", "top must be >= 0, got %v", top)
	}
	if !solver.Valid() {
		return Criterion{}, gmdherr.New(gmdherr.InvalidArgument, "criterion.NewSequential", "unknown solver %v", solver)
	}
	return Criterion{Kind: KindSequential, T1: t1, T2: t2, Top: top, Solver: solver}, nil
}

// Stage1 returns the criterion type used for a candidate's first-pass score:
// the sole type for Single, c1 for Sequential. Parallel has no separate
// stage1 type — ScoreParallel computes both at once.
func (c Criterion) Stage1() CriterionType { return c.T1 }

// ScoreParallel computes alpha*c1 + (1-alpha)*c2 for a KindParallel
// criterion.
func (c Criterion) ScoreParallel(f Fitter, sp Split) (float64, error) {
	s1, err := Evaluate(c.T1, f, sp)
	if err != nil {
		return 0, err
	}
	s2, err := Evaluate(c.T2, f, sp)
	if err != nil {
		return 0, err
	}
	return c.Alpha*s1 + (1-c.Alpha)*s2, nil
}

// ResolvedTop returns the effective stage-2 pool size for a sequential
// criterion given the candidate count n ("if 0, ~half").
func (c Criterion) ResolvedTop(n int) int {
	top := c.Top
	if top == 0 {
		top = (n + 1) / 2
	}
	if top > n {
		top = n
	}
	return top
}

// String renders a short human-readable tag, used by progress logging.
func (c Criterion) String() string {
	switch c.Kind {
	case KindSingle:
		return c.T1.String()
	case KindParallel:
		return fmt.Sprintf("Parallel(%s,%s,alpha=%.3f)", c.T1, c.T2, c.Alpha)
	case KindSequential:
		return fmt.Sprintf("Sequential(%s,%s,top=%d)", c.T1, c.T2, c.Top)
	default:
		return "UNKNOWN"
	}
}
