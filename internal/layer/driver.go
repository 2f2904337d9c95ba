// Package layer implements the LayerDriver of spec.md §4.4: fit every
// candidate of one layer in parallel, rank them and compute the layer's mean
// top-p error; survivor selection and the decision to extend are made by the
// callers in internal/core. Parallel fan-out uses
// golang.org/x/sync/errgroup bounded by n_jobs, the same "bounded worker
// pool, join once" shape recommended by spec.md §9 and carried by the
// pack's SiwaNetwork-ShiwaTime dependency footprint.
package layer

import (
	"context"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/combination"
	"github.com/bauman-team/GMDH/internal/criterion"
)

// CandidateSpec names a candidate's columns and basis. PoolInputs indexes
// the layer's Pool (for slicing raw columns to fit against) while
// StorageInputs is recorded on the resulting Combination using the global
// offset convention of spec.md §9 (0..F-1 = originals, F.. = previous
// layer's combination outputs), so later prediction/persistence can resolve
// it independently of how this layer happened to assemble its pool. For
// Combi/Multi and layer 1 of Mia/Ria the two coincide.
type CandidateSpec struct {
	PoolInputs    []int
	StorageInputs []int
	Kind          combination.Kind
	PolyType      basis.PolynomialType
}

// Result is one fitted, scored layer: all of its Combinations, sorted by
// final score, and the layer's aggregate error.
type Result struct {
	Candidates []*combination.Combination // ALL candidates, sorted ascending by final score
	LayerError float64                    // mean of the smallest PAverage errors among Candidates
}

// Driver fits and scores one layer's candidate batch.
type Driver struct {
	Criterion criterion.Criterion
	NJobs     int
	PAverage  int
	Verbose   bool
	Log       *logrus.Logger
}

type work struct {
	comb   *combination.Combination
	fitter criterion.Fitter
	split  criterion.Split
}

// Evaluate fits every candidate spec against pool, scores it with the
// configured criterion, and returns all candidates sorted by final error
// (ascending, tie-broken by generation order). Coefficients on every
// returned Combination are refit on the full internal training data
// (Xtr ∪ Xte), per SPEC_FULL.md §4.9's resolution of the final-coefficient
// open question.
func (d *Driver) Evaluate(layerIndex int, specs []CandidateSpec, pool Pool) (Result, error) {
	works := make([]*work, len(specs))
	for i, spec := range specs {
		comb := &combination.Combination{
			Inputs:   spec.StorageInputs,
			Kind:     spec.Kind,
			PolyType: spec.PolyType,
			GenIndex: i,
		}
		trCols, teCols := pool.Columns(spec.PoolInputs)
		split := criterion.Split{
			Xtr: columnsToMatrix(trCols),
			Xte: columnsToMatrix(teCols),
			Ytr: pool.Ytr,
			Yte: pool.Yte,
		}
		fitter := criterion.Fitter{Expand: comb.ExpandMatrix, Solver: d.Criterion.Solver}
		works[i] = &work{comb: comb, fitter: fitter, split: split}
	}

	if err := d.scorePass(works, d.Criterion.Stage1()); err != nil {
		return Result{}, err
	}

	combs := make([]*combination.Combination, len(works))
	for i, w := range works {
		combs[i] = w.comb
	}

	switch d.Criterion.Kind {
	case criterion.KindParallel:
		if err := d.scoreParallelPass(works); err != nil {
			return Result{}, err
		}
		sort.Stable(combination.ByError(combs))
	case criterion.KindSequential:
		sort.Stable(combination.ByError(combs))
		top := d.Criterion.ResolvedTop(len(works))
		if err := d.rescoreStage2(works, combs[:top]); err != nil {
			return Result{}, err
		}
		sort.Stable(combination.ByError(combs[:top]))
	default:
		sort.Stable(combination.ByError(combs))
	}

	if err := d.refitFinalCoefficients(works); err != nil {
		return Result{}, err
	}

	layerErr := meanTopP(combs, d.PAverage)

	if d.Verbose && d.Log != nil {
		d.Log.WithFields(logrus.Fields{
			"layer":            layerIndex,
			"candidates":       len(combs),
			"best_error":       combs[0].Error,
			"mean_top_p_error": layerErr,
		}).Info("gmdh: layer evaluated")
	}

	return Result{Candidates: combs, LayerError: layerErr}, nil
}

func (d *Driver) scorePass(works []*work, t criterion.CriterionType) error {
	return d.forEach(works, func(w *work) error {
		score, err := criterion.Evaluate(t, w.fitter, w.split)
		if err != nil {
			return err
		}
		w.comb.Error = score
		return nil
	})
}

func (d *Driver) scoreParallelPass(works []*work) error {
	return d.forEach(works, func(w *work) error {
		score, err := d.Criterion.ScoreParallel(w.fitter, w.split)
		if err != nil {
			return err
		}
		w.comb.Error = score
		return nil
	})
}

func (d *Driver) rescoreStage2(all []*work, top []*combination.Combination) error {
	topSet := make(map[*combination.Combination]*work, len(top))
	for _, w := range all {
		topSet[w.comb] = w
	}
	subset := make([]*work, 0, len(top))
	for _, c := range top {
		subset = append(subset, topSet[c])
	}
	return d.forEach(subset, func(w *work) error {
		score, err := criterion.Evaluate(d.Criterion.T2, w.fitter, w.split)
		if err != nil {
			return err
		}
		w.comb.Error = score
		return nil
	})
}

func (d *Driver) refitFinalCoefficients(works []*work) error {
	return d.forEach(works, func(w *work) error {
		Xall := stackRows(w.split.Xtr, w.split.Xte)
		Yall := append(append([]float64{}, w.split.Ytr...), w.split.Yte...)
		w.comb.Coeffs = w.fitter.Fit(Xall, Yall)
		return nil
	})
}

// forEach runs fn over works on a bounded worker pool sized by d.NJobs:
// -1 uses all hardware threads, 1 forces sequential execution, any other
// positive value caps concurrency at that count. Each work item only ever
// writes into fields it owns, so no synchronization is needed beyond the
// errgroup join.
func (d *Driver) forEach(works []*work, fn func(*work) error) error {
	limit := d.NJobs
	if limit == -1 {
		limit = runtime.NumCPU()
	}
	if limit <= 0 {
		limit = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(limit)
	for _, w := range works {
		w := w
		g.Go(func() error {
			return fn(w)
		})
	}
	return g.Wait()
}

func meanTopP(sorted []*combination.Combination, pAverage int) float64 {
	n := pAverage
	if n > len(sorted) {
		n = len(sorted)
	}
	if n <= 0 {
		n = 1
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += sorted[i].Error
	}
	return sum / float64(n)
}
