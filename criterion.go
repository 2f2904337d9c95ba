package gmdh

import "github.com/bauman-team/GMDH/internal/criterion"

// Criterion is an opaque external-criterion configuration, built with
// NewCriterion, NewParallelCriterion or NewSequentialCriterion (spec.md §6).
type Criterion = criterion.Criterion

// NewCriterion builds a single-criterion configuration.
func NewCriterion(t CriterionType, solver Solver) (Criterion, error) {
	return criterion.NewSingle(t, solver)
}

// NewParallelCriterion builds a compound criterion scoring
// alpha*c1 + (1-alpha)*c2, alpha in (0,1).
func NewParallelCriterion(t1, t2 CriterionType, alpha float64, solver Solver) (Criterion, error) {
	return criterion.NewParallel(t1, t2, alpha, solver)
}

// NewSequentialCriterion builds a compound criterion that ranks by c1 then
// re-scores the top `top` candidates by c2 (top==0 means half the pool).
func NewSequentialCriterion(t1, t2 CriterionType, top int, solver Solver) (Criterion, error) {
	return criterion.NewSequential(t1, t2, top, solver)
}
