package gmdh

import "github.com/bauman-team/GMDH/internal/core"

// Params is the hyperparameter set shared by every model type (spec.md §6).
// Zero-value fields are filled in by each algorithm's DefaultXParams()
// constructor. Fit itself only clamps: KBest is raised to each algorithm's
// floor, PAverage <= 0 and NJobs <= 0 (except NJobs == -1) act as 1, and
// RandomState 0 selects a fixed internal split seed.
type Params = core.Params

func defaultCriterion() Criterion {
	c, _ := NewCriterion(REGULARITY, FAST)
	return c
}

// DefaultCombiParams returns spec.md §6's defaults for Combi: k_best is
// implicit and unused.
func DefaultCombiParams() Params {
	return Params{Criterion: defaultCriterion(), TestSize: 0.5, PAverage: 1, NJobs: 1}
}

// DefaultMultiParams returns spec.md §6's defaults for Multi (k_best=1).
func DefaultMultiParams() Params {
	return Params{Criterion: defaultCriterion(), KBest: 1, TestSize: 0.5, PAverage: 1, NJobs: 1}
}

// DefaultMiaParams returns spec.md §6's defaults for Mia (k_best=3,
// polynomial_type=QUADRATIC).
func DefaultMiaParams() Params {
	return Params{Criterion: defaultCriterion(), KBest: 3, PolynomialType: QUADRATIC, TestSize: 0.5, PAverage: 1, NJobs: 1}
}

// DefaultRiaParams returns spec.md §6's defaults for Ria (k_best=1,
// polynomial_type=QUADRATIC).
func DefaultRiaParams() Params {
	return Params{Criterion: defaultCriterion(), KBest: 1, PolynomialType: QUADRATIC, TestSize: 0.5, PAverage: 1, NJobs: 1}
}
