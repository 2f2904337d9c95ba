package gmdh

import (
	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/criterion"
	"github.com/bauman-team/GMDH/internal/linalg"
)

// Solver selects the linear least-squares method used to fit a candidate's
// coefficients (spec.md §4.1).
type Solver = linalg.Solver

const (
	FAST     = linalg.FAST
	ACCURATE = linalg.ACCURATE
	BALANCED = linalg.BALANCED
)

// PolynomialType selects the pair-expansion basis used by Mia and Ria
// (spec.md §3).
type PolynomialType = basis.PolynomialType

const (
	LINEAR     = basis.LINEAR
	LINEAR_COV = basis.LINEAR_COV
	QUADRATIC  = basis.QUADRATIC
)

// CriterionType enumerates the nine external criteria of spec.md §4.2.
type CriterionType = criterion.CriterionType

const (
	REGULARITY                 = criterion.REGULARITY
	SYM_REGULARITY             = criterion.SYM_REGULARITY
	STABILITY                  = criterion.STABILITY
	SYM_STABILITY              = criterion.SYM_STABILITY
	UNBIASED_OUTPUTS           = criterion.UNBIASED_OUTPUTS
	SYM_UNBIASED_OUTPUTS       = criterion.SYM_UNBIASED_OUTPUTS
	UNBIASED_COEFFS            = criterion.UNBIASED_COEFFS
	ABSOLUTE_NOISE_IMMUNITY    = criterion.ABSOLUTE_NOISE_IMMUNITY
	SYM_ABSOLUTE_NOISE_IMMUNITY = criterion.SYM_ABSOLUTE_NOISE_IMMUNITY
)
