// Package core assembles the four ModelCore variants of spec.md §4.5 atop
// the shared LayerDriver (internal/layer): Combi, Multi, Mia and Ria differ
// only in candidate generation, survivor semantics and how a layer's output
// feeds the next layer's variable pool, exactly as spec.md §2 describes.
package core

import (
	"github.com/sirupsen/logrus"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/combination"
	"github.com/bauman-team/GMDH/internal/criterion"
	"github.com/bauman-team/GMDH/internal/gmdherr"
	"github.com/bauman-team/GMDH/internal/layer"
)

// Algorithm tags a fitted Model for persistence and dispatch.
type Algorithm int

const (
	Combi Algorithm = iota
	Multi
	Mia
	Ria
)

func (a Algorithm) String() string {
	switch a {
	case Combi:
		return "COMBI"
	case Multi:
		return "MULTI"
	case Mia:
		return "MIA"
	case Ria:
		return "RIA"
	default:
		return "UNKNOWN"
	}
}

// ParseAlgorithm resolves a persisted algorithm tag back to an Algorithm.
func ParseAlgorithm(tag string) (Algorithm, error) {
	switch tag {
	case "COMBI":
		return Combi, nil
	case "MULTI":
		return Multi, nil
	case "MIA":
		return Mia, nil
	case "RIA":
		return Ria, nil
	default:
		return 0, gmdherr.New(gmdherr.FileError, "ParseAlgorithm", "unknown algorithm tag %q", tag)
	}
}

// Layer is one generation of survivors plus its aggregate error.
type Layer struct {
	Combinations []*combination.Combination
	Error        float64
}

// Model is the fitted polynomial chain: an algorithm tag, basis type (for
// Mia/Ria), feature count, the ordered layer chain and a pointer to the
// single best terminal Combination.
type Model struct {
	Algorithm    Algorithm
	PolyType     basis.PolynomialType // meaningful for Mia/Ria only
	NFeatures    int
	Layers       []Layer
	BestLayerIdx int
	BestComboIdx int
}

// Best returns the model's single best terminal Combination.
func (m *Model) Best() *combination.Combination {
	return m.Layers[m.BestLayerIdx].Combinations[m.BestComboIdx]
}

// Params is the hyperparameter set of spec.md §6, shared by all four
// algorithms (some fields are algorithm-specific and ignored otherwise).
type Params struct {
	Criterion      criterion.Criterion
	KBest          int
	PolynomialType basis.PolynomialType
	TestSize       float64
	PAverage       int
	NJobs          int
	Verbose        bool
	Limit          float64
	RandomState    int64
	Log            *logrus.Logger
}

// maxLayers is the hard safety bound of spec.md §4.4 step 6 ("a hard layer
// cap is reached (implementation-defined safety bound)").
const maxLayers = 50

func (p Params) driver() *layer.Driver {
	return &layer.Driver{
		Criterion: p.Criterion,
		NJobs:     p.NJobs,
		PAverage:  p.PAverage,
		Verbose:   p.Verbose,
		Log:       p.Log,
	}
}
