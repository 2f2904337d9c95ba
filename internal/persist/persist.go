// Package persist saves and loads a fitted core.Model as JSON, per spec.md
// §4.7's round-trip guarantee and §6's wire format (`algorithm`,
// `polynomial_type`, `n_features`, `layers` as arrays of `{inputs, coeffs}`,
// `best_index`). The format mirrors invertedv-seafan's saveNode/Save/LoadNN
// shape (dnn.go): a small json-tagged record type marshaled with
// encoding/json, written whole with os.WriteFile and read back with
// os.ReadFile — no incremental or streaming I/O, since a fitted model is
// always small enough to hold entirely in memory.
package persist

import (
	"encoding/json"
	"os"

	"github.com/bauman-team/GMDH/internal/basis"
	"github.com/bauman-team/GMDH/internal/combination"
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/gmdherr"
)

// combinationRecord is one persisted Combination: its input index tuple,
// already in the global offset convention of spec.md §9, and its fitted
// coefficients. Kind is not persisted — it is implied by the model's
// algorithm and the record's input count (Combi/Multi are always
// multilinear; Mia/Ria records use the configured pair basis, except
// single-input records, which come from the multilinear single-variable
// fallback layer).
type combinationRecord struct {
	Inputs []int     `json:"inputs"`
	Coeffs []float64 `json:"coeffs"`
}

// modelRecord is the whole-model persisted document, matching spec.md §6's
// wire format exactly.
type modelRecord struct {
	Algorithm      string                `json:"algorithm"`
	PolynomialType int                   `json:"polynomial_type"`
	NFeatures      int                   `json:"n_features"`
	Layers         [][]combinationRecord `json:"layers"`
	BestIndex      int                   `json:"best_index"`
}

// Save writes m to path as indented JSON.
func Save(m *core.Model, path string) error {
	rec := toRecord(m)
	blob, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return gmdherr.Wrap(gmdherr.FileError, "persist.Save", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return gmdherr.Wrap(gmdherr.FileError, "persist.Save", err)
	}
	return nil
}

// Load reads a model previously written by Save, validating that its
// persisted algorithm tag matches wantAlgorithm (spec.md §4.7's "loading a
// file saved by a different algorithm is a file-error"). Missing, unreadable
// or structurally invalid files also raise a file-error.
func Load(path string, wantAlgorithm core.Algorithm) (*core.Model, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, gmdherr.Wrap(gmdherr.FileError, "persist.Load", err)
	}
	var rec modelRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return nil, gmdherr.Wrap(gmdherr.FileError, "persist.Load", err)
	}
	algo, err := core.ParseAlgorithm(rec.Algorithm)
	if err != nil {
		return nil, err
	}
	if algo != wantAlgorithm {
		return nil, gmdherr.New(gmdherr.FileError, "persist.Load", "file holds a %s model, not %s", algo, wantAlgorithm)
	}
	return fromRecord(rec, algo)
}

// comboKind returns the fixed Combination.Kind implied by an algorithm: pair
// basis for Mia/Ria, multilinear for Combi/Multi.
func comboKind(algo core.Algorithm) combination.Kind {
	if algo == core.Mia || algo == core.Ria {
		return combination.Pair
	}
	return combination.Multilinear
}

func toRecord(m *core.Model) modelRecord {
	layers := make([][]combinationRecord, len(m.Layers))
	for i, l := range m.Layers {
		combos := make([]combinationRecord, len(l.Combinations))
		for j, c := range l.Combinations {
			combos[j] = combinationRecord{Inputs: c.Inputs, Coeffs: c.Coeffs}
		}
		layers[i] = combos
	}
	bestIdx := 0
	if len(m.Layers) > 0 {
		bestIdx = m.BestComboIdx
	}
	return modelRecord{
		Algorithm:      m.Algorithm.String(),
		PolynomialType: int(m.PolyType),
		NFeatures:      m.NFeatures,
		Layers:         layers,
		BestIndex:      bestIdx,
	}
}

func fromRecord(rec modelRecord, algo core.Algorithm) (*core.Model, error) {
	if len(rec.Layers) == 0 {
		return nil, gmdherr.New(gmdherr.FileError, "persist.Load", "file holds a model with no layers")
	}
	kind := comboKind(algo)
	polyType := basis.PolynomialType(rec.PolynomialType)

	layers := make([]core.Layer, len(rec.Layers))
	for i, l := range rec.Layers {
		combos := make([]*combination.Combination, len(l))
		for j, c := range l {
			k := kind
			if k == combination.Pair && len(c.Inputs) == 1 {
				// core.fallbackSingleVariable's layer is multilinear even
				// in a Mia/Ria model.
				k = combination.Multilinear
			}
			combos[j] = &combination.Combination{
				Inputs:   c.Inputs,
				Kind:     k,
				PolyType: polyType,
				Coeffs:   c.Coeffs,
				GenIndex: j,
			}
		}
		layers[i] = core.Layer{Combinations: combos}
	}

	bestLayerIdx := len(layers) - 1
	if rec.BestIndex < 0 || rec.BestIndex >= len(layers[bestLayerIdx].Combinations) {
		return nil, gmdherr.New(gmdherr.FileError, "persist.Load", "best_index %d out of range for final layer", rec.BestIndex)
	}

	return &core.Model{
		Algorithm:    algo,
		PolyType:     polyType,
		NFeatures:    rec.NFeatures,
		Layers:       layers,
		BestLayerIdx: bestLayerIdx,
		BestComboIdx: rec.BestIndex,
	}, nil
}
