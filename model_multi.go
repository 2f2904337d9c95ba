package gmdh

import (
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/persist"
)

// Multi grows its surviving combinations one original feature at a time,
// keeping the top k_best survivors per layer (spec.md §4.5).
type Multi struct {
	model *core.Model
}

func (m *Multi) Fit(X [][]float64, y []float64, p Params) (*Multi, error) {
	fitted, err := core.FitMulti(X, y, p)
	if err != nil {
		return nil, err
	}
	m.model = fitted
	return m, nil
}

func (m *Multi) Predict(X [][]float64, lags ...int) ([]float64, error) {
	return predictDispatch(m.model, X, lags...)
}

func (m *Multi) GetBestPolynomial() string {
	return getBestPolynomial(m.model)
}

func (m *Multi) Save(path string) error {
	return persist.Save(m.model, path)
}

func (m *Multi) Load(path string) error {
	loaded, err := persist.Load(path, core.Multi)
	if err != nil {
		return err
	}
	m.model = loaded
	return nil
}
