package gmdh

import (
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/persist"
)

// Ria pairs survivors with originals from layer 2 on, so originals never
// drop out of the candidate pool (spec.md §4.5).
type Ria struct {
	model *core.Model
}

func (m *Ria) Fit(X [][]float64, y []float64, p Params) (*Ria, error) {
	fitted, err := core.FitRia(X, y, p)
	if err != nil {
		return nil, err
	}
	m.model = fitted
	return m, nil
}

func (m *Ria) Predict(X [][]float64, lags ...int) ([]float64, error) {
	return predictDispatch(m.model, X, lags...)
}

func (m *Ria) GetBestPolynomial() string {
	return getBestPolynomial(m.model)
}

func (m *Ria) Save(path string) error {
	return persist.Save(m.model, path)
}

func (m *Ria) Load(path string) error {
	loaded, err := persist.Load(path, core.Ria)
	if err != nil {
		return err
	}
	m.model = loaded
	return nil
}
