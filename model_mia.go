package gmdh

import (
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/persist"
)

// Mia pairs survivors against survivors only from layer 2 on — the original
// features drop out of the pool after layer 1 (spec.md §4.5).
type Mia struct {
	model *core.Model
}

func (m *Mia) Fit(X [][]float64, y []float64, p Params) (*Mia, error) {
	fitted, err := core.FitMia(X, y, p)
	if err != nil {
		return nil, err
	}
	m.model = fitted
	return m, nil
}

func (m *Mia) Predict(X [][]float64, lags ...int) ([]float64, error) {
	return predictDispatch(m.model, X, lags...)
}

func (m *Mia) GetBestPolynomial() string {
	return getBestPolynomial(m.model)
}

func (m *Mia) Save(path string) error {
	return persist.Save(m.model, path)
}

func (m *Mia) Load(path string) error {
	loaded, err := persist.Load(path, core.Mia)
	if err != nil {
		return err
	}
	m.model = loaded
	return nil
}
