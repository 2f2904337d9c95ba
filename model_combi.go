package gmdh

import (
	"github.com/bauman-team/GMDH/internal/core"
	"github.com/bauman-team/GMDH/internal/gmdherr"
	"github.com/bauman-team/GMDH/internal/persist"
	"github.com/bauman-team/GMDH/internal/predict"
)

// Combi searches every L-subset of the original features, keeping only the
// single best combination per layer (spec.md §4.5).
type Combi struct {
	model *core.Model
}

// Fit trains m on (X, y) with the given hyperparameters and returns m.
func (m *Combi) Fit(X [][]float64, y []float64, p Params) (*Combi, error) {
	fitted, err := core.FitCombi(X, y, p)
	if err != nil {
		return nil, err
	}
	m.model = fitted
	return m, nil
}

// Predict evaluates m on X. With lags omitted or 0 it predicts each row of X
// independently; with lags=h>0 it treats X's last row as a lag window and
// recursively forecasts h steps (spec.md §4.6).
func (m *Combi) Predict(X [][]float64, lags ...int) ([]float64, error) {
	return predictDispatch(m.model, X, lags...)
}

// GetBestPolynomial renders m's best combination as a human-readable string
// (spec.md §6).
func (m *Combi) GetBestPolynomial() string {
	return getBestPolynomial(m.model)
}

// Save writes m to path.
func (m *Combi) Save(path string) error {
	return persist.Save(m.model, path)
}

// Load replaces m's state with the model persisted at path, failing if path
// does not hold a Combi model.
func (m *Combi) Load(path string) error {
	loaded, err := persist.Load(path, core.Combi)
	if err != nil {
		return err
	}
	m.model = loaded
	return nil
}

func predictDispatch(model *core.Model, X [][]float64, lags ...int) ([]float64, error) {
	if len(X) == 0 {
		return nil, gmdherr.New(gmdherr.InvalidArgument, "Predict", "X has no rows")
	}
	h := 0
	if len(lags) > 0 {
		h = lags[0]
	}
	if h <= 0 {
		return predict.Predict(model, X)
	}
	window := X[len(X)-1]
	return predict.ForecastTimeSeries(model, window, h)
}
