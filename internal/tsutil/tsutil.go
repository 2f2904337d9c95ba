// Package tsutil implements the two boundary utilities of spec.md §4.8:
// time_series_transformation and split_data. These are the only non-core
// utilities in scope (spec.md §1) because they define data contracts used
// at the fit/predict boundary.
package tsutil

import (
	"math"
	"math/rand"

	"github.com/bauman-team/GMDH/internal/gmdherr"
)

// TimeSeriesTransformation returns (X,y) where row i of X is
// series[i:i+lags] and y[i] = series[i+lags], valid for
// 1 <= lags <= len(series)-1.
func TimeSeriesTransformation(series []float64, lags int) ([][]float64, []float64, error) {
	if len(series) == 0 {
		return nil, nil, gmdherr.New(gmdherr.InvalidArgument, "TimeSeriesTransformation", "series must not be empty")
	}
	if lags < 1 || lags > len(series)-1 {
		return nil, nil, gmdherr.New(gmdherr.InvalidArgument, "TimeSeriesTransformation", "lags must be in [1, %d], got %d", len(series)-1, lags)
	}
	if err := gmdherr.CheckFiniteVector(series, "series", "TimeSeriesTransformation"); err != nil {
		return nil, nil, err
	}

	n := len(series) - lags
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, lags)
		copy(row, series[i:i+lags])
		X[i] = row
		y[i] = series[i+lags]
	}
	return X, y, nil
}

// SplitData splits (X,y) into train/test sets. When shuffle is true, a
// deterministic permutation seeded by randomState (0 means nondeterministic)
// is applied before the contiguous partition; otherwise the split is a plain
// prefix/suffix cut.
func SplitData(X [][]float64, y []float64, testSize float64, shuffle bool, randomState int64) (xTrain, xTest [][]float64, yTrain, yTest []float64, err error) {
	if len(X) == 0 || len(y) == 0 {
		return nil, nil, nil, nil, gmdherr.New(gmdherr.InvalidArgument, "SplitData", "X and y must not be empty")
	}
	if len(X) != len(y) {
		return nil, nil, nil, nil, gmdherr.New(gmdherr.ShapeMismatch, "SplitData", "rows(X)=%d != len(y)=%d", len(X), len(y))
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, gmdherr.New(gmdherr.InvalidArgument, "SplitData", "test_size must be in (0,1), got %v", testSize)
	}
	if err := gmdherr.CheckFiniteMatrix(X, "X", "SplitData"); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := gmdherr.CheckFiniteVector(y, "y", "SplitData"); err != nil {
		return nil, nil, nil, nil, err
	}

	n := len(X)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		src := rand.New(randSource(randomState))
		src.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	nTest := int(math.Round(float64(n) * testSize))
	if nTest == 0 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}
	nTrain := n - nTest

	if nTrain == 0 || nTest == 0 {
		return nil, nil, nil, nil, gmdherr.New(gmdherr.InvalidArgument, "SplitData", "test_size=%v leaves an empty split for %d rows", testSize, n)
	}

	xTrain = make([][]float64, nTrain)
	yTrain = make([]float64, nTrain)
	for i := 0; i < nTrain; i++ {
		xTrain[i] = X[order[i]]
		yTrain[i] = y[order[i]]
	}
	xTest = make([][]float64, nTest)
	yTest = make([]float64, nTest)
	for i := 0; i < nTest; i++ {
		xTest[i] = X[order[nTrain+i]]
		yTest[i] = y[order[nTrain+i]]
	}
	return xTrain, xTest, yTrain, yTest, nil
}

// randSource returns a deterministic source for randomState != 0, and for
// randomState == 0 one seeded from the package-level global source (itself
// randomly seeded), matching "0 means nondeterministic" from spec.md §4.8.
func randSource(randomState int64) rand.Source {
	if randomState == 0 {
		return rand.NewSource(rand.Int63())
	}
	return rand.NewSource(randomState)
}
