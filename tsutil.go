package gmdh

import "github.com/bauman-team/GMDH/internal/tsutil"

// TimeSeriesTransformation returns (X, y) where row i of X is
// series[i:i+lags] and y[i] = series[i+lags] (spec.md §4.8).
func TimeSeriesTransformation(series []float64, lags int) ([][]float64, []float64, error) {
	return tsutil.TimeSeriesTransformation(series, lags)
}

// SplitData splits (X, y) into train/test sets, shuffling with randomState
// first when shuffle is true (randomState=0 means nondeterministic)
// (spec.md §4.8).
func SplitData(X [][]float64, y []float64, testSize float64, shuffle bool, randomState int64) (xTrain, xTest [][]float64, yTrain, yTest []float64, err error) {
	return tsutil.SplitData(X, y, testSize, shuffle, randomState)
}
