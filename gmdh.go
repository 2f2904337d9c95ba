// Package gmdh is the public surface of the GMDH regression engine: four
// inductive model types (Combi, Multi, Mia, Ria), the criterion/solver/basis
// enumerations they're configured with, and the two data-boundary utilities
// (TimeSeriesTransformation, SplitData). Every exported type here is a thin
// wrapper over internal/core, internal/criterion, internal/linalg,
// internal/basis, internal/predict and internal/persist — this file only
// documents the package as a whole; see criterion.go, params.go, polynomial.go,
// model_*.go and errors.go for the implementation.
package gmdh
