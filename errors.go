package gmdh

import "github.com/bauman-team/GMDH/internal/gmdherr"

// Error is the typed error every public operation returns on failure, per
// spec.md §7's three-way taxonomy. Use errors.As to recover it and branch on
// Kind.
type Error = gmdherr.Error

// Kind classifies an Error: InvalidArgument, ShapeMismatch or FileError.
type Kind = gmdherr.Kind

const (
	InvalidArgument = gmdherr.InvalidArgument
	ShapeMismatch   = gmdherr.ShapeMismatch
	FileError       = gmdherr.FileError
)
