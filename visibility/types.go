// Package visibility defines sentinel errors for the visibility subpackage
// of github.com/fringelab/beamkit.
package visibility

import "errors"

// Sentinel errors for visibility calculations.
var (
	// ErrNegativeIntensity indicates a beam or extremum intensity below zero.
	ErrNegativeIntensity = errors.New("visibility: intensity must be non-negative")
	// ErrNoLight indicates both inputs are zero: no fringes, no contrast.
	ErrNoLight = errors.New("visibility: at least one intensity must be positive")
	// ErrExtremaOrder indicates Imax < Imin (swapped or corrupt extrema).
	ErrExtremaOrder = errors.New("visibility: Imax must be at least Imin")
	// ErrBadSampleCount indicates a non-positive scan sample count.
	ErrBadSampleCount = errors.New("visibility: sample count must be positive")
)
