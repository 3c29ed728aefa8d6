// Package pathseg defines core types, options, and sentinel errors
// for the pathseg subpackage of github.com/fringelab/beamkit.
package pathseg

import "errors"

// DefaultThreshold is the Euclidean distance above which two consecutive
// samples are considered discontinuous and force a stroke split.
const DefaultThreshold = 3.0

// Sentinel errors for pathseg operations.
var (
	// ErrBadThreshold indicates a user-supplied threshold that is zero,
	// negative, or NaN.
	ErrBadThreshold = errors.New("pathseg: threshold must be a positive number")
)

// Point is one recorded beam-path sample. It has no identity beyond its
// coordinates and is immutable once created.
type Point struct {
	X, Y float64
}

// Path is an ordered, non-empty sequence of Points representing one
// continuous stroke. Order is a traversal order, not a set.
type Path []Point

// Collection is an ordered sequence of Paths: the decomposition of one raw
// input stream into one or more disjoint continuous strokes. It is produced
// once, synchronously, and not mutated afterward.
type Collection []Path

// Options contains tunable parameters for segmentation.
type Options struct {
	// Threshold is the split distance. Consecutive samples farther apart
	// than this (strictly greater) start a new stroke.
	Threshold float64
}

// DefaultOptions returns an Options with the default settings:
// Threshold = DefaultThreshold (3.0 distance units).
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
	}
}

// inputKind discriminates the Input variants.
type inputKind int

const (
	kindEmpty inputKind = iota
	kindFlat
	kindSegmented
)

// Input is a tagged raw-input variant for Normalize. The recorder either
// hands over one flat sample stream (Flat) or a collection that was already
// segmented upstream (Segmented); the caller knows which and says so instead
// of having the shape sniffed at runtime.
//
// The zero Input is valid and normalizes to an empty Collection.
type Input struct {
	kind      inputKind
	flat      []Point
	segmented Collection
}

// Flat wraps one flat, ordered sample stream as an Input.
func Flat(points []Point) Input {
	return Input{kind: kindFlat, flat: points}
}

// Segmented wraps an already-segmented collection as an Input.
// Normalize returns it unchanged, element for element.
func Segmented(paths Collection) Input {
	return Input{kind: kindSegmented, segmented: paths}
}
