package pathseg

import "math"

// Segment — beam-path stroke segmentation
//
// Description:
//
//	Segment partitions one flat, ordered stream of 2-D samples into one or
//	more continuous strokes. A stroke boundary is inserted between two
//	consecutive samples whenever their Euclidean distance is strictly
//	greater than the threshold; nothing else about the input changes.
//
// Algorithm Outline:
//  1. Resolve the threshold: nil opts → DefaultThreshold; otherwise
//     validate opts.Threshold (> 0, not NaN) or fail with ErrBadThreshold.
//  2. Empty or nil input → empty Collection.
//  3. Seed the current stroke with points[0]. For each subsequent sample,
//     measure the distance to its immediate predecessor in the ORIGINAL
//     input order (not the accumulated stroke):
//     distance >  threshold → close the current stroke, open a new one
//     distance ≤  threshold → append the sample to the current stroke
//  4. Close and append the final stroke.
//  5. If the scan produced exactly one stroke, return the original input
//     wrapped as a single-Path Collection — the caller gets back its own
//     slice, not a rebuilt equivalent.
//
// Guarantees:
//   - Concatenating the returned Paths, in order, reproduces the input
//     exactly: segmentation only inserts boundaries.
//   - Every returned Path is non-empty, and every consecutive pair inside
//     a Path is within the threshold.
//   - A distance exactly equal to the threshold does NOT split.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(N) worst case; O(1) extra when no split occurs
//
// Errors:
//   - ErrBadThreshold — opts.Threshold ≤ 0 or NaN. The nil-opts default
//     path never errors; malformed input degrades to an empty result.
func Segment(points []Point, opts *Options) (Collection, error) {
	threshold, err := resolveThreshold(opts)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return Collection{}, nil
	}

	out := make(Collection, 0, 1)
	current := Path{points[0]}
	for i := 1; i < len(points); i++ {
		if dist(points[i-1], points[i]) > threshold {
			out = append(out, current)
			current = Path{points[i]}
		} else {
			current = append(current, points[i])
		}
	}
	out = append(out, current)

	// No split: hand back the caller's own slice, not the accumulation.
	if len(out) == 1 {
		return Collection{points}, nil
	}

	return out, nil
}

// Normalize resolves a tagged raw Input into a Collection.
//
// Flat inputs are segmented with Segment; Segmented inputs pass through
// unchanged, element for element; the zero Input yields an empty Collection.
//
// Example:
//
//	out, err := pathseg.Normalize(pathseg.Flat(samples), nil)
func Normalize(in Input, opts *Options) (Collection, error) {
	switch in.kind {
	case kindFlat:
		return Segment(in.flat, opts)
	case kindSegmented:
		return in.segmented, nil
	default:
		if _, err := resolveThreshold(opts); err != nil {
			return nil, err
		}

		return Collection{}, nil
	}
}

// resolveThreshold applies the default or validates a user-supplied value.
func resolveThreshold(opts *Options) (float64, error) {
	if opts == nil {
		return DefaultThreshold, nil
	}
	if opts.Threshold <= 0 || math.IsNaN(opts.Threshold) {
		return 0, ErrBadThreshold
	}

	return opts.Threshold, nil
}

// dist returns the Euclidean distance between two samples.
func dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
