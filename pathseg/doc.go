// Package pathseg partitions a recorded 2-D beam path into continuous
// strokes, splitting wherever two consecutive samples lie farther apart
// than a distance threshold.
//
// 🚀 What is pathseg?
//
//	Interferometer path recorders emit one flat stream of (x, y) samples.
//	When the beam is blocked or the stage jumps, consecutive samples land
//	far apart even though they belong to different strokes.  pathseg
//	restores the stroke structure:
//	  • scan consecutive samples in input order
//	  • a Euclidean jump strictly greater than the threshold closes the
//	    current stroke and opens a new one at the jump target
//	  • everything else stays exactly where it was
//
// ✨ Key guarantees:
//   - lossless: concatenating the output strokes, in order, reproduces the
//     input sample-for-sample — no drops, reorders, or duplicates
//   - every output stroke is non-empty and internally continuous (all
//     consecutive distances ≤ threshold)
//   - a distance exactly equal to the threshold does NOT split
//   - the unsplit case returns the caller's own slice, not a rebuilt copy
//   - pure and deterministic: no I/O, no shared state, never panics
//
// ⚙️ Usage:
//
//	import "github.com/fringelab/beamkit/pathseg"
//
//	points := []pathseg.Point{{1, 3}, {3, 3}, {9, 4}, {3, 3}}
//
//	strokes, err := pathseg.Segment(points, nil) // nil → DefaultThreshold
//	if err != nil {
//	  // only reachable with a user-supplied bad Options.Threshold
//	}
//	for _, s := range strokes {
//	  fmt.Println(len(s), "points")
//	}
//
// Already-segmented input passes through Normalize unchanged:
//
//	out, _ := pathseg.Normalize(pathseg.Segmented(strokes), nil)
//
// Performance:
//
//   - Time:   O(N) over the input samples
//   - Memory: O(N) for the output collection (O(1) extra when no split occurs)
//
// See example_test.go for worked scenarios.
package pathseg
