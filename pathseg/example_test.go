package pathseg_test

import (
	"fmt"

	"github.com/fringelab/beamkit/pathseg"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSegment
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A recorder captures 12 samples of a beam path. Between samples 6 and 7
//	the beam was blocked, so the stage jumped from (9,4) to (3,3) —
//	a distance of sqrt(37) ≈ 6.08, well past the 3.0 threshold.
//
// Effect:
//
//	Segment restores the two strokes: 7 samples, then 5.
//
// Complexity: O(N) time, O(N) memory
func ExampleSegment() {
	samples := []pathseg.Point{
		{X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 4.5}, {X: 5, Y: 4.5},
		{X: 6, Y: 4.5}, {X: 7, Y: 3}, {X: 9, Y: 4},
		{X: 3, Y: 3}, {X: 3, Y: 1.5}, {X: 5, Y: 1.5}, {X: 7, Y: 3}, {X: 9, Y: 2},
	}

	strokes, err := pathseg.Segment(samples, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("strokes=%d\n", len(strokes))
	for i, s := range pathseg.Describe(strokes) {
		fmt.Printf("stroke %d: %d points, (%g,%g) to (%g,%g)\n",
			i+1, s.Points, s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	}
	// Output:
	// strokes=2
	// stroke 1: 7 points, (1,3) to (9,4)
	// stroke 2: 5 points, (3,3) to (9,2)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNormalize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Upstream tooling already segmented the path. Wrapping the collection
//	with Segmented makes Normalize a pass-through: the strokes come back
//	unchanged, element for element.
func ExampleNormalize() {
	already := pathseg.Collection{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 5, Y: 5}, {X: 6, Y: 6}},
	}

	out, err := pathseg.Normalize(pathseg.Segmented(already), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("strokes=%d unchanged=%v\n", len(out), out[0][0] == already[0][0])
	// Output:
	// strokes=2 unchanged=true
}
