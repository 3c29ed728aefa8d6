// Package visibility computes two-beam interference intensity and fringe
// visibility — the pedagogical arithmetic behind an interferometer's
// contrast readout.
//
// 🚀 What is fringe visibility?
//
//	When two beams of intensities I1 and I2 interfere with phase φ, the
//	detector sees
//
//	  I(φ) = I1 + I2 + 2·√(I1·I2)·cos φ
//
//	and the contrast of the resulting fringe pattern is the visibility
//
//	  V = (Imax − Imin) / (Imax + Imin)
//
//	which for an ideal two-beam setup collapses to 2·√(I1·I2)/(I1+I2).
//	V = 1 means perfectly balanced beams, V = 0 means no fringes at all.
//
// ✨ What's in the package:
//   - Fringe          — pointwise interference intensity
//   - FromIntensities — ideal visibility from the two beam intensities
//   - FromExtrema     — measured visibility from fringe extrema
//   - Scan            — one full 2π fringe period, sampled
//
// ⚙️ Usage:
//
//	import "github.com/fringelab/beamkit/visibility"
//
//	v, err := visibility.FromIntensities(1.0, 0.25)
//	if err != nil {
//	  // ErrNegativeIntensity or ErrNoLight
//	}
//	fmt.Printf("V = %.2f\n", v) // V = 0.80
//
// All functions are pure, allocate nothing beyond their result, and report
// bad physics (negative intensity, dark detector, swapped extrema) with
// sentinel errors instead of NaNs.
package visibility
