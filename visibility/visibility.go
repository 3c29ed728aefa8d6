package visibility

import "math"

// Fringe returns the two-beam interference intensity at phase difference
// phase (radians):
//
//	I = I1 + I2 + 2·√(I1·I2)·cos(phase)
//
// Errors:
//   - ErrNegativeIntensity — i1 or i2 below zero.
func Fringe(i1, i2, phase float64) (float64, error) {
	if i1 < 0 || i2 < 0 {
		return 0, ErrNegativeIntensity
	}

	return i1 + i2 + 2*math.Sqrt(i1*i2)*math.Cos(phase), nil
}

// FromIntensities returns the ideal fringe visibility of two interfering
// beams:
//
//	V = 2·√(I1·I2) / (I1 + I2)
//
// V is 1 for balanced beams and falls toward 0 as they diverge.
//
// Errors:
//   - ErrNegativeIntensity — i1 or i2 below zero.
//   - ErrNoLight           — both intensities zero.
func FromIntensities(i1, i2 float64) (float64, error) {
	if i1 < 0 || i2 < 0 {
		return 0, ErrNegativeIntensity
	}
	if i1 == 0 && i2 == 0 {
		return 0, ErrNoLight
	}

	return 2 * math.Sqrt(i1*i2) / (i1 + i2), nil
}

// FromExtrema returns the measured visibility from fringe-scan extrema:
//
//	V = (Imax − Imin) / (Imax + Imin)
//
// Errors:
//   - ErrNegativeIntensity — either extremum below zero.
//   - ErrExtremaOrder      — imax < imin.
//   - ErrNoLight           — imax zero (dark detector).
func FromExtrema(imax, imin float64) (float64, error) {
	if imax < 0 || imin < 0 {
		return 0, ErrNegativeIntensity
	}
	if imax < imin {
		return 0, ErrExtremaOrder
	}
	if imax == 0 {
		return 0, ErrNoLight
	}

	return (imax - imin) / (imax + imin), nil
}

// Scan samples the fringe intensity at n evenly spaced phases over one full
// period, phase_k = 2π·k/n for k = 0..n-1.
//
// Errors:
//   - ErrBadSampleCount    — n ≤ 0.
//   - ErrNegativeIntensity — i1 or i2 below zero.
//
// Complexity: O(n) time, O(n) memory.
func Scan(i1, i2 float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	if i1 < 0 || i2 < 0 {
		return nil, ErrNegativeIntensity
	}

	out := make([]float64, n)
	cross := 2 * math.Sqrt(i1*i2)
	for k := 0; k < n; k++ {
		out[k] = i1 + i2 + cross*math.Cos(2*math.Pi*float64(k)/float64(n))
	}

	return out, nil
}
