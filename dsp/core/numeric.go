package core

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// WrapTau reduces x into [0, 2*pi) by repeatedly adding or subtracting a
// full turn. Inputs are expected to lie within a few turns of the range.
func WrapTau(x float64) float64 {
	for x < 0 {
		x += Tau
	}
	for x >= Tau {
		x -= Tau
	}

	return x
}
