package phase

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
)

var (
	ErrEmptyInput     = errors.New("phase: empty input")
	ErrLengthMismatch = errors.New("phase: buffer length mismatch")
)

// Discontinuity is the jump size above which consecutive samples are treated
// as wrapped. It is half the period.
const Discontinuity = math.Pi

// Unwrap returns a copy of x with 2*pi wrap discontinuities removed.
// See [UnwrapInPlace].
func Unwrap(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(x))
	copy(out, x)

	// Cannot fail: out is non-empty.
	_ = UnwrapInPlace(out)

	return out, nil
}

// UnwrapInPlace corrects jumps larger than pi between consecutive samples by
// adding multiples of 2*pi, scanning left to right. x[0] is the unwrap origin
// and is never modified. Jumps smaller than pi are left untouched.
func UnwrapInPlace(x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}

	const (
		low  = -Discontinuity
		high = Discontinuity
	)

	for i := 1; i < len(x); i++ {
		diff := x[i] - x[i-1]

		diffMod := remEuclid(diff-low, core.Tau) + low
		if diffMod == low && diff > 0 {
			diffMod = high
		}

		correct := diffMod - diff
		if math.Abs(diff) < Discontinuity {
			correct = 0
		}

		x[i] += correct
	}

	return nil
}

// remEuclid returns the non-negative remainder of x / m for m > 0.
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}

	return r
}
