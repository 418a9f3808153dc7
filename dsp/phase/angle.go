package phase

import (
	"fmt"
	"math/cmplx"
)

// Angle returns the instantaneous phase of every analytic sample, in
// (-pi, pi]. The angle of 0+0i is 0.
func Angle(z []complex128) []float64 {
	out := make([]float64, len(z))
	angleInto(out, z)

	return out
}

// AngleInto writes the phase of z into dst. Both slices must have the same
// length.
func AngleInto(dst []float64, z []complex128) error {
	if len(dst) != len(z) {
		return fmt.Errorf("%w: dst=%d z=%d", ErrLengthMismatch, len(dst), len(z))
	}

	angleInto(dst, z)

	return nil
}

func angleInto(dst []float64, z []complex128) {
	for i, v := range z {
		dst[i] = cmplx.Phase(v)
	}
}
