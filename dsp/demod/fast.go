package demod

import (
	"math"

	"github.com/cwbudde/algo-rfdemod/internal/fastmath"
)

// fastBatch is the number of sample pairs handled per unrolled step.
const fastBatch = 8

const tau32 = float32(2 * math.Pi)

// FMFast demodulates z like [FM], but estimates each step from the adjacent
// pair (z[i-1], z[i]) alone using a single-precision polynomial arctangent.
// Phase error is bounded by about 1e-5 rad per angle. Element 0 is always 0.
//
// Every step is wrapped into [0, 2*pi) on its own instead of being unwrapped
// against its neighbours; use [FM] when bit-exact trigonometry matters.
func FMFast(z []complex128, freq float64) ([]float64, error) {
	if len(z) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(z))
	fmFastInto(out, z, float32(freq))

	return out, nil
}

// FMFastInto is like [FMFast] but writes into dst, which must have len(z)
// elements.
func FMFastInto(dst []float64, z []complex128, freq float64) error {
	if err := checkBuffers(dst, z); err != nil {
		return err
	}

	fmFastInto(dst, z, float32(freq))

	return nil
}

func fmFastInto(dst []float64, z []complex128, freq float32) {
	dst[0] = 0

	pairs := len(z) - 1
	batches := pairs / fastBatch

	for b := range batches {
		i := b * fastBatch
		prev := (*[fastBatch]complex128)(z[i : i+fastBatch])
		curr := (*[fastBatch]complex128)(z[i+1 : i+1+fastBatch])
		out := (*[fastBatch]float64)(dst[i+1 : i+1+fastBatch])
		stepBatch(prev, curr, out, freq)
	}

	for i := batches * fastBatch; i < pairs; i++ {
		dst[i+1] = float64(step(z[i], z[i+1], freq))
	}
}

func stepBatch(prev, curr *[fastBatch]complex128, out *[fastBatch]float64, freq float32) {
	for i := range fastBatch {
		out[i] = float64(step(prev[i], curr[i], freq))
	}
}

// step returns the phase advance from a to b wrapped into [0, 2*pi) and
// scaled by freq/2*pi.
func step(a, b complex128, freq float32) float32 {
	pa := fastmath.Atan2(float32(imag(a)), float32(real(a)))
	pb := fastmath.Atan2(float32(imag(b)), float32(real(b)))

	diff := pb - pa
	diff -= float32(math.Floor(float64(diff/tau32))) * tau32

	return diff * freq / tau32
}
