package analytic

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	// ErrInvalidLength is returned for input whose length is not an even
	// power of two.
	ErrInvalidLength = errors.New("analytic: length must be an even power of two")
	// ErrLengthMismatch is returned when dst and the input differ in length.
	ErrLengthMismatch = errors.New("analytic: length mismatch")
)

// Mask returns the Hilbert spectrum weights for an even FFT size: 1 at DC
// and Nyquist, 2 for positive bins, 0 for negative bins.
func Mask(size int) ([]float64, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	mask := make([]float64, size)
	mask[0] = 1
	mask[size/2] = 1
	for i := 1; i < size/2; i++ {
		mask[i] = 2
	}

	return mask, nil
}

// Signal returns the analytic signal of x.
func Signal(x []float64) ([]complex128, error) {
	n := len(x)
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	mask, err := Mask(n)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("analytic: plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("analytic: forward FFT: %w", err)
	}

	for i, w := range mask {
		bins[i] *= complex(w, 0)
	}

	if err := plan.Inverse(in, bins); err != nil {
		return nil, fmt.Errorf("analytic: inverse FFT: %w", err)
	}

	return in, nil
}
