package demod

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
	"github.com/cwbudde/algo-rfdemod/dsp/phase"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptyInput     = errors.New("demod: empty input")
	ErrLengthMismatch = errors.New("demod: buffer length mismatch")
	ErrUnknownMethod  = errors.New("demod: unknown method")
)

// FM demodulates the analytic signal z into instantaneous frequency, in the
// units of freq (typically the sample rate in Hz). Element 0 is always 0.
func FM(z []complex128, freq float64) ([]float64, error) {
	if len(z) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(z))
	fmInto(out, z, freq)

	return out, nil
}

// FMInto is like [FM] but writes into dst, which must have len(z) elements.
func FMInto(dst []float64, z []complex128, freq float64) error {
	if err := checkBuffers(dst, z); err != nil {
		return err
	}

	fmInto(dst, z, freq)

	return nil
}

func fmInto(dst []float64, z []complex128, freq float64) {
	// The buffer lengths are validated by the callers, so the phase kernels
	// cannot fail here.
	_ = phase.AngleInto(dst, z)
	_ = phase.DiffForward(dst)
	_ = phase.UnwrapInPlace(dst)

	for i, v := range dst {
		dst[i] = core.WrapTau(v)
	}

	vecmath.ScaleBlock(dst, dst, freq/core.Tau)
}

func checkBuffers(dst []float64, z []complex128) error {
	if len(z) == 0 {
		return ErrEmptyInput
	}

	if len(dst) != len(z) {
		return fmt.Errorf("%w: dst=%d z=%d", ErrLengthMismatch, len(dst), len(z))
	}

	return nil
}
