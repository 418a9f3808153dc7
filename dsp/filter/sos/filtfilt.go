package sos

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
	"github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"
)

var (
	// ErrInputTooShort is returned when the input is not longer than the
	// odd-extension length.
	ErrInputTooShort = errors.New("sos: input shorter than padding")
	// ErrLengthMismatch is returned when dst and x differ in length.
	ErrLengthMismatch = errors.New("sos: length mismatch")
	// ErrInvalidPadLen is returned for a negative padding override.
	ErrInvalidPadLen = errors.New("sos: invalid pad length")
)

type config struct {
	padLen    int
	padLenSet bool
}

// Option configures a zero-phase filtering call.
type Option func(*config)

// WithPadLen overrides the odd-extension length on each side. Zero disables
// the extension.
func WithPadLen(n int) Option {
	return func(cfg *config) {
		cfg.padLen = n
		cfg.padLenSet = true
	}
}

// FiltFilt returns x filtered forward and backward through c.
func FiltFilt[F core.Float](c *Cascade, x []F, opts ...Option) ([]F, error) {
	dst := make([]F, len(x))
	if err := FiltFiltInto(c, dst, x, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// FiltFiltInto writes the zero-phase filtered x into dst. dst may be x.
// On error dst is left untouched.
func FiltFiltInto[F core.Float](c *Cascade, dst, x []F, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("%w: nil cascade", ErrInvalidSection)
	}

	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst %d, x %d", ErrLengthMismatch, len(dst), len(x))
	}

	cfg := config{padLen: c.padLen}
	for _, opt := range opts {
		opt(&cfg)
	}

	pad := cfg.padLen
	if pad < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPadLen, pad)
	}

	n := len(x)
	if n == 0 || n <= pad {
		return fmt.Errorf("%w: length %d, pad %d", ErrInputTooShort, n, pad)
	}

	ext := oddExtend(x, pad)

	chain := biquad.NewChain[F](c.sections)
	steps := chain.StepStates()

	chain.PrimeStep(steps, ext[0])
	chain.ProcessBlock(ext)

	slices.Reverse(ext)
	chain.PrimeStep(steps, ext[0])
	chain.ProcessBlock(ext)
	slices.Reverse(ext)

	copy(dst, ext[pad:pad+n])

	return nil
}

// oddExtend returns x with pad samples of odd reflection about each end
// point. Requires pad < len(x).
func oddExtend[F core.Float](x []F, pad int) []F {
	n := len(x)
	ext := make([]F, n+2*pad)

	first, last := x[0], x[n-1]
	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}

	copy(ext[pad:], x)

	return ext
}

// FiltFilt64 parses flat and filters x in double precision.
func FiltFilt64(order int, flat, x []float64) ([]float64, error) {
	c, err := NewCascade(order, flat)
	if err != nil {
		return nil, err
	}

	return FiltFilt(c, x)
}

// FiltFilt32 parses double-precision coefficients, narrows them, and filters
// x in single precision.
func FiltFilt32(order int, flat []float64, x []float32) ([]float32, error) {
	c, err := NewCascade(order, flat)
	if err != nil {
		return nil, err
	}

	return FiltFilt(c, x)
}
