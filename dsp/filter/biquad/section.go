//nolint:funcorder
package biquad

import (
	"sync"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
	archregistry "github.com/cwbudde/algo-rfdemod/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// DCGain returns H(1), the section gain for a constant input.
func (c Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// StepState returns the delay-line state [d0, d1] the section settles into
// when fed a unit constant input, so that filtering a constant starts
// without a transient.
func (c Coefficients) StepState() [2]float64 {
	// Solve (I - A) z = B for the DF-II-T companion form.
	r0 := c.B1 - c.A1*c.B0
	r1 := c.B2 - c.A2*c.B0

	d0 := (r0 + r1) / (1 + c.A1 + c.A2)
	d1 := r1 - c.A2*d0

	return [2]float64{d0, d1}
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section[F core.Float] struct {
	Coefficients

	b0, b1, b2, a1, a2 F
	d0, d1             F
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection[F core.Float](c Coefficients) *Section[F] {
	s := &Section[F]{}
	s.SetCoefficients(c)

	return s
}

// SetCoefficients replaces the coefficients, keeping the delay-line state.
func (s *Section[F]) SetCoefficients(c Coefficients) {
	s.Coefficients = c
	s.b0, s.b1, s.b2 = F(c.B0), F(c.B1), F(c.B2)
	s.a1, s.a2 = F(c.A1), F(c.A2)
}

// ProcessSample filters one input sample and returns the output.
func (s *Section[F]) ProcessSample(x F) F {
	y := s.b0*x + s.d0
	s.d0 = s.b1*x - s.a1*y + s.d1
	s.d1 = s.b2*x - s.a2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section[F]) ProcessBlock(buf []F) {
	if buf64, ok := any(buf).([]float64); ok {
		processBlockInitOnce.Do(initProcessBlockKernel)

		coeffs := archregistry.Coefficients{
			B0: s.B0,
			B1: s.B1,
			B2: s.B2,
			A1: s.A1,
			A2: s.A2,
		}

		d0, d1 := processBlockImpl(coeffs, float64(s.d0), float64(s.d1), buf64)
		s.d0, s.d1 = F(d0), F(d1)

		return
	}

	s.processBlockUnrolled2(buf)
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// processBlockUnrolled2 is a manual 2x-unrolled scalar implementation of
// ProcessBlock that reduces loop overhead and improves ILP.
func (s *Section[F]) processBlockUnrolled2(buf []F) {
	b0, b1, b2 := s.b0, s.b1, s.b2
	a1, a2 := s.a1, s.a2
	d0, d1 := s.d0, s.d1

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset clears the delay line to zero.
func (s *Section[F]) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section[F]) State() [2]F {
	return [2]F{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section[F]) SetState(state [2]F) {
	s.d0 = state[0]
	s.d1 = state[1]
}
