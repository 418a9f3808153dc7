package sos

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"
)

// sectionLen is the number of flat coefficients per section.
const sectionLen = 6

var (
	// ErrCoefficientLength is returned when the flat coefficient buffer does
	// not hold exactly order*6 values or order is not positive.
	ErrCoefficientLength = errors.New("sos: coefficient buffer length does not match order")
	// ErrInvalidSection is returned for a section whose a0 is zero or whose
	// coefficients are not finite.
	ErrInvalidSection = errors.New("sos: invalid section")
)

// Cascade is an immutable, normalized series of biquad sections.
type Cascade struct {
	sections []biquad.Coefficients
	padLen   int
}

// NewCascade parses a flat (b0, b1, b2, a0, a1, a2) coefficient buffer
// holding order sections.
func NewCascade(order int, flat []float64) (*Cascade, error) {
	if order <= 0 || len(flat) != order*sectionLen {
		return nil, fmt.Errorf("%w: order %d needs %d values, got %d",
			ErrCoefficientLength, order, order*sectionLen, len(flat))
	}

	sections := make([]biquad.Coefficients, order)
	trailingB, trailingA := 0, 0

	for i := range sections {
		row := flat[i*sectionLen : (i+1)*sectionLen]
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: section %d has non-finite coefficient", ErrInvalidSection, i)
			}
		}

		a0 := row[3]
		if a0 == 0 {
			return nil, fmt.Errorf("%w: section %d has a0 = 0", ErrInvalidSection, i)
		}

		sections[i] = biquad.Coefficients{
			B0: row[0] / a0,
			B1: row[1] / a0,
			B2: row[2] / a0,
			A1: row[4] / a0,
			A2: row[5] / a0,
		}

		if row[2] == 0 {
			trailingB++
		}
		if row[5] == 0 {
			trailingA++
		}
	}

	// First-order sections shorten the equivalent transfer function.
	ntaps := 2*order + 1 - min(trailingB, trailingA)

	return &Cascade{
		sections: sections,
		padLen:   3 * ntaps,
	}, nil
}

// NumSections returns the number of second-order sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Sections returns a copy of the normalized section coefficients.
func (c *Cascade) Sections() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), c.sections...)
}

// PadLen returns the default odd-extension length used by [FiltFilt].
func (c *Cascade) PadLen() int {
	return c.padLen
}

// Response returns the complex response of a single forward pass at freqHz.
// The zero-phase response of [FiltFilt] is its squared magnitude.
func (c *Cascade) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the forward-backward magnitude in dB, which is twice
// the single-pass magnitude.
func (c *Cascade) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 40 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
