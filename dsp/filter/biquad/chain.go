package biquad

import "github.com/cwbudde/algo-rfdemod/dsp/core"

// Chain is an ordered cascade of biquad sections processed in series.
// Each section's output feeds the next.
type Chain[F core.Float] struct {
	sections []Section[F]
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain[F core.Float](coeffs []Coefficients) *Chain[F] {
	c := &Chain[F]{
		sections: make([]Section[F], len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].SetCoefficients(coeffs[i])
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain[F]) ProcessSample(x F) F {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain[F]) ProcessBlock(buf []F) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain[F]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain[F]) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain[F]) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain[F]) Section(i int) *Section[F] {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain[F]) State() [][2]F {
	states := make([][2]F, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain[F]) SetState(states [][2]F) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// StepStates returns, per section, the steady-state delay line for a unit
// constant input to the whole cascade. Each section sees the DC output of
// the sections before it.
func (c *Chain[F]) StepStates() [][2]float64 {
	states := make([][2]float64, len(c.sections))

	scale := 1.0
	for i := range c.sections {
		coeffs := c.sections[i].Coefficients
		zi := coeffs.StepState()
		states[i] = [2]float64{scale * zi[0], scale * zi[1]}
		scale *= coeffs.DCGain()
	}

	return states
}

// PrimeStep sets every section state to the steady state for a constant
// input of value x0. See [Chain.StepStates].
func (c *Chain[F]) PrimeStep(steps [][2]float64, x0 F) {
	for i := range c.sections {
		c.sections[i].SetState([2]F{F(steps[i][0]) * x0, F(steps[i][1]) * x0})
	}
}
