package signal

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FM synthesizes a real FM carrier whose instantaneous frequency between
// sample i and i+1 is instFreqHz[i]. The carrier phase starts at 0.
func (g *Generator) FM(instFreqHz []float64, amplitude float64) ([]float64, error) {
	phase, err := g.carrierPhase(instFreqHz)
	if err != nil {
		return nil, err
	}

	for i, p := range phase {
		phase[i] = amplitude * math.Cos(p)
	}
	return phase, nil
}

// AnalyticFM is FM returned as a unit-amplitude analytic signal.
func (g *Generator) AnalyticFM(instFreqHz []float64) ([]complex128, error) {
	phase, err := g.carrierPhase(instFreqHz)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(phase))
	for i, p := range phase {
		out[i] = cmplx.Rect(1, p)
	}
	return out, nil
}

// carrierPhase accumulates the phase for each sample, kept in (-pi, pi].
func (g *Generator) carrierPhase(instFreqHz []float64) ([]float64, error) {
	if len(instFreqHz) == 0 {
		return nil, fmt.Errorf("fm frequency track must not be empty")
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("fm sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	scale := 2 * math.Pi / g.cfg.SampleRate
	phase := make([]float64, len(instFreqHz))

	angle := 0.0
	for i, f := range instFreqHz {
		phase[i] = angle
		angle = math.Remainder(angle+scale*f, 2*math.Pi)
	}
	return phase, nil
}

// Ramp returns a frequency track moving linearly from startHz to endHz over
// samples values, for use with FM and AnalyticFM.
func Ramp(startHz, endHz float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	if samples == 1 {
		out[0] = startHz
		return out, nil
	}
	step := (endHz - startHz) / float64(samples-1)
	for i := range out {
		out[i] = startHz + step*float64(i)
	}
	return out, nil
}
