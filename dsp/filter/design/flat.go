package design

import "github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"

// Flat packs normalized sections into (b0, b1, b2, a0, a1, a2) rows with
// a0 = 1.
func Flat(sections []biquad.Coefficients) []float64 {
	flat := make([]float64, 0, 6*len(sections))
	for _, s := range sections {
		flat = append(flat, s.B0, s.B1, s.B2, 1, s.A1, s.A2)
	}
	return flat
}
