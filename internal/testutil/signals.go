package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// AnalyticTone generates the analytic signal of a pure tone advancing by
// cyclesPerSample turns per sample, starting at phase0 radians.
func AnalyticTone(cyclesPerSample, phase0, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * cyclesPerSample
	for i := range out {
		out[i] = cmplx.Rect(amplitude, phase0+step*float64(i))
	}
	return out
}

// Bump generates a Gaussian pulse of the given width centred in a signal of
// odd length, so the result is exactly even-symmetric.
func Bump(length int, width float64) []float64 {
	out := make([]float64, length)
	center := (length - 1) / 2
	for i := range out {
		d := float64(i - center)
		out[i] = math.Exp(-0.5 * (d / width) * (d / width))
	}
	return out
}
