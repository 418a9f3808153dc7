package design

import (
	"math"

	"github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"
)

// ButterworthLP designs an order-pole Butterworth lowpass as a cascade of
// biquads, highest Q last. Odd orders end with a first-order section
// (B2 = A2 = 0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Lowpass, firstOrderLP)
}

// ButterworthHP designs an order-pole Butterworth highpass.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Highpass, firstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(k float64) biquad.Coefficients,
) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if order <= 0 || !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, first(k))
	}

	return sections
}

// bilinearK is the prewarped frequency tan(pi*freq/sampleRate).
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

// butterworthQ is the Q of pole pair index (0 is the pair nearest the
// imaginary axis).
func butterworthQ(order, index int) float64 {
	return 1 / (2 * math.Sin(math.Pi*float64(2*index+1)/(2*float64(order))))
}

func firstOrderLP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}
