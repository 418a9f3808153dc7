package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"
)

func ExampleSection_ProcessBlock() {
	c := biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	}
	s := biquad.NewSection[float64](c)
	buf := []float64{1, 0, 0, 0}
	s.ProcessBlock(buf)

	fmt.Printf("block: %.3f %.3f %.3f %.3f\n", buf[0], buf[1], buf[2], buf[3])
	fmt.Printf("1 kHz: %+.2f dB\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// block: 0.250 0.550 0.350 0.048
	// 1 kHz: +1.47 dB
}

func ExampleChain_PrimeStep() {
	chain := biquad.NewChain[float32]([]biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	})

	// Start as if the input had always been 2.0: no transient.
	chain.PrimeStep(chain.StepStates(), 2)

	buf := []float32{2, 2, 2}
	chain.ProcessBlock(buf)
	fmt.Printf("%.4f %.4f %.4f\n", buf[0], buf[1], buf[2])
	// Output:
	// 1.5873 1.5873 1.5873
}
