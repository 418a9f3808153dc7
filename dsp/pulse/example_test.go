package pulse_test

import (
	"fmt"

	"github.com/cwbudde/algo-rfdemod/dsp/pulse"
)

func ExampleLevels() {
	demod := make([]float64, 200)
	for i := 60; i < 120; i++ {
		demod[i] = 4.2e6
	}

	pulses := []pulse.Window{
		{Start: 10, Len: 8},
		{Start: 60, Len: 60},
		{Start: 150, Len: 9},
	}

	levels, err := pulse.Levels(demod, pulses, 4, 40, 80)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, l := range levels {
		fmt.Printf("pulse %d: %.1f MHz\n", l.Index, l.Mean/1e6)
	}
	// Output:
	// pulse 1: 4.2 MHz
}
