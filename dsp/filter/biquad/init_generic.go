//go:build !amd64 || purego

package biquad

import (
	_ "github.com/cwbudde/algo-rfdemod/dsp/filter/biquad/internal/arch/unroll2" // register portable backend
)
