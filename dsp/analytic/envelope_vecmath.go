//go:build !fastmath

package analytic

import "github.com/cwbudde/algo-vecmath"

func magnitude(dst []float64, z []complex128) {
	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, v := range z {
		re[i], im[i] = real(v), imag(v)
	}

	vecmath.Magnitude(dst, re, im)
}
