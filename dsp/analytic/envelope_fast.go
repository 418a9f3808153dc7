//go:build fastmath

package analytic

import "github.com/meko-christian/algo-approx"

func magnitude(dst []float64, z []complex128) {
	for i, v := range z {
		re, im := real(v), imag(v)
		dst[i] = approx.FastSqrt(re*re + im*im)
	}
}
