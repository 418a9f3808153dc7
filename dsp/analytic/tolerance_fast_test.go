//go:build fastmath

package analytic

const envelopeTol = 1e-2
