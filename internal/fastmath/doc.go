// Package fastmath provides fast approximations for the trigonometric
// functions used in per-sample RF demodulation.
//
// These approximations trade a small amount of accuracy for throughput and
// are written so the compiler can keep the hot loops branch-light.
//
// # Accuracy Characteristics
//
// Atan: odd degree-11 minimax polynomial on [-1, 1], max error ~1e-5 rad.
//
// Atan2: built on Atan with octant folding, same error bound over all four
// quadrants. Atan2(0, 0) is 0.
//
// Callers needing IEEE 754 results should use the standard library math
// package instead.
package fastmath
