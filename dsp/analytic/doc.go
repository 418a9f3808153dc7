// Package analytic builds analytic signals from real RF captures.
//
// [Signal] zeroes the negative-frequency half of the spectrum and doubles
// the positive half, so the real part of the result is the input and the
// imaginary part is its Hilbert transform. The output feeds the FM
// demodulators in package demod.
package analytic
