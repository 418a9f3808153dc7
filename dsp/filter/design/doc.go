// Package design computes IIR coefficients for the zero-phase filters used
// around the demodulator.
//
// Designers return [biquad.Coefficients] sections. [Flat] packs sections
// into the (b0, b1, b2, a0, a1, a2) row layout accepted by sos.NewCascade.
package design
