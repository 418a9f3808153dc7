// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are generic over
// the sample precision: float64 blocks run on a CPU-dispatched kernel,
// float32 blocks on the portable kernel with coefficients narrowed once.
//
// Multiple sections are cascaded via [Chain]. [Chain.StepStates] gives the
// delay-line state a cascade settles into under a constant input, which the
// zero-phase filter in dsp/filter/sos uses to suppress start-up transients.
//
// This package provides the processing runtime only. Coefficients are
// supplied precomputed by the caller.
package biquad
