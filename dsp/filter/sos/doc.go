// Package sos applies cascades of second-order IIR sections forward and
// backward so the net phase response is zero.
//
// Coefficients arrive as one flat buffer of order*6 values, each group of
// six being (b0, b1, b2, a0, a1, a2) for one section. Sections are
// normalized by a0 and run in buffer order on the [biquad] kernels.
//
// The edges are handled the way SciPy's sosfiltfilt handles them: the input
// is extended on both sides by an odd reflection and every section starts
// each pass in the steady state for the first sample it sees, so step-like
// edges do not ring.
package sos
