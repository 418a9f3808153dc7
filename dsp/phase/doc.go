// Package phase provides the phase-domain kernels used by FM demodulation of
// analytic RF captures.
//
// The kernels operate on fully materialized sequences:
//
//   - [Angle] extracts the instantaneous phase of an analytic signal.
//   - [DiffForward] replaces a sequence by its first difference in place,
//     with a zero leading element.
//   - [UnwrapInPlace] and [Unwrap] remove spurious 2*pi discontinuities.
//
// Unwrapping and differencing are strictly sequential along the sample axis.
// Callers wanting parallelism should split work across independent sequences
// (fields, channels), never within one.
package phase
