// Package demod turns analytic RF signals into instantaneous-frequency
// sequences ("phase-derivative" FM demodulation).
//
// Two strategies share one contract, analytic signal in, frequency out,
// scaled by a caller supplied frequency:
//
//   - [FM] is exact: it extracts the phase, differences it, unwraps the
//     differences globally and folds every sample into [0, 2*pi) before
//     scaling.
//   - [FMFast] estimates each adjacent-pair phase step independently with a
//     single-precision polynomial arctangent. It never materializes a phase
//     sequence and wraps every step into [0, 2*pi) on its own.
//
// Both paths yield non-negative frequencies only; a carrier below zero
// aliases to freq minus its magnitude. This suits the one-sided FM carriers
// of LaserDisc and VHS RF.
//
// Select a strategy statically with [Method] and [Demodulate].
package demod
