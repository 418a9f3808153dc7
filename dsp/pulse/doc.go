// Package pulse measures the demodulated level inside detected sync pulses.
//
// A pulse detector upstream reports candidate windows as (start, length)
// pairs. When normal sync detection fails, the long vertical-sync pulses
// can still be picked out by length, and the mean of the demodulated
// signal inside each one, away from its edges, gives the sync tip level.
package pulse
