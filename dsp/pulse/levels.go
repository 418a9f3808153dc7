package pulse

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrInvalidWindow is returned when a selected pulse has an empty or
// out-of-range interior after trimming the guard band.
var ErrInvalidWindow = errors.New("pulse: invalid pulse window")

// Window is a candidate pulse: Len samples starting at Start.
type Window struct {
	Start int
	Len   int
}

// Level is the interior mean of the pulse at Index in the input list.
type Level struct {
	Index int
	Mean  float64
}

// Levels returns, in input order, the interior mean of every pulse whose
// length lies in [minLen, maxLen). sampleFreqMHz samples are trimmed from
// both ends of each pulse before averaging.
func Levels(demod []float64, pulses []Window, sampleFreqMHz, minLen, maxLen float64) ([]Level, error) {
	indices, means, err := LevelMeans(demod, pulses, sampleFreqMHz, minLen, maxLen)
	if err != nil {
		return nil, err
	}

	levels := make([]Level, len(indices))
	for i := range indices {
		levels[i] = Level{Index: indices[i], Mean: means[i]}
	}

	return levels, nil
}

// LevelMeans is [Levels] returning the selected indices and their means as
// parallel slices.
func LevelMeans(demod []float64, pulses []Window, sampleFreqMHz, minLen, maxLen float64) ([]int, []float64, error) {
	var (
		indices []int
		bounds  [][2]int
	)

	for i, p := range pulses {
		length := float64(p.Len)
		if length < minLen || length >= maxLen {
			continue
		}

		lo, hi, err := interior(p, sampleFreqMHz, len(demod))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: pulse %d (start %d, len %d): %w", ErrInvalidWindow, i, p.Start, p.Len, err)
		}

		indices = append(indices, i)
		bounds = append(bounds, [2]int{lo, hi})
	}

	means := make([]float64, len(bounds))
	for i, b := range bounds {
		means[i] = stat.Mean(demod[b[0]:b[1]], nil)
	}

	return indices, means, nil
}

var (
	errEmpty      = errors.New("empty interior")
	errOutOfRange = errors.New("interior out of range")
)

func interior(p Window, margin float64, n int) (int, int, error) {
	lo := math.Trunc(float64(p.Start) + margin)
	hi := math.Trunc(float64(p.Start+p.Len) - margin)

	if lo < 0 || hi > float64(n) {
		return 0, 0, errOutOfRange
	}

	if hi <= lo {
		return 0, 0, errEmpty
	}

	return int(lo), int(hi), nil
}

// SyncLevel returns the median of the pulse means, the usual estimate of
// the sync tip level. It reports false when means is empty.
func SyncLevel(means []float64) (float64, bool) {
	if len(means) == 0 {
		return 0, false
	}

	sorted := slices.Clone(means)
	slices.Sort(sorted)

	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if n := len(sorted); n%2 == 0 {
		median = (median + sorted[n/2]) / 2
	}

	return median, true
}
