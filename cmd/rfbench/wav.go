package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-rfdemod/dsp/signal"
)

const wavBitDepth = 16

// writeWAV stores x as mono 16-bit PCM, centred on its mean and scaled to
// full range.
func writeWAV(path string, x []float64, sampleRate int) (err error) {
	if len(x) == 0 {
		return fmt.Errorf("wav: no samples")
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	centred := make([]float64, len(x))
	for i, v := range x {
		centred[i] = v - mean
	}

	peak := float64(math.MaxInt16)
	scaled, err := signal.Normalize(centred, peak)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	data := make([]int, len(scaled))
	for i, v := range scaled {
		data[i] = int(math.Round(v))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}

	return nil
}
