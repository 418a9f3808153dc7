package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
	"github.com/cwbudde/algo-rfdemod/dsp/signal"
)

// system describes the FM deviation and line timing of a disc format.
type system struct {
	SyncHz  float64 // sync tip carrier
	BlankHz float64 // blanking level carrier
	WhiteHz float64 // peak white carrier
	LineUS  float64 // line period
	SyncUS  float64 // horizontal sync width
	BroadUS float64 // vertical sync broad pulse width
	VLines  int     // lines of broad pulses at the start of the block
}

var systems = map[string]system{
	"NTSC": {SyncHz: 7.6e6, BlankHz: 8.1e6, WhiteHz: 9.3e6, LineUS: 63.5555, SyncUS: 4.7, BroadUS: 27.1, VLines: 3},
	"PAL":  {SyncHz: 6.76e6, BlankHz: 7.1e6, WhiteHz: 7.9e6, LineUS: 64, SyncUS: 4.7, BroadUS: 27.3, VLines: 3},
}

func lookupSystem(name string) (system, error) {
	sys, ok := systems[strings.ToUpper(name)]
	if !ok {
		return system{}, fmt.Errorf("unknown system %q", name)
	}
	return sys, nil
}

// frequencyTrack builds the instantaneous carrier frequency of one block:
// broad vertical sync pulses on the first lines, then lines with a
// horizontal sync pulse and a black-to-white ramp.
func frequencyTrack(sys system, pc core.ProcessorConfig) []float64 {
	mhz := pc.SampleFreqMHz()
	n := pc.BlockSize

	track := make([]float64, n)
	for i := range track {
		track[i] = sys.BlankHz
	}

	fill := func(from, to int, hz float64) {
		from, to = max(from, 0), min(to, n)
		for i := from; i < to; i++ {
			track[i] = hz
		}
	}

	line := int(sys.LineUS * mhz)
	half := line / 2
	syncLen := int(sys.SyncUS * mhz)
	broadLen := int(sys.BroadUS * mhz)
	activeStart := int(9.5 * mhz)
	activeEnd := line - int(1.5*mhz)

	pos := int(12 * mhz)
	for l := 0; pos < n; l++ {
		if l < sys.VLines {
			fill(pos, pos+broadLen, sys.SyncHz)
			fill(pos+half, pos+half+broadLen, sys.SyncHz)
		} else {
			fill(pos, pos+syncLen, sys.SyncHz)
			span := float64(activeEnd - activeStart)
			for i := activeStart; i < activeEnd && pos+i < n; i++ {
				frac := float64(i-activeStart) / span
				track[pos+i] = sys.BlankHz + frac*(sys.WhiteHz-sys.BlankHz)
			}
		}
		pos += line
	}

	return track
}

// capture synthesizes the real RF block for cfg together with the carrier
// frequency track it encodes.
func capture(cfg Config) (rf, track []float64, err error) {
	sys, err := lookupSystem(cfg.System)
	if err != nil {
		return nil, nil, err
	}

	gen := signal.NewGeneratorWithOptions(cfg.processorOptions(), signal.WithSeed(cfg.Seed))
	track = frequencyTrack(sys, gen.Config())

	rf, err = gen.FM(track, cfg.CarrierLevel)
	if err != nil {
		return nil, nil, err
	}

	if cfg.NoiseLevel > 0 {
		noise, err := gen.WhiteNoise(cfg.NoiseLevel*cfg.CarrierLevel, len(rf))
		if err != nil {
			return nil, nil, err
		}
		for i := range rf {
			rf[i] += noise[i]
		}
	}

	return rf, track, nil
}
