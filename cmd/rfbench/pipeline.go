package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfdemod/dsp/analytic"
	"github.com/cwbudde/algo-rfdemod/dsp/core"
	"github.com/cwbudde/algo-rfdemod/dsp/demod"
	"github.com/cwbudde/algo-rfdemod/dsp/filter/biquad"
	"github.com/cwbudde/algo-rfdemod/dsp/filter/design"
	"github.com/cwbudde/algo-rfdemod/dsp/filter/sos"
	"github.com/cwbudde/algo-rfdemod/dsp/pulse"
)

// pipeline owns the buffers reused across timed iterations.
type pipeline struct {
	cfg     Config
	sys     system
	pc      core.ProcessorConfig
	lowpass *sos.Cascade
	rfhpf   *sos.Cascade

	rf       []float64
	rf32     []float32
	track    []float64
	z        []complex128
	exact    []float64
	fast     []float64
	filtered []float64
	pulses   []pulse.Window
	levels   []pulse.Level
}

func newPipeline(cfg Config) (*pipeline, error) {
	sys, err := lookupSystem(cfg.System)
	if err != nil {
		return nil, err
	}

	rf, track, err := capture(cfg)
	if err != nil {
		return nil, fmt.Errorf("synthesize capture: %w", err)
	}

	p := &pipeline{
		cfg:   cfg,
		sys:   sys,
		pc:    core.ApplyProcessorOptions(cfg.processorOptions()...),
		rf:    rf,
		track: track,
	}

	p.lowpass, err = cascade(design.ButterworthLP(cfg.LowpassHz, cfg.LowpassOrder, cfg.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("design lowpass: %w", err)
	}

	if cfg.RFHighpassHz > 0 {
		p.rfhpf, err = cascade(design.ButterworthHP(cfg.RFHighpassHz, rfHighpassOrder, cfg.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("design rf highpass: %w", err)
		}

		p.rf32 = make([]float32, len(rf))
	}

	return p, nil
}

const rfHighpassOrder = 3

func cascade(sections []biquad.Coefficients) (*sos.Cascade, error) {
	return sos.NewCascade(len(sections), design.Flat(sections))
}

func (p *pipeline) analytic() error {
	z, err := analytic.Signal(p.rf)
	if err != nil {
		return err
	}
	p.z = z
	return nil
}

func (p *pipeline) demodulate(m demod.Method) error {
	var dst *[]float64
	switch m {
	case demod.MethodFast:
		dst = &p.fast
	default:
		dst = &p.exact
	}

	*dst = core.EnsureLen(*dst, len(p.z))
	return demod.DemodulateInto(m, *dst, p.z, p.pc.SampleRate)
}

// demodulated returns the output the later stages consume.
func (p *pipeline) demodulated() []float64 {
	if p.cfg.Method == "fast" {
		return p.fast
	}
	return p.exact
}

func (p *pipeline) filter() error {
	src := p.demodulated()
	p.filtered = core.EnsureLen(p.filtered, len(src))
	return sos.FiltFiltInto(p.lowpass, p.filtered, src)
}

// highpassRF filters a single-precision copy of the capture, the way the
// RF path is often kept in float32 to halve memory traffic.
func (p *pipeline) highpassRF() error {
	for i, v := range p.rf {
		p.rf32[i] = float32(v)
	}
	return sos.FiltFiltInto(p.rfhpf, p.rf32, p.rf32)
}

func (p *pipeline) syncLevels() error {
	threshold := (p.sys.SyncHz + p.sys.BlankHz) / 2
	p.pulses = detectPulses(p.filtered, threshold)

	mhz := p.pc.SampleFreqMHz()
	levels, err := pulse.Levels(p.filtered, p.pulses, mhz, 10*mhz, p.sys.LineUS/2*mhz)
	if err != nil {
		return err
	}
	p.levels = levels
	return nil
}

// syncLevel returns the median broad-pulse level.
func (p *pipeline) syncLevel() (float64, bool) {
	means := make([]float64, len(p.levels))
	for i, l := range p.levels {
		means[i] = l.Mean
	}
	return pulse.SyncLevel(means)
}

// trackError returns the mean absolute difference between a demodulated
// block and the frequency track that generated it, skipping guard samples
// at both ends where the FFT-based analytic signal wraps around.
func (p *pipeline) trackError(out []float64, guard int) float64 {
	if len(out) <= 2*guard+1 {
		return math.NaN()
	}

	sum := 0.0
	for i := guard + 1; i < len(out)-guard; i++ {
		sum += math.Abs(out[i] - p.track[i-1])
	}
	return sum / float64(len(out)-2*guard-1)
}

// detectPulses returns the runs where x stays below threshold. Runs cut
// by the block edges are dropped.
func detectPulses(x []float64, threshold float64) []pulse.Window {
	var (
		pulses []pulse.Window
		start  = -1
	)

	for i, v := range x {
		switch {
		case v < threshold && start < 0:
			start = i
		case v >= threshold && start >= 0:
			if start > 0 {
				pulses = append(pulses, pulse.Window{Start: start, Len: i - start})
			}
			start = -1
		}
	}

	return pulses
}
