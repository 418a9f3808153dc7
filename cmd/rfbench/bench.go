package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-rfdemod/dsp/demod"
)

type stage struct {
	name string
	run  func() error
}

// stageTiming holds per-iteration wall times in seconds.
type stageTiming struct {
	name  string
	times []float64
}

type summary struct {
	mean, median, std, min, max float64
}

func summarize(times []float64) summary {
	sorted := slices.Clone(times)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}

	return summary{
		mean:   mean,
		median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		std:    std,
		min:    floats.Min(sorted),
		max:    floats.Max(sorted),
	}
}

func (p *pipeline) stages() []stage {
	st := []stage{{name: "analytic", run: p.analytic}}

	if p.cfg.Method != "fast" {
		st = append(st, stage{name: "demod-exact", run: func() error { return p.demodulate(demod.MethodExact) }})
	}
	if p.cfg.Method != "exact" {
		st = append(st, stage{name: "demod-fast", run: func() error { return p.demodulate(demod.MethodFast) }})
	}

	st = append(st,
		stage{name: "sosfiltfilt", run: p.filter},
		stage{name: "sync-levels", run: p.syncLevels},
	)

	if p.rfhpf != nil {
		st = append(st, stage{name: "rf-highpass-f32", run: p.highpassRF})
	}

	return st
}

// run executes every stage once untimed, then blocks timed iterations.
func (p *pipeline) run(blocks int) ([]stageTiming, error) {
	stages := p.stages()

	for _, s := range stages {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}

	timings := make([]stageTiming, len(stages))
	for i, s := range stages {
		timings[i] = stageTiming{name: s.name, times: make([]float64, 0, blocks)}
		for range blocks {
			start := time.Now()
			if err := s.run(); err != nil {
				return nil, fmt.Errorf("%s: %w", s.name, err)
			}
			timings[i].times = append(timings[i].times, time.Since(start).Seconds())
		}
	}

	return timings, nil
}

func (p *pipeline) report(w io.Writer, timings []stageTiming) error {
	fmt.Fprintf(w, "system %s, %d samples/block (%.1f us), %d blocks\n\n",
		p.cfg.System, p.cfg.BlockLen, float64(p.cfg.BlockLen)/p.pc.SampleFreqMHz(), p.cfg.Blocks)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "stage\tmean ms\tmedian ms\tstd ms\tmin ms\tmax ms\tMS/s\t")

	total := 0.0
	for _, t := range timings {
		s := summarize(t.times)
		total += s.mean
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\t\n",
			t.name, s.mean*1e3, s.median*1e3, s.std*1e3, s.min*1e3, s.max*1e3,
			float64(p.cfg.BlockLen)/s.mean/1e6)
	}
	fmt.Fprintf(tw, "total\t%.3f\t\t\t\t\t%.1f\t\n", total*1e3, float64(p.cfg.BlockLen)/total/1e6)

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	guard := int(p.sys.LineUS * p.pc.SampleFreqMHz())
	if p.exact != nil {
		fmt.Fprintf(w, "exact demod error: %.1f Hz mean abs\n", p.trackError(p.exact, guard))
	}
	if p.fast != nil {
		fmt.Fprintf(w, "fast demod error:  %.1f Hz mean abs\n", p.trackError(p.fast, guard))
	}

	fmt.Fprintf(w, "pulses: %d detected, %d in vsync band\n", len(p.pulses), len(p.levels))
	if level, ok := p.syncLevel(); ok {
		fmt.Fprintf(w, "sync level: %.4f MHz (expected %.4f MHz)\n", level/1e6, p.sys.SyncHz/1e6)
	} else {
		fmt.Fprintln(w, "sync level: no vsync pulses found")
	}

	return nil
}
