package main

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rfdemod/dsp/core"
)

// Config holds the benchmark settings. Every field can come from the YAML
// file given with -config; command-line flags override the file.
type Config struct {
	System        string  `yaml:"system"`         // NTSC or PAL
	SampleRate    float64 `yaml:"sample_rate"`    // capture rate in Hz
	BlockLen      int     `yaml:"block_len"`      // samples per block, power of two
	Blocks        int     `yaml:"blocks"`         // timed iterations per stage
	Method        string  `yaml:"method"`         // exact, fast or both
	LowpassHz     float64 `yaml:"lowpass_hz"`     // zero-phase video lowpass cutoff
	LowpassOrder  int     `yaml:"lowpass_order"`  // Butterworth poles in the lowpass
	RFHighpassHz  float64 `yaml:"rf_highpass_hz"` // single-precision RF highpass cutoff, 0 disables
	NoiseLevel    float64 `yaml:"noise_level"`    // white noise peak relative to the carrier
	CarrierLevel  float64 `yaml:"carrier_level"`  // carrier peak
	Seed          int64   `yaml:"seed"`           // noise seed
	WAVPath       string  `yaml:"wav"`            // optional demodulated output
	SummaryFormat string  `yaml:"summary_format"` // table or none
}

var (
	errConfig = errors.New("rfbench: invalid config")
	methods   = []string{"exact", "fast", "both"}
)

// DefaultConfig mirrors a 40 MHz NTSC laserdisc capture.
func DefaultConfig() Config {
	pc := core.DefaultProcessorConfig()
	return Config{
		System:        "NTSC",
		SampleRate:    pc.SampleRate,
		BlockLen:      pc.BlockSize,
		Blocks:        20,
		Method:        "both",
		LowpassHz:     4.2e6,
		LowpassOrder:  4,
		RFHighpassHz:  3.5e6,
		NoiseLevel:    0.02,
		CarrierLevel:  1,
		Seed:          1,
		SummaryFormat: "table",
	}
}

// LoadConfig decodes a YAML file over cfg. Keys missing from the file keep
// their current value.
func LoadConfig(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Validate checks the settings the pipeline depends on.
func (c Config) Validate() error {
	if _, ok := systems[strings.ToUpper(c.System)]; !ok {
		return fmt.Errorf("%w: unknown system %q", errConfig, c.System)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be > 0, got %v", errConfig, c.SampleRate)
	}
	if c.BlockLen < 2 || bits.OnesCount(uint(c.BlockLen)) != 1 {
		return fmt.Errorf("%w: block_len must be a power of two, got %d", errConfig, c.BlockLen)
	}
	if c.Blocks <= 0 {
		return fmt.Errorf("%w: blocks must be > 0, got %d", errConfig, c.Blocks)
	}
	if !slices.Contains(methods, c.Method) {
		return fmt.Errorf("%w: method must be one of %v, got %q", errConfig, methods, c.Method)
	}
	if c.LowpassHz <= 0 || c.LowpassHz >= c.SampleRate/2 {
		return fmt.Errorf("%w: lowpass_hz must be in (0, %v), got %v", errConfig, c.SampleRate/2, c.LowpassHz)
	}
	if c.LowpassOrder <= 0 {
		return fmt.Errorf("%w: lowpass_order must be > 0, got %d", errConfig, c.LowpassOrder)
	}
	if c.RFHighpassHz < 0 || c.RFHighpassHz >= c.SampleRate/2 {
		return fmt.Errorf("%w: rf_highpass_hz must be in [0, %v), got %v", errConfig, c.SampleRate/2, c.RFHighpassHz)
	}
	if c.NoiseLevel < 0 {
		return fmt.Errorf("%w: noise_level must be >= 0, got %v", errConfig, c.NoiseLevel)
	}
	if c.CarrierLevel <= 0 {
		return fmt.Errorf("%w: carrier_level must be > 0, got %v", errConfig, c.CarrierLevel)
	}
	if c.SummaryFormat != "table" && c.SummaryFormat != "none" {
		return fmt.Errorf("%w: summary_format must be table or none, got %q", errConfig, c.SummaryFormat)
	}
	return nil
}

func (c Config) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(c.SampleRate),
		core.WithBlockSize(c.BlockLen),
	}
}
