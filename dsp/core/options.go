package core

// ProcessorConfig defines common RF processing settings.
type ProcessorConfig struct {
	// SampleRate is the RF capture rate in Hz.
	SampleRate float64
	// BlockSize is the number of samples handled per kernel call.
	BlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults for a 40 MHz RF capture processed
// in 32k-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 40e6,
		BlockSize:  32 * 1024,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SampleFreqMHz returns the sample rate in MHz, which doubles as the number
// of samples per microsecond.
func (c ProcessorConfig) SampleFreqMHz() float64 {
	return c.SampleRate / 1e6
}
