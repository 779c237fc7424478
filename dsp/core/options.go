package core

import "math"

// SamplingConfig describes how a tracked signal is sampled.
//
// RateHz is the nominal tick rate (for example the display refresh rate of
// the host application). FrameJitter is the relative spread of individual
// frame intervals around 1/RateHz, in [0, 0.9]; zero means fixed-tick sampling.
type SamplingConfig struct {
	RateHz      float64
	FrameJitter float64
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns a 60 Hz fixed-tick configuration.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		RateHz:      60,
		FrameJitter: 0,
	}
}

// WithRate sets the nominal tick rate in Hz.
func WithRate(rateHz float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if rateHz > 0 && IsFinite(rateHz) {
			cfg.RateHz = rateHz
		}
	}
}

// MaxFrameJitter is the largest supported relative frame interval spread.
// Larger spreads could produce non-positive intervals.
const MaxFrameJitter = 0.9

// WithFrameJitter sets the relative frame interval spread, clamped to
// [0, MaxFrameJitter]. NaN is ignored.
func WithFrameJitter(fraction float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if math.IsNaN(fraction) {
			return
		}

		cfg.FrameJitter = Clamp(fraction, 0, MaxFrameJitter)
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Interval returns the nominal frame interval in seconds.
func (c SamplingConfig) Interval() float64 {
	if c.RateHz <= 0 {
		return 0
	}
	return 1 / c.RateHz
}
