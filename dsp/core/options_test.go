package core

import (
	"math"
	"testing"
)

func TestApplySamplingOptions(t *testing.T) {
	cfg := ApplySamplingOptions(WithRate(90), WithFrameJitter(0.2))
	if cfg.RateHz != 90 {
		t.Fatalf("rate = %v, want 90", cfg.RateHz)
	}
	if cfg.FrameJitter != 0.2 {
		t.Fatalf("frame jitter = %v, want 0.2", cfg.FrameJitter)
	}
	if math.Abs(cfg.Interval()-1.0/90) > 1e-15 {
		t.Fatalf("interval = %v, want %v", cfg.Interval(), 1.0/90)
	}
}

func TestInvalidSamplingOptionsIgnored(t *testing.T) {
	cfg := ApplySamplingOptions(WithRate(0), WithRate(-5), WithRate(math.Inf(1)), WithFrameJitter(math.NaN()), nil)
	def := DefaultSamplingConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestIntervalZeroRate(t *testing.T) {
	var cfg SamplingConfig
	if got := cfg.Interval(); got != 0 {
		t.Fatalf("Interval() = %v, want 0", got)
	}
}

func TestFrameJitterClamped(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: -0.1, want: 0},
		{in: 0.35, want: 0.35},
		{in: 2, want: MaxFrameJitter},
		{in: math.Inf(1), want: MaxFrameJitter},
	}

	for _, tt := range tests {
		cfg := ApplySamplingOptions(WithFrameJitter(0.5), WithFrameJitter(tt.in))
		if cfg.FrameJitter != tt.want {
			t.Fatalf("WithFrameJitter(%v) = %v, want %v", tt.in, cfg.FrameJitter, tt.want)
		}
	}
}
