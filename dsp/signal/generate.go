package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Generator creates deterministic tracking test signals from a shared
// sampling configuration.
type Generator struct {
	cfg  core.SamplingConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise and frame jitter.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.SamplingOption) *Generator {
	return &Generator{
		cfg:  core.ApplySamplingOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(samplingOpts []core.SamplingOption, opts ...Option) *Generator {
	g := NewGenerator(samplingOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator sampling configuration.
func (g *Generator) Config() core.SamplingConfig {
	return g.cfg
}

// Seed returns the random seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the random seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Deltas returns n frame intervals in seconds. Without frame jitter every
// interval is 1/RateHz; with jitter j each interval is drawn uniformly from
// [(1-j)/RateHz, (1+j)/RateHz].
func (g *Generator) Deltas(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("delta count must be > 0: %d", n)
	}
	if g.cfg.RateHz <= 0 {
		return nil, fmt.Errorf("rate must be > 0: %f", g.cfg.RateHz)
	}
	nominal := g.cfg.Interval()
	out := make([]float64, n)
	if g.cfg.FrameJitter == 0 {
		for i := range out {
			out[i] = nominal
		}
		return out, nil
	}
	rng := rand.New(rand.NewSource(g.seed + 1))
	for i := range out {
		out[i] = nominal * (1 + g.cfg.FrameJitter*(rng.Float64()*2-1))
	}
	return out, nil
}

// Timestamps returns the cumulative sample times for deltas, starting at 0.
// The first delta is the interval before the second sample.
func Timestamps(deltas []float64) []float64 {
	out := make([]float64, len(deltas))
	t := 0.0
	for i := range deltas {
		if i > 0 {
			t += deltas[i]
		}
		out[i] = t
	}
	return out
}

// Sine samples amplitude*sin(2π·freqHz·t) at the given timestamps.
func Sine(timestamps []float64, freqHz, amplitude float64) []float64 {
	out := make([]float64, len(timestamps))
	w := 2 * math.Pi * freqHz
	for i, t := range timestamps {
		out[i] = amplitude * math.Sin(w*t)
	}
	return out
}

// Sine generates a fixed-rate sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.RateHz <= 0 {
		return nil, fmt.Errorf("sine rate must be > 0: %f", g.cfg.RateHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.RateHz
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Step generates a step from from to to at sample index at.
func (g *Generator) Step(from, to float64, at, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if at < 0 || at > samples {
		return nil, fmt.Errorf("step index must be in [0, %d]: %d", samples, at)
	}
	out := make([]float64, samples)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out, nil
}

// NoisySine returns a clean sine sampled at the generator's (possibly
// jittered) frame times together with its noisy version and the frame
// intervals used. It models a slow tracked motion with sensor jitter.
func (g *Generator) NoisySine(freqHz, amplitude, noiseAmplitude float64, samples int) (clean, noisy, deltas []float64, err error) {
	deltas, err = g.Deltas(samples)
	if err != nil {
		return nil, nil, nil, err
	}
	noise, err := g.WhiteNoise(noiseAmplitude, samples)
	if err != nil {
		return nil, nil, nil, err
	}
	clean = Sine(Timestamps(deltas), freqHz, amplitude)
	noisy = make([]float64, samples)
	for i := range clean {
		noisy[i] = clean[i] + noise[i]
	}
	return clean, noisy, deltas, nil
}
