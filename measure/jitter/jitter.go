package jitter

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/window"
	timestats "github.com/cwbudde/algo-smooth/stats/time"
)

const (
	defaultSampleRate = 60.0
	minFFTSize        = 16
)

// Config holds jitter analysis parameters.
type Config struct {
	// SampleRate is the nominal tick rate in Hz. Default 60.
	SampleRate float64
	// SplitHz separates motion (below) from jitter (above). Default SampleRate/8.
	SplitHz float64
	// MaxLag bounds the lag search in samples. Default SampleRate/4.
	MaxLag int
	// Window is the analysis window of the spectral measurement. Default Hann.
	Window window.Type
	// Reference is the optional noise-free signal. When its length matches
	// the analysed signals, ResidualInput and ResidualOutput are measured
	// against it; otherwise ResidualOutput is measured against the raw input.
	Reference []float64
}

// Result holds jitter measurement results.
//
//nolint:revive
type Result struct {
	HighFreqInput  float64
	HighFreqOutput float64
	Reduction_dB   float64
	ResidualInput  float64
	ResidualOutput float64
	LagSamples     int
	LagSeconds     float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 || !core.IsFinite(cfg.SampleRate) {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.SplitHz <= 0 || cfg.SplitHz >= cfg.SampleRate/2 {
		cfg.SplitHz = cfg.SampleRate / 8
	}

	if cfg.MaxLag <= 0 {
		cfg.MaxLag = max(1, int(cfg.SampleRate/4))
	}

	return cfg
}

// Analyze compares a raw signal with its filtered version.
// Both slices must have the same length; otherwise a zero Result is returned.
func Analyze(raw, filtered []float64, cfg Config) Result {
	if len(raw) == 0 || len(raw) != len(filtered) {
		return Result{}
	}

	cfg = normalizeConfig(cfg)

	res := Result{
		HighFreqInput:  HighFrequencyRMSWindowed(raw, cfg.SampleRate, cfg.SplitHz, cfg.Window),
		HighFreqOutput: HighFrequencyRMSWindowed(filtered, cfg.SampleRate, cfg.SplitHz, cfg.Window),
	}

	switch {
	case res.HighFreqOutput > 0:
		res.Reduction_dB = core.LinearToDB(res.HighFreqInput / res.HighFreqOutput)
	case res.HighFreqInput > 0:
		res.Reduction_dB = math.Inf(1)
	}

	if len(cfg.Reference) == len(raw) {
		res.ResidualInput = ResidualRMS(raw, cfg.Reference)
		res.ResidualOutput = ResidualRMS(filtered, cfg.Reference)
	} else {
		res.ResidualOutput = ResidualRMS(filtered, raw)
	}

	res.LagSamples = EstimateLag(raw, filtered, cfg.MaxLag)
	res.LagSeconds = float64(res.LagSamples) / cfg.SampleRate

	return res
}

// ResidualRMS returns sqrt(mean((signal-reference)^2)) over the common length.
func ResidualRMS(signal, reference []float64) float64 {
	n := min(len(signal), len(reference))
	if n == 0 {
		return 0
	}

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = signal[i] - reference[i]
	}

	return timestats.RMS(diff)
}

// HighFrequencyRMS estimates the RMS of the signal content above splitHz
// using a periodic Hann window. See HighFrequencyRMSWindowed.
func HighFrequencyRMS(signal []float64, sampleRate, splitHz float64) float64 {
	return HighFrequencyRMSWindowed(signal, sampleRate, splitHz, window.TypeHann)
}

// HighFrequencyRMSWindowed estimates the RMS of the signal content above
// splitHz.
//
// The analysis uses the last power-of-two block of the signal (so a warm-up
// prefix is ignored), removes its mean, applies the periodic window and
// integrates the one-sided power spectrum above splitHz with Parseval's
// theorem, corrected for the window power gain. Returns 0 for signals shorter
// than 16 samples.
func HighFrequencyRMSWindowed(signal []float64, sampleRate, splitHz float64, w window.Type) float64 {
	n := largestPowerOfTwo(len(signal))
	if n < minFFTSize || sampleRate <= 0 {
		return 0
	}

	block := append([]float64(nil), signal[len(signal)-n:]...)
	timestats.RemoveDC(block)

	coeffs := window.Generate(w, n, window.WithPeriodic())
	if err := window.ApplyCoefficientsInPlace(block, coeffs); err != nil {
		return 0
	}

	powerGain, err := window.PowerGain(coeffs)
	if err != nil || powerGain == 0 {
		return 0
	}

	in := make([]complex128, n)
	for i, x := range block {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	binHz := sampleRate / float64(n)
	sum := 0.0
	for k := 1; k < bins; k++ {
		if float64(k)*binHz <= splitHz {
			continue
		}

		if k == n/2 {
			sum += power[k]
		} else {
			sum += 2 * power[k]
		}
	}

	return math.Sqrt(sum / (float64(n) * float64(n) * powerGain))
}

// EstimateLag returns the delay in samples, within [0, maxLag], at which
// filtered best matches raw by normalized cross-correlation. Ties resolve to
// the smaller lag.
func EstimateLag(raw, filtered []float64, maxLag int) int {
	n := min(len(raw), len(filtered))
	if n < 2 || maxLag <= 0 {
		return 0
	}

	maxLag = min(maxLag, n-2)

	best := 0
	bestCorr := math.Inf(-1)
	for lag := 0; lag <= maxLag; lag++ {
		c := timestats.Correlation(raw[:n-lag], filtered[lag:n])
		if c > bestCorr {
			best = lag
			bestCorr = c
		}
	}

	return best
}

func largestPowerOfTwo(n int) int {
	if n < 1 {
		return 0
	}

	p := 1
	for p*2 <= n {
		p *= 2
	}

	return p
}
