package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine samples amplitude*sin(2π·freqHz·t) at rateHz.
func DeterministicSine(freqHz, rateHz, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / rateHz
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// StepSignal holds from for the first at samples and to afterwards.
func StepSignal(length, at int, from, to float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// AddInto adds noise to signal element-wise and returns signal.
func AddInto(signal, noise []float64) []float64 {
	n := min(len(signal), len(noise))
	for i := range n {
		signal[i] += noise[i]
	}
	return signal
}
