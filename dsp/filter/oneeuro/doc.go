// Package oneeuro provides the One-Euro adaptive low-pass filter for smoothing
// noisy, irregularly sampled tracking signals such as hand or pointer positions.
//
// The filter is an exponential smoother whose cutoff frequency follows the
// estimated speed of the signal:
//
//	cutoff = MinCutoff + Beta * |smoothed derivative|
//
// At rest the cutoff stays at MinCutoff and jitter is strongly attenuated.
// During fast motion the cutoff rises and lag shrinks. The smoothing factor is
// recomputed on every step from the elapsed interval, so the filter behaves the
// same at any frame rate, including variable ones.
//
// Provided types:
//   - Filter: one scalar channel, stepped with an explicit interval (Step) or
//     a monotonic timestamp (StepAt).
//   - Multi: N independent channels sharing one Properties value.
//   - Vector3: 3D helper over Multi for positions.
//
// All filters are stateful, deterministic, and owned by a single goroutine.
// Invalid intervals (zero, negative, NaN) and non-finite samples never
// propagate: the previous filtered value is returned and the state is kept.
//
// Reference: G. Casiez, N. Roussel, D. Vogel, "1€ Filter: A Simple
// Speed-based Low-pass Filter for Noisy Input in Interactive Systems", CHI 2012.
package oneeuro
