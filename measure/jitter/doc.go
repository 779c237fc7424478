// Package jitter measures how well a smoother suppresses tracking jitter.
//
// It reports the RMS of the high-frequency band of a signal (obtained from a
// Hann-windowed FFT), the RMS residual against a reference, and the lag a
// smoother introduces, estimated from the normalized cross-correlation peak.
package jitter
