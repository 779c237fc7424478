// Package time provides time-domain statistics for tracked signals.
package time

import "math"

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RemoveDC subtracts the mean from signal in place and returns the removed
// offset.
func RemoveDC(signal []float64) float64 {
	dc := DC(signal)
	for i := range signal {
		signal[i] -= dc
	}

	return dc
}

// Correlation returns the Pearson correlation coefficient of a and b over
// their common length. It returns 0 when either input is constant or shorter
// than two samples.
func Correlation(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n < 2 {
		return 0
	}

	a, b = a[:n], b[:n]
	meanA := DC(a)
	meanB := DC(b)

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0
	}

	return cov / math.Sqrt(varA*varB)
}
