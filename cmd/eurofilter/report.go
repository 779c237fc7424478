package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
	"github.com/cwbudde/algo-smooth/measure/jitter"
)

// sampleRate estimates the mean sample rate of s in Hz, or 0 when the time
// span is empty.
func sampleRate(s *series) float64 {
	n := s.samples()
	if n < 2 {
		return 0
	}

	span := s.times[n-1] - s.times[0]
	if span <= 0 {
		return 0
	}

	return float64(n-1) / span
}

func writeReport(w io.Writer, s *series, filtered, reference [][]float64, props oneeuro.Properties) error {
	rate := sampleRate(s)

	if _, err := fmt.Fprintf(w, "min-cutoff=%g beta=%g d-cutoff=%g samples=%d rate=%.2f Hz\n",
		props.MinCutoff, props.Beta, props.DerivativeCutoff, s.samples(), rate); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tHF in\tHF out\tReduction [dB]\tResidual in\tResidual out\tLag [samples]\tLag [ms]\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t------\t--------------\t-----------\t------------\t-------------\t--------\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for c := range s.channels {
		cfg := jitter.Config{SampleRate: rate}
		if c < len(reference) {
			cfg.Reference = reference[c]
		}

		res := jitter.Analyze(s.channels[c], filtered[c], cfg)

		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.2f\t%.6f\t%.6f\t%d\t%.1f\n",
			s.channelName(c),
			res.HighFreqInput,
			res.HighFreqOutput,
			res.Reduction_dB,
			res.ResidualInput,
			res.ResidualOutput,
			res.LagSamples,
			res.LagSeconds*1000,
		); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
