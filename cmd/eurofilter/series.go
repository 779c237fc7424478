package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
	"github.com/cwbudde/algo-smooth/dsp/signal"
)

// series is a multi-channel time series. channels[c][i] is channel c at
// times[i].
type series struct {
	header   []string
	times    []float64
	channels [][]float64
}

func (s *series) samples() int { return len(s.times) }

func (s *series) channelName(c int) string {
	if len(s.header) == len(s.channels)+1 {
		return s.header[c+1]
	}

	return fmt.Sprintf("ch%d", c+1)
}

func readCSV(r io.Reader) (*series, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	s := &series{}
	line := 0

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV: %w", err)
		}
		line++

		if len(rec) < 2 {
			return nil, fmt.Errorf("read CSV: line %d: need a time column and at least one channel", line)
		}

		if line == 1 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
				s.header = append([]string(nil), rec...)
				continue
			}
		}

		if s.channels == nil {
			s.channels = make([][]float64, len(rec)-1)
		}

		values := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("read CSV: line %d column %d: %w", line, i+1, err)
			}
			values[i] = v
		}

		if !core.IsFinite(values[0]) {
			return nil, fmt.Errorf("read CSV: line %d: time must be finite", line)
		}

		s.times = append(s.times, values[0])
		for c := range s.channels {
			s.channels[c] = append(s.channels[c], values[c+1])
		}
	}

	if s.samples() == 0 {
		return nil, fmt.Errorf("read CSV: no samples")
	}

	return s, nil
}

func writeCSV(w io.Writer, s *series, filtered [][]float64) error {
	cw := csv.NewWriter(w)

	if s.header != nil {
		if err := cw.Write(s.header); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
	}

	row := make([]string, len(filtered)+1)
	for i, t := range s.times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for c := range filtered {
			row[c+1] = strconv.FormatFloat(filtered[c][i], 'g', -1, 64)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}

	return nil
}

// filterSeries runs one One-Euro filter per channel over s. It also returns
// the number of rows whose time did not advance past the last accepted row.
func filterSeries(s *series, props oneeuro.Properties) ([][]float64, int, error) {
	n := s.samples()
	channels := len(s.channels)

	m, err := oneeuro.NewMulti(channels, oneeuro.WithProperties(props))
	if err != nil {
		return nil, 0, err
	}

	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, n)
	}

	src := make([]float64, channels)
	dst := make([]float64, channels)
	repeated := 0
	last := 0.0

	for i, t := range s.times {
		if i > 0 && t <= last {
			repeated++
		} else {
			last = t
		}

		for c := range src {
			src[c] = s.channels[c][i]
		}

		m.StepAt(dst, src, t)

		for c := range dst {
			out[c][i] = dst[c]
		}
	}

	return out, repeated, nil
}

const (
	synthRateHz   = 60.0
	synthFreqHz   = 0.5
	synthAmp      = 0.05
	synthNoiseAmp = 0.003
)

// synthSeries generates a slow noisy sine sampled at a jittered 60 Hz frame
// rate. The clean sine is returned as reference.
func synthSeries(samples int, frameJitter float64, seed int64) (*series, [][]float64, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.SamplingOption{core.WithRate(synthRateHz), core.WithFrameJitter(frameJitter)},
		signal.WithSeed(seed),
	)

	clean, noisy, deltas, err := gen.NoisySine(synthFreqHz, synthAmp, synthNoiseAmp, samples)
	if err != nil {
		return nil, nil, fmt.Errorf("synth: %w", err)
	}

	s := &series{
		header:   []string{"time", "position"},
		times:    signal.Timestamps(deltas),
		channels: [][]float64{noisy},
	}

	return s, [][]float64{clean}, nil
}
