package oneeuro

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

const (
	defaultMinCutoff        = 1.0
	defaultBeta             = 0.0
	defaultDerivativeCutoff = 1.0

	handMinCutoff = 2.0
	handBeta      = 10.0
)

// Properties holds the tunable filter parameters.
type Properties struct {
	// MinCutoff is the cutoff frequency in Hz at zero speed. Lower values
	// remove more jitter at rest at the cost of more lag.
	MinCutoff float64
	// Beta scales how fast the cutoff grows with the estimated speed.
	Beta float64
	// DerivativeCutoff is the fixed cutoff in Hz of the filter that smooths
	// the speed estimate.
	DerivativeCutoff float64
}

// DefaultProperties returns MinCutoff=1 Hz, Beta=0, DerivativeCutoff=1 Hz.
// With Beta=0 the filter is a plain frame-rate independent low-pass.
func DefaultProperties() Properties {
	return Properties{
		MinCutoff:        defaultMinCutoff,
		Beta:             defaultBeta,
		DerivativeCutoff: defaultDerivativeCutoff,
	}
}

// HandPositionProperties returns the preset used for tracked wrist positions
// in meters: MinCutoff=2 Hz, Beta=10.
func HandPositionProperties() Properties {
	return Properties{
		MinCutoff:        handMinCutoff,
		Beta:             handBeta,
		DerivativeCutoff: defaultDerivativeCutoff,
	}
}

// Validate reports whether the properties keep the cutoff finite and > 0.
func (p Properties) Validate() error {
	if err := validateCutoff(p.MinCutoff, "min cutoff"); err != nil {
		return err
	}

	if !core.IsFinite(p.Beta) {
		return fmt.Errorf("oneeuro: beta must be finite: %v", p.Beta)
	}

	if p.Beta < 0 {
		return fmt.Errorf("oneeuro: beta must be >= 0: %f", p.Beta)
	}

	return validateCutoff(p.DerivativeCutoff, "derivative cutoff")
}

// Option mutates constructor configuration.
type Option func(*Properties) error

// WithMinCutoff sets the zero-speed cutoff in Hz. Must be finite and > 0.
func WithMinCutoff(hz float64) Option {
	return func(p *Properties) error {
		if err := validateCutoff(hz, "min cutoff"); err != nil {
			return err
		}

		p.MinCutoff = hz

		return nil
	}
}

// WithBeta sets the speed coefficient. Must be finite and >= 0.
func WithBeta(beta float64) Option {
	return func(p *Properties) error {
		if !core.IsFinite(beta) || beta < 0 {
			return fmt.Errorf("oneeuro: beta must be finite and >= 0: %v", beta)
		}

		p.Beta = beta

		return nil
	}
}

// WithDerivativeCutoff sets the cutoff in Hz of the speed estimate filter.
func WithDerivativeCutoff(hz float64) Option {
	return func(p *Properties) error {
		if err := validateCutoff(hz, "derivative cutoff"); err != nil {
			return err
		}

		p.DerivativeCutoff = hz

		return nil
	}
}

// WithProperties replaces all parameters at once.
func WithProperties(props Properties) Option {
	return func(p *Properties) error {
		if err := props.Validate(); err != nil {
			return err
		}

		*p = props

		return nil
	}
}

func applyOptions(opts []Option) (Properties, error) {
	props := DefaultProperties()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&props); err != nil {
			return Properties{}, err
		}
	}

	return props, nil
}

func validateCutoff(hz float64, name string) error {
	if !core.IsFinite(hz) {
		return fmt.Errorf("oneeuro: %s must be finite: %v", name, hz)
	}

	if hz <= 0 {
		return fmt.Errorf("oneeuro: %s must be > 0: %f", name, hz)
	}

	return nil
}
