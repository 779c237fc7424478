package oneeuro

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// State contains explicit filter runtime state for save/restore workflows.
type State struct {
	// Value is the previous filtered output.
	Value float64
	// Raw is the previous accepted raw sample.
	Raw float64
	// Derivative is the previous smoothed derivative estimate (units/s).
	Derivative float64
	// Timestamp is the time of the previous accepted sample in seconds.
	Timestamp float64
	// Primed is false until the first sample has been accepted.
	Primed bool
}

// Filter is a scalar One-Euro filter.
//
// The zero value is not usable; construct filters with New.
type Filter struct {
	props Properties
	state State
}

// New constructs a scalar One-Euro filter. Without options it uses
// DefaultProperties.
func New(opts ...Option) (*Filter, error) {
	props, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Filter{props: props}, nil
}

// Properties returns the current parameters.
func (f *Filter) Properties() Properties { return f.props }

// MinCutoff returns the zero-speed cutoff in Hz.
func (f *Filter) MinCutoff() float64 { return f.props.MinCutoff }

// Beta returns the speed coefficient.
func (f *Filter) Beta() float64 { return f.props.Beta }

// DerivativeCutoff returns the cutoff in Hz of the speed estimate filter.
func (f *Filter) DerivativeCutoff() float64 { return f.props.DerivativeCutoff }

// SetProperties replaces the parameters. Accumulated state is kept and the
// new values take effect on the next step.
func (f *Filter) SetProperties(props Properties) error {
	if err := props.Validate(); err != nil {
		return err
	}

	f.props = props

	return nil
}

// Value returns the latest filtered value, or 0 before the first sample.
func (f *Filter) Value() float64 { return f.state.Value }

// Primed reports whether the filter has accepted its first sample.
func (f *Filter) Primed() bool { return f.state.Primed }

// Reset clears the filter state. The next sample passes through unchanged.
func (f *Filter) Reset() {
	f.state = State{}
}

// State returns a copy of the current filter state.
func (f *Filter) State() State {
	return f.state
}

// SetState restores an externally saved filter state.
func (f *Filter) SetState(state State) error {
	if !core.IsFinite(state.Value) || !core.IsFinite(state.Raw) ||
		!core.IsFinite(state.Derivative) || !core.IsFinite(state.Timestamp) {
		return fmt.Errorf("oneeuro: state contains NaN or Inf")
	}

	f.state = state

	return nil
}

// Step filters one raw sample taken dt seconds after the previous one.
//
// The first accepted sample is returned unchanged. A non-positive or
// non-finite dt, or a non-finite sample, leaves the state untouched and
// returns the previous filtered value. Before the first accepted sample there
// is no previous value, so a non-finite sample is returned as is.
func (f *Filter) Step(raw, dt float64) float64 {
	if !core.IsFinite(raw) {
		return f.rejected(raw)
	}

	if !f.state.Primed {
		f.prime(raw, 0)
		return raw
	}

	if !core.IsFinite(dt) || dt <= 0 {
		return f.state.Value
	}

	value := f.advance(raw, dt)

	// The accumulated time saturates so the state stays restorable.
	f.state.Timestamp += dt
	if f.state.Timestamp > math.MaxFloat64 {
		f.state.Timestamp = math.MaxFloat64
	}

	return value
}

// StepAt filters one raw sample taken at timestamp seconds. Timestamps must
// be monotonically non-decreasing; a timestamp that does not advance past the
// previous accepted one is handled like dt <= 0 in Step.
func (f *Filter) StepAt(raw, timestamp float64) float64 {
	if !core.IsFinite(raw) || !core.IsFinite(timestamp) {
		return f.rejected(raw)
	}

	if !f.state.Primed {
		f.prime(raw, timestamp)
		return raw
	}

	dt := timestamp - f.state.Timestamp
	if dt <= 0 {
		return f.state.Value
	}

	value := f.advance(raw, dt)
	f.state.Timestamp = timestamp

	return value
}

// ProcessInPlace filters a block of samples spaced dt seconds apart in place.
func (f *Filter) ProcessInPlace(buf []float64, dt float64) {
	for i := range buf {
		buf[i] = f.Step(buf[i], dt)
	}
}

// ProcessTo filters src into dst with a fixed interval of dt seconds.
// Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64, dt float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.Step(x, dt)
	}
}

// rejected returns the output for a sample that is not accepted.
func (f *Filter) rejected(raw float64) float64 {
	if !f.state.Primed {
		return raw
	}

	return f.state.Value
}

func (f *Filter) prime(raw, timestamp float64) {
	f.state = State{
		Value:      raw,
		Raw:        raw,
		Derivative: 0,
		Timestamp:  timestamp,
		Primed:     true,
	}
}

func (f *Filter) advance(raw, dt float64) float64 {
	s := &f.state

	rawDerivative := (raw - s.Raw) / dt
	derivativeAlpha := smoothingFactor(f.props.DerivativeCutoff, dt)
	derivative := derivativeAlpha*rawDerivative + (1-derivativeAlpha)*s.Derivative

	cutoff := f.props.MinCutoff + f.props.Beta*math.Abs(derivative)
	alpha := smoothingFactor(cutoff, dt)
	value := alpha*raw + (1-alpha)*s.Value

	// Overflowing speeds (huge jumps over tiny intervals) degrade to a
	// passthrough of the raw sample instead of poisoning the state.
	if !core.IsFinite(derivative) || !core.IsFinite(value) {
		derivative = 0
		value = raw
	}

	s.Raw = raw
	s.Value = value
	s.Derivative = core.FlushDenormals(derivative)

	return value
}

// smoothingFactor returns the exponential smoothing weight of the newest
// sample for a one-pole low-pass with the given cutoff, sampled dt seconds
// after the previous sample. It lies in (0, 1) for finite positive inputs.
func smoothingFactor(cutoffHz, dt float64) float64 {
	tau := 1 / (2 * math.Pi * cutoffHz)
	return 1 / (1 + tau/dt)
}
