package oneeuro

import "fmt"

// Multi runs one independent scalar filter per channel. All channels share
// one Properties value; there is no cross-channel coupling.
type Multi struct {
	props    Properties
	channels []Filter
}

// NewMulti constructs a filter over the given number of channels.
func NewMulti(channels int, opts ...Option) (*Multi, error) {
	if channels < 1 {
		return nil, fmt.Errorf("oneeuro: channel count must be >= 1: %d", channels)
	}

	props, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	m := &Multi{
		props:    props,
		channels: make([]Filter, channels),
	}
	for i := range m.channels {
		m.channels[i].props = props
	}

	return m, nil
}

// Channels returns the channel count.
func (m *Multi) Channels() int { return len(m.channels) }

// Channel returns the filter of channel i.
func (m *Multi) Channel(i int) *Filter { return &m.channels[i] }

// Properties returns the shared parameters.
func (m *Multi) Properties() Properties { return m.props }

// SetProperties replaces the shared parameters on every channel without
// resetting state.
func (m *Multi) SetProperties(props Properties) error {
	if err := props.Validate(); err != nil {
		return err
	}

	m.props = props
	for i := range m.channels {
		m.channels[i].props = props
	}

	return nil
}

// Reset clears every channel state.
func (m *Multi) Reset() {
	for i := range m.channels {
		m.channels[i].Reset()
	}
}

// Step filters one multi-channel sample taken dt seconds after the previous
// one. Both slices must have Channels() elements; dst and src may alias.
func (m *Multi) Step(dst, src []float64, dt float64) {
	n := len(m.channels)
	_ = src[n-1]
	_ = dst[n-1]

	for i := range m.channels {
		dst[i] = m.channels[i].Step(src[i], dt)
	}
}

// StepAt filters one multi-channel sample taken at timestamp seconds.
func (m *Multi) StepAt(dst, src []float64, timestamp float64) {
	n := len(m.channels)
	_ = src[n-1]
	_ = dst[n-1]

	for i := range m.channels {
		dst[i] = m.channels[i].StepAt(src[i], timestamp)
	}
}

// Vec3 is a 3D vector, typically a position in meters.
type Vec3 [3]float64

// Vector3 filters 3D vectors with one scalar filter per axis.
type Vector3 struct {
	multi *Multi
}

// NewVector3 constructs a 3-axis filter.
func NewVector3(opts ...Option) (*Vector3, error) {
	m, err := NewMulti(3, opts...)
	if err != nil {
		return nil, err
	}

	return &Vector3{multi: m}, nil
}

// Axis returns the filter of axis i (0=x, 1=y, 2=z).
func (v *Vector3) Axis(i int) *Filter { return v.multi.Channel(i) }

// Properties returns the shared parameters.
func (v *Vector3) Properties() Properties { return v.multi.Properties() }

// SetProperties replaces the shared parameters without resetting state.
func (v *Vector3) SetProperties(props Properties) error {
	return v.multi.SetProperties(props)
}

// Reset clears all axis states.
func (v *Vector3) Reset() { v.multi.Reset() }

// Step filters one vector sample taken dt seconds after the previous one.
func (v *Vector3) Step(in Vec3, dt float64) Vec3 {
	var out Vec3
	v.multi.Step(out[:], in[:], dt)
	return out
}

// StepAt filters one vector sample taken at timestamp seconds.
func (v *Vector3) StepAt(in Vec3, timestamp float64) Vec3 {
	var out Vec3
	v.multi.StepAt(out[:], in[:], timestamp)
	return out
}
