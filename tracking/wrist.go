package tracking

import "github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"

// WristSmoother smooths the root position of a hand with a 3-axis One-Euro
// filter.
//
// Several consumers may read the same tracking frame; the position is
// filtered only the first time a frame is seen and the cached result is
// written to every later reader of that frame.
type WristSmoother struct {
	props    oneeuro.Properties
	filter   *oneeuro.Vector3
	smoothed Pose

	lastFrame   int64
	hasSmoothed bool
}

// NewWristSmoother constructs a smoother with the given parameters.
func NewWristSmoother(props oneeuro.Properties) (*WristSmoother, error) {
	f, err := oneeuro.NewVector3(oneeuro.WithProperties(props))
	if err != nil {
		return nil, err
	}

	return &WristSmoother{props: props, filter: f}, nil
}

// Properties returns the parameters used for the next filtered frame.
func (w *WristSmoother) Properties() oneeuro.Properties { return w.props }

// SetProperties changes the parameters. They are applied when the next new
// frame is filtered.
func (w *WristSmoother) SetProperties(props oneeuro.Properties) error {
	if err := props.Validate(); err != nil {
		return err
	}

	w.props = props

	return nil
}

// Apply smooths data in place. dt is the time in seconds since the previous
// call. Untracked frames are left unchanged.
func (w *WristSmoother) Apply(data *HandData, dt float64) {
	if data == nil || !data.Tracked {
		return
	}

	if !w.hasSmoothed || data.Frame > w.lastFrame {
		// Validated in SetProperties.
		_ = w.filter.SetProperties(w.props)

		w.smoothed = Pose{
			Position: w.filter.Step(data.Root.Position, dt),
			Rotation: data.Root.Rotation,
		}
		w.lastFrame = data.Frame
		w.hasSmoothed = true
	}

	data.Root = w.smoothed
	data.RootOrigin = OriginFilteredTrackedPose
}

// Reset forgets the filter state and the last filtered frame.
func (w *WristSmoother) Reset() {
	w.filter.Reset()
	w.smoothed = Pose{}
	w.lastFrame = 0
	w.hasSmoothed = false
}
