package tracking

import "github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"

// Quat is an orientation quaternion stored as x, y, z, w.
type Quat [4]float64

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat { return Quat{0, 0, 0, 1} }

// Pose is a position and orientation.
type Pose struct {
	Position oneeuro.Vec3
	Rotation Quat
}

// Origin tells how a pose was produced.
type Origin int

const (
	// OriginNone marks a pose with no valid source.
	OriginNone Origin = iota
	// OriginTrackedPose marks a pose reported directly by the tracker.
	OriginTrackedPose
	// OriginFilteredTrackedPose marks a tracked pose that has been smoothed.
	OriginFilteredTrackedPose
)

// String implements fmt.Stringer.
func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginTrackedPose:
		return "tracked"
	case OriginFilteredTrackedPose:
		return "filtered"
	default:
		return "unknown"
	}
}

// HandData is one tracking frame of a hand.
type HandData struct {
	// Frame is the tracker frame index. It increases by one per frame.
	Frame int64
	// Tracked is false when the tracker lost the hand in this frame.
	Tracked bool
	// Root is the wrist pose.
	Root Pose
	// RootOrigin tells how Root was produced.
	RootOrigin Origin
}
