// Package tracking applies One-Euro smoothing to per-frame hand tracking
// data.
//
// WristSmoother filters the hand root position at most once per tracking
// frame, leaving rotations untouched. Poller drives a WristSmoother from a
// Source on a fixed tick and hands smoothed frames to a sink.
package tracking
