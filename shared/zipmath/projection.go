package zipmath

// ProjectControl maps a local-space drag position onto the min→max handle
// track and returns the normalized distance from min, in [0,1].
//
// The offset from min is projected onto the track axis, the projected point is
// clamped to the track's bounding box, and its distance from min is divided by
// the track length. A zero-length track always yields 0.
func ProjectControl(local, min, max Vec2) float64 {
	axis := max.Sub(min)
	lenSq := axis.Dot(&axis)
	if lenSq == 0 {
		return 0
	}

	offset := local.Sub(min)
	projected := axis.MulScalar(offset.Dot(&axis) / lenSq).Add(min)
	projected = VectorClamp(projected, min, max)

	return Clamp01(min.Distance(projected) / axis.Magnitude())
}

// HandlePosition returns the point on the track for a control value.
func HandlePosition(min, max Vec2, control float64) Vec2 {
	return Lerp(min, max, control)
}
