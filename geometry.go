package usedrag

// RelativeOrigin returns point expressed relative to the top-left corner of
// box.
func RelativeOrigin(point Vec2, box Rect) Vec2 {
	return point.Sub(box.TopLeft())
}

// Delta returns the offset of point from ref.
func Delta(point, ref Vec2) Vec2 {
	return point.Sub(ref)
}
