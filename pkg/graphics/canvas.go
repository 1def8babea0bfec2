package graphics

// Canvas records or renders drawing commands.
//
// Angles are in radians with zero at the 3 o'clock position; positive
// angles sweep clockwise because the y axis points down.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawArc draws an arc of the oval inscribed in the given rect.
	// When useCenter is true the arc is closed through the oval center
	// (a wedge); otherwise only the arc itself is drawn.
	DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
