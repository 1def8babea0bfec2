package layout

import "math"

// EdgeInsets holds padding for each side of a box.
//
// Start and End are resolved against the text direction by the host; they
// only take part in Max, which is all a uniformly padded widget needs.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
	Start, End               float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Max returns the largest of all six inset values.
func (e EdgeInsets) Max() float64 {
	return math.Max(e.Left, math.Max(e.Top, math.Max(e.Right,
		math.Max(e.Bottom, math.Max(e.Start, e.End)))))
}
