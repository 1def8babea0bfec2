package ring

import (
	"math"

	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
)

// StartAngle is where the fill arc begins: 12 o'clock, in degrees measured
// clockwise from 3 o'clock.
const StartAngle = -90.0

// Geometry is the resolved drawing geometry of a ring.
type Geometry struct {
	// Bounds is the square the track stroke is centered on. The stroke
	// stays fully inside the widget because Bounds is inset by half the
	// track width.
	Bounds graphics.Rect
	// Center is the midpoint of Bounds.
	Center graphics.Offset
	// Radius is half the side of Bounds.
	Radius float64
}

// UniformPadding collapses per-side padding to the single value applied on
// every side, so the ring stays circular under asymmetric padding.
func UniformPadding(padding layout.EdgeInsets) float64 {
	return math.Max(0, padding.Max())
}

// ComputeLayout derives the ring geometry for a widget of the given size.
//
// The largest centered square that fits size is shrunk by padding and by
// half of trackWidth on each side. For a square of side S this gives a
// radius of (S-2P)/2 - W/2. An over-inset square collapses to a point.
func ComputeLayout(size graphics.Size, padding, trackWidth float64) Geometry {
	side := math.Max(0, size.ShortestSide())
	square := graphics.RectFromLTWH((size.Width-side)/2, (size.Height-side)/2, side, side)
	bounds := square.Deflate(padding + trackWidth/2)
	return Geometry{
		Bounds: bounds,
		Center: bounds.Center(),
		Radius: bounds.Width() / 2,
	}
}

// PointAt returns the point on the ring at the given sweep from StartAngle.
func (g Geometry) PointAt(sweep float64) graphics.Offset {
	angle := graphics.Radians(StartAngle + sweep)
	return graphics.Offset{
		X: g.Center.X + g.Radius*math.Cos(angle),
		Y: g.Center.Y + g.Radius*math.Sin(angle),
	}
}

// ValueAt maps a point to the value whose fill arc would end at the point's
// angle, rounded to the nearest integer in [0, max]. It returns false for
// the exact center, which has no angle.
func (g Geometry) ValueAt(point graphics.Offset, max int) (int, bool) {
	d := point.Sub(g.Center)
	if d.Distance() == 0 || max < 1 {
		return 0, false
	}
	deg := graphics.Degrees(math.Atan2(d.Y, d.X)) - StartAngle
	deg = math.Mod(deg+FullSweep, FullSweep)
	if FullSweep-deg < 1e-9 {
		// 12 o'clock seen from the left after rounding error.
		deg = 0
	}
	return clamp(int(math.Round(deg/FullSweep*float64(max))), max), true
}

// OnTrack reports whether point lies within slop of the ring line.
func (g Geometry) OnTrack(point graphics.Offset, slop float64) bool {
	return math.Abs(point.Sub(g.Center).Distance()-g.Radius) <= slop
}
