package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = math.Pi / 2

// AddArc appends a circular arc centered at (cx, cy). Angles are in radians,
// zero at 3 o'clock, positive sweeping clockwise in screen coordinates.
// When moveTo is false the arc is joined to the current point with a line.
//
// The arc is split into segments of at most 90 degrees, each approximated by
// a cubic with control distance k = 4/3 * tan(angle/4).
func (p *Path) AddArc(cx, cy, radius, startAngle, sweepAngle float64, moveTo bool) {
	startX := cx + radius*math.Cos(startAngle)
	startY := cy + radius*math.Sin(startAngle)
	if moveTo {
		p.MoveTo(startX, startY)
	} else {
		p.LineTo(startX, startY)
	}

	remaining := sweepAngle
	current := startAngle
	for !floatEqual(remaining, 0) {
		segment := math.Max(-maxArcSegment, math.Min(maxArcSegment, remaining))
		k := (4.0 / 3.0) * math.Tan(segment/4)
		end := current + segment

		x0 := cx + radius*math.Cos(current)
		y0 := cy + radius*math.Sin(current)
		x3 := cx + radius*math.Cos(end)
		y3 := cy + radius*math.Sin(end)

		p.CubicTo(
			x0-k*radius*math.Sin(current), y0+k*radius*math.Cos(current),
			x3+k*radius*math.Sin(end), y3-k*radius*math.Cos(end),
			x3, y3,
		)

		current = end
		remaining -= segment
	}
}
