package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt  StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                  // Semicircle at endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// ParseStrokeCap parses "butt" or "round". Empty means CapButt.
func ParseStrokeCap(s string) (StrokeCap, error) {
	switch s {
	case "", "butt":
		return CapButt, nil
	case "round":
		return CapRound, nil
	default:
		return CapButt, fmt.Errorf("unknown stroke cap %q", s)
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (transparent color).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
	StrokeCap   StrokeCap  // How endpoints are drawn; 0 = CapButt
	AntiAlias   bool
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		AntiAlias:   true,
	}
}

// StrokePaint returns an anti-aliased stroke paint.
func StrokePaint(color Color, width float64) Paint {
	p := DefaultPaint()
	p.Style = PaintStyleStroke
	p.Color = color
	p.StrokeWidth = width
	return p
}
