package theme

import "github.com/go-drift/circulargraph/pkg/graphics"

// CircularGraphThemeData defines default styling for CircularGraph widgets.
type CircularGraphThemeData struct {
	// TrackColor is the color of the full background circle.
	TrackColor graphics.Color
	// FillColor is the color of the progress arc.
	FillColor graphics.Color
	// TrackWidth is the stroke width of the background circle. The fill arc
	// uses the same width unless configured otherwise.
	TrackWidth float64
	// Size is the default diameter of the widget.
	Size float64
}

// DefaultCircularGraphTheme returns CircularGraphThemeData derived from a ColorScheme.
func DefaultCircularGraphTheme(colors ColorScheme) CircularGraphThemeData {
	return CircularGraphThemeData{
		TrackColor: colors.SurfaceVariant,
		FillColor:  colors.Primary,
		TrackWidth: 8,
		Size:       96,
	}
}
