package theme

import "github.com/go-drift/circulargraph/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme defines the color palette a theme is derived from.
type ColorScheme struct {
	Primary          graphics.Color
	OnPrimary        graphics.Color
	Surface          graphics.Color
	SurfaceVariant   graphics.Color
	OnSurfaceVariant graphics.Color
	Outline          graphics.Color
	Background       graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x67, 0x50, 0xA4),
		OnPrimary:        graphics.RGB(0xFF, 0xFF, 0xFF),
		Surface:          graphics.RGB(0xFE, 0xF7, 0xFF),
		SurfaceVariant:   graphics.RGB(0xE7, 0xE0, 0xEC),
		OnSurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:          graphics.RGB(0x79, 0x74, 0x7E),
		Background:       graphics.RGB(0xFE, 0xF7, 0xFF),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0xD0, 0xBC, 0xFF),
		OnPrimary:        graphics.RGB(0x38, 0x1E, 0x72),
		Surface:          graphics.RGB(0x14, 0x12, 0x18),
		SurfaceVariant:   graphics.RGB(0x49, 0x45, 0x4F),
		OnSurfaceVariant: graphics.RGB(0xCA, 0xC4, 0xD0),
		Outline:          graphics.RGB(0x93, 0x8F, 0x99),
		Background:       graphics.RGB(0x14, 0x12, 0x18),
	}
}
