// Package theme provides default styling for circular graphs.
package theme

// ThemeData contains the theme configuration graphs are styled from.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// CircularGraphTheme overrides the defaults derived from ColorScheme.
	CircularGraphTheme *CircularGraphThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// ForBrightness returns the default theme for the given brightness.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CircularGraphThemeOf returns the circular graph theme, deriving from
// ColorScheme if not set.
func (t *ThemeData) CircularGraphThemeOf() CircularGraphThemeData {
	if t.CircularGraphTheme != nil {
		return *t.CircularGraphTheme
	}
	return DefaultCircularGraphTheme(t.ColorScheme)
}
