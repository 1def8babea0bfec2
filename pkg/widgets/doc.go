// Package widgets provides the CircularGraph render object.
//
// A CircularGraph shows a value out of a maximum as a ring: a full track
// circle in one color and a fill arc in another, starting at 12 o'clock and
// sweeping clockwise by current/max of a full turn.
//
// # Construction
//
// Graphs are built from an explicit [Config]. Zero values mean zero, so most
// callers start from [DefaultConfig], which takes colors and stroke widths
// from the theme:
//
//	cfg := widgets.DefaultConfig(theme.DefaultLightTheme())
//	cfg.CurrentValue = 40
//	graph, err := widgets.NewCircularGraph(cfg)
//
// # Redraws
//
// Setters request a repaint from the attached [layout.PipelineOwner] only when
// the stored value actually changes. Several changes between two frames are
// painted once, with the last written values.
//
// # Seeking
//
// With Config.Seekable set, a pointer pressed near the ring line and dragged
// along it moves the current value. Dragging across 12 o'clock pins the value
// to the end the drag came from instead of wrapping around.
package widgets
