package widgets

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/circulargraph/pkg/animation"
	"github.com/go-drift/circulargraph/pkg/errors"
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
	"github.com/go-drift/circulargraph/pkg/ring"
	"github.com/go-drift/circulargraph/pkg/semantics"
	"github.com/go-drift/circulargraph/pkg/theme"
)

// minTouchSlop is the smallest distance from the ring line that still
// starts a seek gesture.
const minTouchSlop = 16.0

// defaultLabel is announced when Config.Label is empty.
const defaultLabel = "Progress"

// Config holds the initial configuration of a CircularGraph.
//
// # Styling Model
//
// Config is explicit: zero values mean zero (no color, zero stroke). Use
// [DefaultConfig] to start from the theme defaults, which also sets
// FillWidth to the track width.
type Config struct {
	// MaxValue is the upper bound of the represented quantity. Must be >= 1.
	MaxValue int
	// CurrentValue is the initial progress; clamped into [0, MaxValue].
	CurrentValue int

	// TrackColor is the color of the full background circle.
	TrackColor graphics.Color
	// FillColor is the color of the progress arc.
	FillColor graphics.Color
	// TrackWidth is the stroke width of the background circle.
	TrackWidth float64
	// FillWidth is the stroke width of the progress arc.
	FillWidth float64
	// StrokeCap shapes both ends of the progress arc.
	StrokeCap graphics.StrokeCap

	// Padding is collapsed to its largest side and applied on every side.
	Padding layout.EdgeInsets
	// Size is the preferred diameter before constraints are applied.
	Size float64

	// MaxPolicy decides what lowering MaxValue below CurrentValue does.
	MaxPolicy ring.MaxPolicy
	// Thumb draws a filled dot at the end of the progress arc.
	Thumb bool
	// Seekable lets pointer drags along the ring change CurrentValue.
	Seekable bool
	// OnChanged is called after a seek gesture or accessibility action
	// changes CurrentValue.
	OnChanged func(value int)
	// Label is announced by assistive technology. Empty means "Progress".
	Label string

	// Animation eases the painted sweep toward each new value. Nil paints
	// new values immediately.
	Animation *SweepAnimation
}

// SweepAnimation configures eased sweep changes.
//
// Getters report a new value as soon as it is set; only the painted arc
// follows over Duration. Seek gestures bypass the animation.
type SweepAnimation struct {
	// Scheduler steps the animation; the host calls Step once per frame.
	Scheduler *animation.Scheduler
	// Duration of one transition.
	Duration time.Duration
	// Curve eases the transition. Nil means animation.EaseInOut.
	Curve func(float64) float64
}

// DefaultConfig returns a configuration at 100 of 100, styled from th.
// A nil theme uses [theme.DefaultLightTheme].
func DefaultConfig(th *theme.ThemeData) Config {
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	t := th.CircularGraphThemeOf()
	return Config{
		MaxValue:     ring.DefaultMaxValue,
		CurrentValue: ring.DefaultCurrentValue,
		TrackColor:   t.TrackColor,
		FillColor:    t.FillColor,
		TrackWidth:   t.TrackWidth,
		FillWidth:    t.TrackWidth,
		Size:         t.Size,
	}
}

// Validate reports the first field outside its domain.
func (c Config) Validate() error {
	const op = "widgets.Config.Validate"
	switch {
	case c.MaxValue < 1:
		return errors.Invalid(op, "max_value", c.MaxValue, errors.ErrInvalidMax)
	case c.TrackWidth < 0:
		return errors.Invalid(op, "track_width", c.TrackWidth, errors.ErrInvalidWidth)
	case c.FillWidth < 0:
		return errors.Invalid(op, "fill_width", c.FillWidth, errors.ErrInvalidWidth)
	}
	return nil
}

// CircularGraph renders a value out of a maximum as a ring: a full track
// circle and a fill arc drawn clockwise from 12 o'clock whose sweep is
// current/max of a full turn.
//
// Every setter that changes visible state requests a repaint through the
// pipeline owner; repeated requests before the next frame are coalesced.
// CircularGraph is not safe for concurrent use and, like every render
// object, must only be touched from the UI goroutine.
type CircularGraph struct {
	layout.RenderBoxBase

	state      ring.State
	policy     ring.MaxPolicy
	trackColor graphics.Color
	fillColor  graphics.Color
	trackWidth float64
	fillWidth  float64
	strokeCap  graphics.StrokeCap
	padding    float64
	size       float64
	thumb      bool
	seekable   bool
	onChanged  func(int)
	label      string

	dragging bool

	anim  *animation.Controller
	tween animation.Tween[float64]
}

// NewCircularGraph validates cfg and returns a render object ready to be
// attached to a pipeline owner.
func NewCircularGraph(cfg Config) (*CircularGraph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	state, err := ring.NewState(cfg.MaxValue, cfg.CurrentValue)
	if err != nil {
		return nil, err
	}
	r := &CircularGraph{
		state:      state,
		policy:     cfg.MaxPolicy,
		trackColor: cfg.TrackColor,
		fillColor:  cfg.FillColor,
		trackWidth: cfg.TrackWidth,
		fillWidth:  cfg.FillWidth,
		strokeCap:  cfg.StrokeCap,
		padding:    ring.UniformPadding(cfg.Padding),
		size:       math.Max(0, cfg.Size),
		thumb:      cfg.Thumb,
		seekable:   cfg.Seekable,
		onChanged:  cfg.OnChanged,
		label:      cfg.Label,
	}
	if a := cfg.Animation; a != nil && a.Scheduler != nil {
		r.anim = animation.NewController(a.Scheduler, a.Duration)
		if a.Curve != nil {
			r.anim.Curve = a.Curve
		} else {
			r.anim.Curve = animation.EaseInOut
		}
		r.anim.AddListener(r.MarkNeedsPaint)
	}
	r.SetSelf(r)
	return r, nil
}

// MaxValue returns the upper bound.
func (r *CircularGraph) MaxValue() int {
	return r.state.MaxValue()
}

// SetMaxValue sets the upper bound and requests a repaint. Values below 1
// are rejected; lowering the bound under the current value follows the
// configured MaxPolicy.
func (r *CircularGraph) SetMaxValue(v int) error {
	from := r.PaintedSweep()
	changed, err := r.state.SetMaxValue(v, r.policy)
	if err != nil {
		return err
	}
	if changed {
		r.sweepChanged(from, true)
	}
	return nil
}

// CurrentValue returns the progress value.
func (r *CircularGraph) CurrentValue() int {
	return r.state.CurrentValue()
}

// SetCurrentValue stores v clamped into [0, MaxValue] and requests a repaint.
func (r *CircularGraph) SetCurrentValue(v int) {
	from := r.PaintedSweep()
	if r.state.SetCurrentValue(v) {
		r.sweepChanged(from, true)
	}
}

// SweepAngle returns the fill arc extent in degrees.
func (r *CircularGraph) SweepAngle() float64 {
	return r.state.SweepAngle()
}

// PaintedSweep returns the sweep the next paint will draw. It differs from
// SweepAngle only while a sweep animation is running.
func (r *CircularGraph) PaintedSweep() float64 {
	if r.anim != nil && r.anim.IsAnimating() {
		return r.tween.Transform(r.anim)
	}
	return r.state.SweepAngle()
}

func (r *CircularGraph) sweepChanged(from float64, animate bool) {
	if r.anim != nil {
		if animate {
			r.tween = animation.TweenFloat64(from, r.state.SweepAngle())
			r.anim.Reset()
			r.anim.Forward()
		} else {
			r.anim.Stop()
		}
	}
	r.MarkNeedsPaint()
}

// Dispose stops a running sweep animation and releases its controller.
// Later value changes paint immediately.
func (r *CircularGraph) Dispose() {
	if r.anim != nil {
		r.anim.Dispose()
		r.anim = nil
	}
}

// StrokeCap returns the cap drawn at the ends of the progress arc.
func (r *CircularGraph) StrokeCap() graphics.StrokeCap {
	return r.strokeCap
}

// SetStrokeCap sets the arc end cap and requests a repaint.
func (r *CircularGraph) SetStrokeCap(c graphics.StrokeCap) {
	if r.strokeCap == c {
		return
	}
	r.strokeCap = c
	r.MarkNeedsPaint()
}

// MaxPolicy returns the policy applied by SetMaxValue.
func (r *CircularGraph) MaxPolicy() ring.MaxPolicy {
	return r.policy
}

// TrackColor returns the background circle color.
func (r *CircularGraph) TrackColor() graphics.Color {
	return r.trackColor
}

// SetTrackColor sets the background circle color and requests a repaint.
func (r *CircularGraph) SetTrackColor(c graphics.Color) {
	if r.trackColor == c {
		return
	}
	r.trackColor = c
	r.MarkNeedsPaint()
}

// FillColor returns the progress arc color.
func (r *CircularGraph) FillColor() graphics.Color {
	return r.fillColor
}

// SetFillColor sets the progress arc color and requests a repaint.
func (r *CircularGraph) SetFillColor(c graphics.Color) {
	if r.fillColor == c {
		return
	}
	r.fillColor = c
	r.MarkNeedsPaint()
}

// TrackWidth returns the background circle stroke width.
func (r *CircularGraph) TrackWidth() float64 {
	return r.trackWidth
}

// SetTrackWidth sets the background circle stroke width and requests a
// repaint. Negative widths are treated as zero.
func (r *CircularGraph) SetTrackWidth(w float64) {
	w = math.Max(0, w)
	if r.trackWidth == w {
		return
	}
	r.trackWidth = w
	r.MarkNeedsPaint()
}

// FillWidth returns the progress arc stroke width.
func (r *CircularGraph) FillWidth() float64 {
	return r.fillWidth
}

// SetFillWidth sets the progress arc stroke width and requests a repaint.
// Negative widths are treated as zero.
func (r *CircularGraph) SetFillWidth(w float64) {
	w = math.Max(0, w)
	if r.fillWidth == w {
		return
	}
	r.fillWidth = w
	r.MarkNeedsPaint()
}

// Geometry returns the ring geometry for the current size, padding and
// track width.
func (r *CircularGraph) Geometry() ring.Geometry {
	return ring.ComputeLayout(r.Size(), r.padding, r.trackWidth)
}

// PerformLayout sizes the graph to a square: the preferred diameter
// constrained, then reduced to its shortest side.
func (r *CircularGraph) PerformLayout() {
	c := r.Constraints()
	preferred := c.Constrain(graphics.Size{Width: r.size, Height: r.size})
	side := preferred.ShortestSide()
	r.SetSize(c.Constrain(graphics.Size{Width: side, Height: side}))
}

// Paint draws the track circle and the fill arc, then the thumb if enabled.
func (r *CircularGraph) Paint(ctx *layout.PaintContext) {
	g := r.Geometry()
	sweep := r.PaintedSweep()

	ctx.Canvas.DrawCircle(g.Center, g.Radius, graphics.StrokePaint(r.trackColor, r.trackWidth))

	fill := graphics.StrokePaint(r.fillColor, r.fillWidth)
	fill.StrokeCap = r.strokeCap
	ctx.Canvas.DrawArc(
		g.Bounds,
		graphics.Radians(ring.StartAngle),
		graphics.Radians(sweep),
		false,
		fill,
	)

	if r.thumb && sweep > 0 {
		dot := graphics.DefaultPaint()
		dot.Color = r.fillColor
		ctx.Canvas.DrawCircle(g.PointAt(math.Min(sweep, ring.FullSweep)), r.fillWidth/2, dot)
	}
}

// HitTest claims pointers inside the graph when it is seekable.
func (r *CircularGraph) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !r.seekable || !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

// HandlePointer implements seeking. A drag must start near the ring line;
// while it continues the value follows the pointer angle without wrapping
// across 12 o'clock.
func (r *CircularGraph) HandlePointer(event layout.PointerEvent) {
	if !r.seekable {
		return
	}
	g := r.Geometry()
	switch event.Phase {
	case layout.PointerPhaseDown:
		slop := math.Max(minTouchSlop, math.Max(r.trackWidth, r.fillWidth))
		if !g.OnTrack(event.Position, slop) {
			return
		}
		r.dragging = true
		r.seekTo(g, event.Position, false)
	case layout.PointerPhaseMove:
		if r.dragging {
			r.seekTo(g, event.Position, true)
		}
	case layout.PointerPhaseUp, layout.PointerPhaseCancel:
		r.dragging = false
	}
}

func (r *CircularGraph) seekTo(g ring.Geometry, position graphics.Offset, continuing bool) {
	upper := r.state.MaxValue()
	v, ok := g.ValueAt(position, upper)
	if !ok {
		return
	}
	current := r.state.CurrentValue()
	if continuing && 2*absInt(v-current) > upper {
		// Crossing 12 o'clock: pin to the end the drag came from.
		if 2*current > upper {
			v = upper
		} else {
			v = 0
		}
	}
	r.seekValue(v)
}

// seekValue applies a user-driven value without animation and notifies
// OnChanged.
func (r *CircularGraph) seekValue(v int) {
	from := r.PaintedSweep()
	if !r.state.SetCurrentValue(v) {
		return
	}
	r.sweepChanged(from, false)
	if r.onChanged != nil {
		r.onChanged(r.state.CurrentValue())
	}
}

// DescribeSemanticsConfiguration announces the graph as a progress
// indicator, or as a slider with increase and decrease actions when it is
// seekable. One action moves the value by a twentieth of the maximum.
func (r *CircularGraph) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	config.IsSemanticBoundary = true
	config.Properties.Label = r.label
	if config.Properties.Label == "" {
		config.Properties.Label = defaultLabel
	}
	config.Properties.Value = fmt.Sprintf("%d of %d", r.state.CurrentValue(), r.state.MaxValue())
	config.Properties.Role = semantics.SemanticsRoleProgressIndicator

	if r.seekable {
		config.Properties.Role = semantics.SemanticsRoleSlider
		step := max(1, int(math.Round(float64(r.state.MaxValue())/20)))
		actions := semantics.NewSemanticsActions()
		actions.SetHandler(semantics.SemanticsActionIncrease, func(any) {
			r.seekValue(r.state.CurrentValue() + step)
		})
		actions.SetHandler(semantics.SemanticsActionDecrease, func(any) {
			r.seekValue(r.state.CurrentValue() - step)
		})
		config.Actions = actions
	}
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
