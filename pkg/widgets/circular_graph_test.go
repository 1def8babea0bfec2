package widgets_test

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/go-drift/circulargraph/pkg/errors"
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
	"github.com/go-drift/circulargraph/pkg/ring"
	graphtest "github.com/go-drift/circulargraph/pkg/testing"
	"github.com/go-drift/circulargraph/pkg/widgets"
)

var (
	green = graphics.RGB(0, 0xFF, 0)
	grey  = graphics.RGB(0xAA, 0xAA, 0xAA)
)

func newGraph(t *testing.T, mutate func(*widgets.Config)) *widgets.CircularGraph {
	t.Helper()
	cfg := widgets.DefaultConfig(nil)
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := widgets.NewCircularGraph(cfg)
	if err != nil {
		t.Fatalf("NewCircularGraph: %v", err)
	}
	return g
}

func TestCircularGraph_Defaults(t *testing.T) {
	g := newGraph(t, nil)
	if g.MaxValue() != 100 || g.CurrentValue() != 100 {
		t.Errorf("values = (%d, %d), want (100, 100)", g.MaxValue(), g.CurrentValue())
	}
	if g.FillWidth() != g.TrackWidth() {
		t.Errorf("FillWidth = %v, want TrackWidth %v", g.FillWidth(), g.TrackWidth())
	}
	if g.SweepAngle() != 360 {
		t.Errorf("SweepAngle = %v, want 360", g.SweepAngle())
	}
	if g.MaxPolicy() != ring.MaxPolicyClamp {
		t.Errorf("MaxPolicy = %v, want clamp", g.MaxPolicy())
	}
}

func TestCircularGraph_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		max       int
		current   int
		wantValue int
		wantSweep float64
	}{
		{"forty of hundred", 100, 40, 40, 144},
		{"forty of fifty", 50, 40, 40, 288},
		{"constructed over max", 100, 150, 100, 360},
		{"empty", 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGraph(t, func(c *widgets.Config) {
				c.MaxValue = tt.max
				c.CurrentValue = tt.current
			})
			if g.CurrentValue() != tt.wantValue {
				t.Errorf("CurrentValue = %d, want %d", g.CurrentValue(), tt.wantValue)
			}
			if math.Abs(g.SweepAngle()-tt.wantSweep) > 1e-9 {
				t.Errorf("SweepAngle = %v, want %v", g.SweepAngle(), tt.wantSweep)
			}
		})
	}
}

func TestCircularGraph_LowerMaxBelowCurrent(t *testing.T) {
	tests := []struct {
		policy      ring.MaxPolicy
		wantErr     error
		wantCurrent int
		wantSweep   float64
	}{
		{ring.MaxPolicyClamp, nil, 20, 360},
		{ring.MaxPolicyOverflow, nil, 40, 720},
		{ring.MaxPolicyReject, errors.ErrMaxBelowValue, 40, 144},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			g := newGraph(t, func(c *widgets.Config) {
				c.CurrentValue = 40
				c.MaxPolicy = tt.policy
			})
			err := g.SetMaxValue(20)
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("SetMaxValue error = %v, want %v", err, tt.wantErr)
			}
			if g.CurrentValue() != tt.wantCurrent || math.Abs(g.SweepAngle()-tt.wantSweep) > 1e-9 {
				t.Errorf("got current=%d sweep=%v, want %d and %v",
					g.CurrentValue(), g.SweepAngle(), tt.wantCurrent, tt.wantSweep)
			}
		})
	}
}

func TestNewCircularGraph_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*widgets.Config)
		want   error
	}{
		{"zero max", func(c *widgets.Config) { c.MaxValue = 0 }, errors.ErrInvalidMax},
		{"negative max", func(c *widgets.Config) { c.MaxValue = -4 }, errors.ErrInvalidMax},
		{"negative track width", func(c *widgets.Config) { c.TrackWidth = -1 }, errors.ErrInvalidWidth},
		{"negative fill width", func(c *widgets.Config) { c.FillWidth = -1 }, errors.ErrInvalidWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := widgets.DefaultConfig(nil)
			tt.mutate(&cfg)
			_, err := widgets.NewCircularGraph(cfg)
			if !stderrors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCircularGraph_SetCurrentValueClamps(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) { c.CurrentValue = 10 })
	g.SetCurrentValue(500)
	if g.CurrentValue() != 100 || math.Abs(g.SweepAngle()-360) > 1e-9 {
		t.Errorf("got current=%d sweep=%v, want 100 and 360", g.CurrentValue(), g.SweepAngle())
	}
	if err := g.SetMaxValue(0); !stderrors.Is(err, errors.ErrInvalidMax) {
		t.Errorf("SetMaxValue(0) error = %v, want ErrInvalidMax", err)
	}
}

func TestCircularGraph_SettersRequestRepaint(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) { c.CurrentValue = 10 })
	tester := graphtest.NewRenderTester(t, g)
	tester.Pump()

	setters := map[string]func(){
		"SetMaxValue":     func() { _ = g.SetMaxValue(50) },
		"SetCurrentValue": func() { g.SetCurrentValue(30) },
		"SetTrackColor":   func() { g.SetTrackColor(grey) },
		"SetFillColor":    func() { g.SetFillColor(green) },
		"SetTrackWidth":   func() { g.SetTrackWidth(3) },
		"SetFillWidth":    func() { g.SetFillWidth(5) },
	}
	for name, set := range setters {
		set()
		if !tester.Owner().NeedsPaint() {
			t.Errorf("%s: expected a repaint request", name)
		}
		tester.Pump()

		set()
		if tester.Owner().NeedsPaint() {
			t.Errorf("%s: setting the same value again should not request a repaint", name)
		}
	}
}

func TestCircularGraph_RepaintRequestsCoalesce(t *testing.T) {
	g := newGraph(t, nil)
	tester := graphtest.NewRenderTester(t, g)
	tester.Pump()

	g.SetCurrentValue(10)
	g.SetCurrentValue(20)
	g.SetFillColor(green)

	owner := tester.Owner()
	if owner.PaintRequests() != 3 {
		t.Errorf("PaintRequests = %d, want 3", owner.PaintRequests())
	}
	if dirty := owner.FlushPaint(); len(dirty) != 1 {
		t.Errorf("FlushPaint returned %d objects, want 1", len(dirty))
	}
}

func TestCircularGraph_Paint(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) {
		c.CurrentValue = 40
		c.TrackColor = grey
		c.FillColor = green
		c.TrackWidth = 8
		c.FillWidth = 12
		c.Padding = layout.EdgeInsets{Left: 4, Top: 10}
	})
	tester := graphtest.NewRenderTester(t, g)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	ops := tester.Pump()

	circles := graphtest.FindOps(ops, "drawCircle")
	arcs := graphtest.FindOps(ops, "drawArc")
	if len(circles) != 1 || len(arcs) != 1 {
		t.Fatalf("got %d circles and %d arcs, want one of each: %+v", len(circles), len(arcs), ops)
	}

	track := circles[0]
	// Padding collapses to 10 on every side: (200 - 20)/2 - 8/2.
	if got := track.FloatParam("radius"); got != 86 {
		t.Errorf("track radius = %v, want 86", got)
	}
	if track.FloatParam("cx") != 100 || track.FloatParam("cy") != 100 {
		t.Errorf("track center = (%v, %v), want (100, 100)", track.FloatParam("cx"), track.FloatParam("cy"))
	}
	if track.StringParam("color") != "0xFFAAAAAA" || track.StringParam("style") != "stroke" || track.FloatParam("strokeWidth") != 8 {
		t.Errorf("unexpected track paint: %+v", track.Params)
	}

	arc := arcs[0]
	if arc.FloatParam("start") != -90 || arc.FloatParam("sweep") != 144 {
		t.Errorf("arc start/sweep = %v/%v, want -90/144", arc.FloatParam("start"), arc.FloatParam("sweep"))
	}
	if arc.Params["useCenter"] != false {
		t.Errorf("arc useCenter = %v, want false", arc.Params["useCenter"])
	}
	if arc.StringParam("color") != "0xFF00FF00" || arc.FloatParam("strokeWidth") != 12 {
		t.Errorf("unexpected arc paint: %+v", arc.Params)
	}
	oval := arc.Params["oval"].(map[string]any)
	if oval["left"] != 14.0 || oval["top"] != 14.0 || oval["right"] != 186.0 || oval["bottom"] != 186.0 {
		t.Errorf("arc oval = %v, want 14..186", oval)
	}
}

func TestCircularGraph_PaintEmptyAndThumb(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) {
		c.CurrentValue = 0
		c.Thumb = true
	})
	tester := graphtest.NewRenderTester(t, g)
	ops := tester.Pump()

	if arcs := graphtest.FindOps(ops, "drawArc"); len(arcs) != 1 || arcs[0].FloatParam("sweep") != 0 {
		t.Errorf("expected a zero-sweep arc, got %+v", arcs)
	}
	if circles := graphtest.FindOps(ops, "drawCircle"); len(circles) != 1 {
		t.Errorf("thumb should be hidden at zero, got %d circles", len(circles))
	}

	g.SetCurrentValue(25)
	ops = tester.Pump()
	circles := graphtest.FindOps(ops, "drawCircle")
	if len(circles) != 2 {
		t.Fatalf("expected track and thumb circles, got %d", len(circles))
	}
	thumb := circles[1]
	if thumb.StringParam("style") != "fill" {
		t.Errorf("thumb style = %q, want fill", thumb.StringParam("style"))
	}
	geo := g.Geometry()
	if thumb.FloatParam("cx") != math.Round((geo.Center.X+geo.Radius)*100)/100 {
		t.Errorf("thumb cx = %v, want the 3 o'clock point", thumb.FloatParam("cx"))
	}
}

func TestCircularGraph_LayoutIsSquare(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) { c.Size = 120 })
	tester := graphtest.NewRenderTester(t, g)
	tester.SetSize(graphics.Size{Width: 300, Height: 80})
	tester.SetLoose(true)
	tester.Pump()

	if got := g.Size(); got.Width != 80 || got.Height != 80 {
		t.Errorf("Size = %+v, want 80x80", got)
	}

	tester.SetSize(graphics.Size{Width: 300, Height: 300})
	tester.Pump()
	if got := g.Size(); got.Width != 120 || got.Height != 120 {
		t.Errorf("Size = %+v, want preferred 120x120", got)
	}
}

func TestCircularGraph_Seek(t *testing.T) {
	var changes []int
	g := newGraph(t, func(c *widgets.Config) {
		c.CurrentValue = 0
		c.Seekable = true
		c.OnChanged = func(v int) { changes = append(changes, v) }
	})
	tester := graphtest.NewRenderTester(t, g)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})
	tester.Pump()

	geo := g.Geometry()
	right := graphics.Offset{X: geo.Center.X + geo.Radius, Y: geo.Center.Y}
	bottom := graphics.Offset{X: geo.Center.X, Y: geo.Center.Y + geo.Radius}

	if !tester.DragFrom(right, bottom) {
		t.Fatal("expected the drag to hit the graph")
	}
	if g.CurrentValue() != 50 {
		t.Errorf("CurrentValue = %d, want 50", g.CurrentValue())
	}
	if len(changes) != 2 || changes[0] != 25 || changes[1] != 50 {
		t.Errorf("OnChanged calls = %v, want [25 50]", changes)
	}
}

func TestCircularGraph_SeekIgnoresCenterAndWrap(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) {
		c.CurrentValue = 10
		c.Seekable = true
	})
	tester := graphtest.NewRenderTester(t, g)
	tester.Pump()
	geo := g.Geometry()

	tester.TapAt(geo.Center)
	if g.CurrentValue() != 10 {
		t.Errorf("tap at center changed value to %d", g.CurrentValue())
	}

	nearTop := geo.PointAt(ring.SweepAngle(5, 100))
	pastTop := geo.PointAt(ring.SweepAngle(95, 100))
	tester.DragFrom(nearTop, pastTop)
	if g.CurrentValue() != 0 {
		t.Errorf("dragging backwards across 12 o'clock should pin to 0, got %d", g.CurrentValue())
	}
}

func TestCircularGraph_NotSeekable(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) { c.CurrentValue = 10 })
	tester := graphtest.NewRenderTester(t, g)
	tester.Pump()
	geo := g.Geometry()

	if tester.TapAt(geo.PointAt(180)) {
		t.Error("non-seekable graph should not claim pointers")
	}
	if g.CurrentValue() != 10 {
		t.Errorf("CurrentValue = %d, want 10", g.CurrentValue())
	}
}

func TestCircularGraph_StrokeCap(t *testing.T) {
	g := newGraph(t, func(c *widgets.Config) {
		c.CurrentValue = 40
		c.StrokeCap = graphics.CapRound
	})
	tester := graphtest.NewRenderTester(t, g)
	ops := tester.Pump()

	arc := graphtest.FindOps(ops, "drawArc")[0]
	if got := arc.StringParam("strokeCap"); got != "round" {
		t.Errorf("arc cap = %q, want round", got)
	}
	track := graphtest.FindOps(ops, "drawCircle")[0]
	if got := track.StringParam("strokeCap"); got != "butt" {
		t.Errorf("track cap = %q, want butt", got)
	}

	g.SetStrokeCap(graphics.CapRound)
	if tester.Owner().NeedsPaint() {
		t.Error("setting the same cap should not request a repaint")
	}
	g.SetStrokeCap(graphics.CapButt)
	if !tester.Owner().NeedsPaint() {
		t.Error("changing the cap should request a repaint")
	}
	arc = graphtest.FindOps(tester.Pump(), "drawArc")[0]
	if got := arc.StringParam("strokeCap"); got != "butt" {
		t.Errorf("arc cap after SetStrokeCap = %q, want butt", got)
	}
}
