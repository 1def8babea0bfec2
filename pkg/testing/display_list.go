package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/circulargraph/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// FloatParam returns a numeric parameter, or NaN when absent.
func (o DisplayOp) FloatParam(key string) float64 {
	if v, ok := o.Params[key].(float64); ok {
		return v
	}
	return math.NaN()
}

// StringParam returns a string parameter, or "" when absent.
func (o DisplayOp) StringParam(key string) string {
	s, _ := o.Params[key].(string)
	return s
}

// FindOps returns the operations with the given name, in paint order.
func FindOps(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
// Arc angles are serialized in degrees.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(paint,
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		),
	})
}

func (c *serializingCanvas) DrawArc(oval graphics.Rect, startAngle, sweepAngle float64, useCenter bool, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawArc",
		Params: withPaint(paint,
			"oval", serializeRect(oval),
			"start", round2(graphics.Degrees(startAngle)),
			"sweep", round2(graphics.Degrees(sweepAngle)),
			"useCenter", useCenter,
		),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(paint, "commands", float64(len(path.Commands))),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func withPaint(paint graphics.Paint, kvs ...any) map[string]any {
	m := sortedMap(kvs...)
	m["color"] = serializeColor(paint.Color)
	m["style"] = paint.Style.String()
	m["strokeWidth"] = round2(paint.StrokeWidth)
	m["strokeCap"] = paint.StrokeCap.String()
	return m
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
