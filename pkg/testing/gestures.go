package testing

import (
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// TapAt simulates a tap at the given logical position.
func (rt *RenderTester) TapAt(pos graphics.Offset) bool {
	id := allocPointerID()
	hit := rt.SendPointerDown(pos, id)
	rt.SendPointerUp(pos, id)
	return hit
}

// DragFrom simulates a drag from start through each of the given points.
// It reports whether the initial pointer down hit the root.
func (rt *RenderTester) DragFrom(start graphics.Offset, points ...graphics.Offset) bool {
	id := allocPointerID()
	hit := rt.SendPointerDown(start, id)
	end := start
	for _, p := range points {
		rt.SendPointerMove(p, id)
		end = p
	}
	rt.SendPointerUp(end, id)
	return hit
}

// SendPointerDown hit tests pos and sends a pointer-down event.
func (rt *RenderTester) SendPointerDown(pos graphics.Offset, pointerID int64) bool {
	return rt.send(layout.PointerEvent{PointerID: pointerID, Phase: layout.PointerPhaseDown, Position: pos})
}

// SendPointerMove sends a pointer-move event.
func (rt *RenderTester) SendPointerMove(pos graphics.Offset, pointerID int64) bool {
	return rt.send(layout.PointerEvent{PointerID: pointerID, Phase: layout.PointerPhaseMove, Position: pos})
}

// SendPointerUp sends a pointer-up event.
func (rt *RenderTester) SendPointerUp(pos graphics.Offset, pointerID int64) bool {
	return rt.send(layout.PointerEvent{PointerID: pointerID, Phase: layout.PointerPhaseUp, Position: pos})
}

// send routes the event to the root when it claims the position. Move and
// up events are delivered regardless of position so drags may leave the
// bounds, matching how a real pointer router keeps the initial target.
func (rt *RenderTester) send(event layout.PointerEvent) bool {
	result := &layout.HitTestResult{}
	hit := rt.root.HitTest(event.Position, result)
	if !hit && event.Phase != layout.PointerPhaseDown {
		if handler, ok := rt.root.(layout.PointerHandler); ok {
			handler.HandlePointer(event)
		}
		return false
	}
	layout.DispatchPointer(result, event)
	return hit
}
