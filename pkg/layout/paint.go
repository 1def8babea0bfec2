package layout

import "github.com/go-drift/circulargraph/pkg/graphics"

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is a pointer sample in the local coordinates of the target.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  graphics.Offset
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}

// DispatchPointer delivers the event to every handler in the hit test result.
func DispatchPointer(result *HitTestResult, event PointerEvent) {
	for _, entry := range result.Entries {
		if handler, ok := entry.(PointerHandler); ok {
			handler.HandlePointer(event)
		}
	}
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// Record paints object into a new display list sized to the object and
// clears its paint flag.
func Record(object RenderObject) *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	ctx := &PaintContext{Canvas: recorder.BeginRecording(object.Size())}
	object.Paint(ctx)
	if cleaner, ok := object.(interface{ ClearNeedsPaint() }); ok {
		cleaner.ClearNeedsPaint()
	}
	return recorder.EndRecording()
}
