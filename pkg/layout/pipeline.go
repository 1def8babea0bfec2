package layout

// PipelineOwner tracks render objects that need layout or paint.
//
// It is the redraw scheduler: render objects report themselves dirty and the
// host drains the sets once per frame. Scheduling the same object several
// times before a flush records it once, so the last written state wins at
// the next paint pass.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool // O(1) dedup check
	dirtyPaint     []RenderObject
	dirtyPaintSet  map[RenderObject]bool
	paintRequests  int
}

// ScheduleLayout marks a render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.SchedulePaint(object)
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.paintRequests++
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[RenderObject]bool)
	}
	if p.dirtyPaintSet[object] {
		return
	}
	p.dirtyPaintSet[object] = true
	p.dirtyPaint = append(p.dirtyPaint, object)
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return len(p.dirtyLayout) > 0
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return len(p.dirtyPaint) > 0
}

// PaintRequests returns how many paint requests were received since the
// last FlushPaint, including coalesced duplicates.
func (p *PipelineOwner) PaintRequests() int {
	return p.paintRequests
}

// FlushLayout lays out every scheduled object with its cached constraints.
func (p *PipelineOwner) FlushLayout() {
	dirty := p.dirtyLayout
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil

	for _, node := range dirty {
		if layouter, ok := node.(interface {
			NeedsLayout() bool
			Constraints() Constraints
		}); ok && layouter.NeedsLayout() {
			node.Layout(layouter.Constraints(), false)
		}
	}
}

// FlushLayoutForRoot lays out the root with the given constraints and then
// processes any other scheduled objects.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root != nil {
		root.Layout(constraints, false)
	}
	p.FlushLayout()
}

// FlushPaint returns the objects that still need painting, in the order they
// were first scheduled, and resets the paint set.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	p.dirtyPaintSet = nil
	p.paintRequests = 0

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && !np.NeedsPaint() {
			continue
		}
		result = append(result, node)
	}
	return result
}
