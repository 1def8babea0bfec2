package testing

import (
	"testing"

	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 200
)

// RenderTester drives layout, paint and pointer dispatch for a single root
// render object without a platform layer.
type RenderTester struct {
	t     testing.TB
	owner *layout.PipelineOwner
	root  layout.RenderObject
	size  graphics.Size
	loose bool
}

// NewRenderTester attaches root to a fresh pipeline owner.
func NewRenderTester(t testing.TB, root layout.RenderObject) *RenderTester {
	t.Helper()
	owner := &layout.PipelineOwner{}
	root.SetOwner(owner)
	return &RenderTester{
		t:     t,
		owner: owner,
		root:  root,
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// Owner returns the pipeline owner the root is attached to.
func (rt *RenderTester) Owner() *layout.PipelineOwner {
	return rt.owner
}

// SetSize sets the surface size used as root constraints.
func (rt *RenderTester) SetSize(size graphics.Size) {
	rt.size = size
	rt.root.MarkNeedsLayout()
}

// SetLoose makes the root constraints loose instead of tight, letting the
// root pick its preferred size.
func (rt *RenderTester) SetLoose(loose bool) {
	rt.loose = loose
	rt.root.MarkNeedsLayout()
}

// Constraints returns the root constraints for the current surface.
func (rt *RenderTester) Constraints() layout.Constraints {
	if rt.loose {
		return layout.Loose(rt.size)
	}
	return layout.Tight(rt.size)
}

// Pump runs one frame: layout, then paint of the root, and returns the
// serialized draw operations. It paints even when nothing is dirty.
func (rt *RenderTester) Pump() []DisplayOp {
	rt.t.Helper()
	rt.owner.FlushLayoutForRoot(rt.root, rt.Constraints())
	rt.owner.FlushPaint()
	return SerializeDisplayList(layout.Record(rt.root))
}
