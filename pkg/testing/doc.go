// Package testing provides render-object testing helpers.
//
// # Quick Start
//
// Attach a render object to a tester, pump a frame and assert on the
// serialized draw operations:
//
//	func TestMyGraph(t *testing.T) {
//	    graph, _ := widgets.NewCircularGraph(widgets.DefaultConfig(nil))
//	    tester := graphtest.NewRenderTester(t, graph)
//	    ops := tester.Pump()
//
//	    arcs := graphtest.FindOps(ops, "drawArc")
//	    if len(arcs) != 1 {
//	        t.Fatalf("expected one arc, got %d", len(arcs))
//	    }
//	}
//
// # Gestures
//
// TapAt, DragFrom and the SendPointer* methods hit test the root and route
// events to every PointerHandler in the result.
package testing
