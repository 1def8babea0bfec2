// Package ring holds the value model and geometry of a circular graph.
//
// A ring shows a value out of a maximum as a track circle with a fill arc
// drawn clockwise from 12 o'clock. Everything here is pure arithmetic; the
// render object in package widgets owns a State and turns a Geometry into
// draw calls.
package ring
