// Package raster draws graphics display lists into RGBA images.
//
// It is the software backend used for snapshots and tests: shapes are built
// as graphics paths and filled with an anti-aliasing vector rasterizer.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/circulargraph/pkg/graphics"
)

const fullTurn = 2 * math.Pi

// Canvas implements graphics.Canvas on an *image.RGBA.
//
// Strokes are converted to filled outlines: a stroked circle is an annulus,
// a stroked arc is an annular sector. Ovals passed to DrawArc are drawn as
// the circle inscribed in them.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	dx    float64
	dy    float64
	saved []graphics.Offset
}

// NewCanvas returns a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Save() {
	c.saved = append(c.saved, graphics.Offset{X: c.dx, Y: c.dy})
}

func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	last := c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
	c.dx, c.dy = last.X, last.Y
}

func (c *Canvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

func (c *Canvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius < 0 {
		return
	}
	path := graphics.NewPath()
	switch paint.Style {
	case graphics.PaintStyleStroke:
		if !annulus(path, center, radius, paint.StrokeWidth) {
			return
		}
	default:
		if radius == 0 {
			return
		}
		circle(path, center, radius, 1)
	}
	c.fill(path, paint.Color)
}

func (c *Canvas) DrawArc(oval graphics.Rect, startAngle, sweepAngle float64, useCenter bool, paint graphics.Paint) {
	if sweepAngle == 0 || oval.IsEmpty() {
		return
	}
	center := oval.Center()
	radius := math.Min(oval.Width(), oval.Height()) / 2

	path := graphics.NewPath()
	if math.Abs(sweepAngle) >= fullTurn {
		if paint.Style == graphics.PaintStyleStroke {
			if !annulus(path, center, radius, paint.StrokeWidth) {
				return
			}
		} else {
			circle(path, center, radius, 1)
		}
		c.fill(path, paint.Color)
		return
	}

	switch paint.Style {
	case graphics.PaintStyleStroke:
		w := paint.StrokeWidth
		if w <= 0 {
			return
		}
		outer := radius + w/2
		inner := math.Max(0, radius-w/2)
		path.AddArc(center.X, center.Y, outer, startAngle, sweepAngle, true)
		if inner > 0 {
			path.AddArc(center.X, center.Y, inner, startAngle+sweepAngle, -sweepAngle, false)
		} else {
			path.LineTo(center.X, center.Y)
		}
		path.Close()
		if paint.StrokeCap == graphics.CapRound {
			dir := math.Copysign(1, sweepAngle)
			for _, a := range []float64{startAngle, startAngle + sweepAngle} {
				end := graphics.Offset{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
				circle(path, end, w/2, dir)
			}
		}
	default:
		if useCenter {
			path.MoveTo(center.X, center.Y)
			path.AddArc(center.X, center.Y, radius, startAngle, sweepAngle, false)
		} else {
			path.AddArc(center.X, center.Y, radius, startAngle, sweepAngle, true)
		}
		path.Close()
	}
	c.fill(path, paint.Color)
}

// DrawPath fills the path. Stroked paths other than circles and arcs are
// not supported and draw nothing.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() || paint.Style == graphics.PaintStyleStroke {
		return
	}
	c.fill(path, paint.Color)
}

func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fill rasterizes path with the nonzero rule, so subpaths wound against
// the outer contour cut holes.
func (c *Canvas) fill(path *graphics.Path, color graphics.Color) {
	b := c.img.Bounds()
	if b.Empty() {
		return
	}
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over

	open := false
	pt := func(x, y float64) (float32, float32) {
		return float32(x + c.dx), float32(y + c.dy)
	}
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(pt(a[0], a[1]))
			open = true
		case graphics.PathOpLineTo:
			c.z.LineTo(pt(a[0], a[1]))
		case graphics.PathOpCubicTo:
			x1, y1 := pt(a[0], a[1])
			x2, y2 := pt(a[2], a[3])
			x3, y3 := pt(a[4], a[5])
			c.z.CubeTo(x1, y1, x2, y2, x3, y3)
		case graphics.PathOpClose:
			if open {
				c.z.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.z.ClosePath()
	}
	c.z.Draw(c.img, b, image.NewUniform(color.NRGBA()), image.Point{})
}

// circle appends a closed circle wound clockwise for dir > 0.
func circle(path *graphics.Path, center graphics.Offset, radius, dir float64) {
	path.AddArc(center.X, center.Y, radius, 0, math.Copysign(fullTurn, dir), true)
	path.Close()
}

// annulus appends the outline of a stroked circle. It reports false when
// the stroke has no area.
func annulus(path *graphics.Path, center graphics.Offset, radius, width float64) bool {
	if width <= 0 {
		return false
	}
	outer := radius + width/2
	inner := radius - width/2
	circle(path, center, outer, 1)
	if inner > 0 {
		circle(path, center, inner, -1)
	}
	return true
}
