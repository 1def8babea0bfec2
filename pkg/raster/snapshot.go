package raster

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/circulargraph/pkg/errors"
	"github.com/go-drift/circulargraph/pkg/graphics"
)

// Snapshot replays display lists in order onto a canvas of the given size
// cleared to background.
func Snapshot(size graphics.Size, background graphics.Color, lists ...*graphics.DisplayList) *Canvas {
	c := NewCanvas(int(size.Width+0.5), int(size.Height+0.5))
	c.Clear(background)
	for _, dl := range lists {
		if dl != nil {
			dl.Paint(c)
		}
	}
	return c
}

// DrawLabel draws text centered on the given point in a fixed 7x13 bitmap
// face.
func (c *Canvas) DrawLabel(text string, center graphics.Offset, color graphics.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.NRGBA()),
		Face: face,
	}
	width := d.MeasureString(text)
	metrics := face.Metrics()
	x := fixed.I(int(center.X+c.dx+0.5)) - width/2
	y := fixed.I(int(center.Y+c.dy+0.5)) + (metrics.Ascent-metrics.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return &errors.GraphError{Op: "raster.EncodePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}
