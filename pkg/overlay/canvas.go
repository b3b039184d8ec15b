// Package overlay renders zone and detection overlays onto frames.
//
// Drawing goes through the Canvas interface so the frame loop can run
// against a real OpenCV Mat or, headless, against a plain Go image.
package overlay

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/dstrand/zonewatch/pkg/geometry"
)

// Canvas is the drawing surface boundary. Implementations mutate the
// underlying frame buffer in place.
type Canvas interface {
	// Bounds returns the frame dimensions in pixels.
	Bounds() (width, height int)

	// Blend composites a filled rectangle over the region with linear
	// alpha blending: out = alpha*fill + (1-alpha)*original.
	Blend(r geometry.Rect, c color.RGBA, alpha float64)

	// Stroke draws an opaque rectangle border of the given thickness.
	// Drawn after a Blend, the border is fully saturated regardless of
	// the blend alpha.
	Stroke(r geometry.Rect, c color.RGBA, thickness int)

	// Text draws a label with its baseline origin at (x, y).
	Text(s string, x, y int, c color.RGBA, scale float64, thickness int)

	// EncodeJPEG returns the current frame content as a JPEG.
	EncodeJPEG(quality int) ([]byte, error)
}

// TextLabel records a Text call on an ImageCanvas.
type TextLabel struct {
	Text  string
	X, Y  int
	Color color.RGBA
}

// ImageCanvas is a pure-Go Canvas backed by an RGBA image. It performs
// real pixel blending and border drawing but records labels instead of
// rasterizing glyphs, which keeps it free of any font dependency.
type ImageCanvas struct {
	img    *image.RGBA
	Labels []TextLabel
}

// NewImageCanvas creates a canvas over a fresh image of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageCanvasFrom wraps an existing image.
func NewImageCanvasFrom(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img}
}

// Image returns the underlying frame buffer.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Bounds implements Canvas.
func (c *ImageCanvas) Bounds() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Blend implements Canvas with per-channel linear interpolation.
func (c *ImageCanvas) Blend(r geometry.Rect, fill color.RGBA, alpha float64) {
	w, h := c.Bounds()
	r = r.Clamp(w, h)
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			orig := c.img.RGBAAt(x, y)
			c.img.SetRGBA(x, y, color.RGBA{
				R: mix(fill.R, orig.R, alpha),
				G: mix(fill.G, orig.G, alpha),
				B: mix(fill.B, orig.B, alpha),
				A: 255,
			})
		}
	}
}

// Stroke implements Canvas. The border is drawn inward from the
// rectangle edges, fully opaque.
func (c *ImageCanvas) Stroke(r geometry.Rect, fill color.RGBA, thickness int) {
	if thickness < 1 {
		return
	}
	top := geometry.NewRect(r.Left, r.Top, r.Right, r.Top+thickness)
	bottom := geometry.NewRect(r.Left, r.Bottom-thickness, r.Right, r.Bottom)
	left := geometry.NewRect(r.Left, r.Top, r.Left+thickness, r.Bottom)
	right := geometry.NewRect(r.Right-thickness, r.Top, r.Right, r.Bottom)
	for _, band := range []geometry.Rect{top, bottom, left, right} {
		c.fill(band, fill)
	}
}

func (c *ImageCanvas) fill(r geometry.Rect, fill color.RGBA) {
	w, h := c.Bounds()
	r = r.Clamp(w, h)
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			c.img.SetRGBA(x, y, color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 255})
		}
	}
}

// Text implements Canvas by recording the label.
func (c *ImageCanvas) Text(s string, x, y int, colr color.RGBA, scale float64, thickness int) {
	c.Labels = append(c.Labels, TextLabel{Text: s, X: x, Y: y, Color: colr})
}

// EncodeJPEG implements Canvas using the stdlib encoder.
func (c *ImageCanvas) EncodeJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, c.img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// mix linearly interpolates one channel, rounding to nearest.
func mix(fill, orig uint8, alpha float64) uint8 {
	v := alpha*float64(fill) + (1-alpha)*float64(orig)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v + 0.5)
}
