package overlay

import (
	"image/color"

	"github.com/dstrand/zonewatch/pkg/geometry"
)

// Style holds the drawing parameters for one session.
type Style struct {
	ZoneColor  color.RGBA // zone fill and border
	ZoneAlpha  float64    // fill transparency, 0..1
	ZoneBorder int        // border stroke width

	BoxColor  color.RGBA // detection box and label
	BoxBorder int

	LabelScale     float64
	LabelThickness int

	BannerScale     float64
	BannerThickness int
}

// DefaultStyle returns the stock look: translucent green zones with a
// saturated border, red detection boxes.
func DefaultStyle() Style {
	return Style{
		ZoneColor:  color.RGBA{G: 255, A: 255},
		ZoneAlpha:  0.1,
		ZoneBorder: 3,

		BoxColor:  color.RGBA{R: 255, A: 255},
		BoxBorder: 2,

		LabelScale:     0.5,
		LabelThickness: 2,

		BannerScale:     0.7,
		BannerThickness: 2,
	}
}

// Renderer draws session overlays in a fixed style.
type Renderer struct {
	style Style
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style {
	return r.style
}

// DrawZone composites the translucent zone fill, then the opaque
// border on top so the outline never fades with the alpha.
func (r *Renderer) DrawZone(c Canvas, rect geometry.Rect) {
	c.Blend(rect, r.style.ZoneColor, r.style.ZoneAlpha)
	c.Stroke(rect, r.style.ZoneColor, r.style.ZoneBorder)
}

// DrawBox draws an opaque detection box with its label just above the
// top-left corner.
func (r *Renderer) DrawBox(c Canvas, rect geometry.Rect, label string) {
	c.Stroke(rect, r.style.BoxColor, r.style.BoxBorder)
	if label != "" {
		c.Text(label, rect.Left, rect.Top-10, r.style.BoxColor, r.style.LabelScale, r.style.LabelThickness)
	}
}

// DrawBanner draws the instruction line in the top-left corner.
func (r *Renderer) DrawBanner(c Canvas, text string) {
	c.Text(text, 10, 30, r.style.ZoneColor, r.style.BannerScale, r.style.BannerThickness)
}
