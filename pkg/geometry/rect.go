// Package geometry provides the rectangle math used by zone filtering.
package geometry

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle in pixel space, stored as corner
// coordinates. Left/Top is inclusive of the first pixel, Right/Bottom
// names the opposite corner.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect builds a rectangle from two corner points.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and other overlap on both axes.
// Rectangles that merely touch along an edge or at a corner count as
// intersecting: disjointness requires a positive gap on at least one
// axis. Note this differs from image.Rectangle.Overlaps, which treats
// shared edges as non-overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right < other.Left || r.Left > other.Right ||
		r.Bottom < other.Top || r.Top > other.Bottom)
}

// Clamp constrains the rectangle to the given frame size, so drawing
// never addresses pixels outside the surface.
func (r Rect) Clamp(width, height int) Rect {
	c := r
	if c.Left < 0 {
		c.Left = 0
	}
	if c.Top < 0 {
		c.Top = 0
	}
	if c.Right > width {
		c.Right = width
	}
	if c.Bottom > height {
		c.Bottom = height
	}
	if c.Right < c.Left {
		c.Right = c.Left
	}
	if c.Bottom < c.Top {
		c.Bottom = c.Top
	}
	return c
}

// ToImage converts to the stdlib rectangle type used by gocv drawing
// calls.
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// FromImage converts from the stdlib rectangle type.
func FromImage(r image.Rectangle) Rect {
	return Rect{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// String formats the rectangle for logs.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
