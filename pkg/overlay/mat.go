package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/dstrand/zonewatch/pkg/geometry"
)

// MatCanvas is a Canvas over an OpenCV Mat, used for frames coming off
// a real camera. The Mat is owned by whoever produced it; the canvas
// only draws into it.
type MatCanvas struct {
	mat *gocv.Mat
}

// NewMatCanvas wraps an existing Mat.
func NewMatCanvas(mat *gocv.Mat) *MatCanvas {
	return &MatCanvas{mat: mat}
}

// Mat exposes the underlying Mat for gocv consumers (inference,
// display).
func (c *MatCanvas) Mat() *gocv.Mat {
	return c.mat
}

// Bounds implements Canvas.
func (c *MatCanvas) Bounds() (int, int) {
	return c.mat.Cols(), c.mat.Rows()
}

// Blend implements Canvas: a filled rectangle on a scratch copy,
// weighted back onto the frame.
func (c *MatCanvas) Blend(r geometry.Rect, fill color.RGBA, alpha float64) {
	scratch := c.mat.Clone()
	defer scratch.Close()

	gocv.Rectangle(&scratch, r.ToImage(), fill, -1)
	gocv.AddWeighted(scratch, alpha, *c.mat, 1-alpha, 0, c.mat)
}

// Stroke implements Canvas.
func (c *MatCanvas) Stroke(r geometry.Rect, fill color.RGBA, thickness int) {
	gocv.Rectangle(c.mat, r.ToImage(), fill, thickness)
}

// Text implements Canvas.
func (c *MatCanvas) Text(s string, x, y int, colr color.RGBA, scale float64, thickness int) {
	gocv.PutText(c.mat, s, image.Pt(x, y), gocv.FontHersheySimplex, scale, colr, thickness)
}

// EncodeJPEG implements Canvas.
func (c *MatCanvas) EncodeJPEG(quality int) ([]byte, error) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, *c.mat, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}
