// Package raster implements the engine's drawing surface in software,
// on a plain RGBA pixel buffer. All geometry passes through the current
// transform (axis-aligned scale + translate) before touching pixels.
package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/sketch/engine/colors"
	"github.com/hubastard/sketch/engine/core"
	"github.com/hubastard/sketch/engine/text"
)

// transform is an axis-aligned affine: device = user*scale + offset.
type transform struct {
	sx, sy, tx, ty float64
}

func (t transform) apply(x, y float64) (float64, float64) {
	return t.sx*x + t.tx, t.sy*y + t.ty
}

// Surface draws into an in-memory RGBA image. Pixels persist across
// frames until something clears or overdraws them.
type Surface struct {
	rgba  *image.RGBA
	cur   transform
	stack []transform
	faces *text.Faces
}

var _ core.Surface = (*Surface)(nil)

// New creates a w-by-h surface rendering text with faces.
func New(w, h int, faces *text.Faces) *Surface {
	return &Surface{
		rgba:  image.NewRGBA(image.Rect(0, 0, w, h)),
		cur:   transform{sx: 1, sy: 1},
		faces: faces,
	}
}

// RGBA exposes the backing pixels for presentation and inspection.
func (s *Surface) RGBA() *image.RGBA { return s.rgba }

func (s *Surface) Size() (int, int) {
	b := s.rgba.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear(c colors.Color) {
	xdraw.Draw(s.rgba, s.rgba.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// StrokeRect outlines the rectangle as four bars centered on its edges.
func (s *Surface) StrokeRect(x, y, w, h, weight float64, c colors.Color) {
	x0, y0 := s.cur.apply(x, y)
	x1, y1 := s.cur.apply(x+w, y+h)

	t := weight * (s.cur.sx + s.cur.sy) / 2
	if t < 1 {
		t = 1
	}
	half := t / 2
	ox0, oy0 := round(x0-half), round(y0-half)
	ox1, oy1 := round(x1+half), round(y1+half)
	ix0, iy0 := round(x0+half), round(y0+half)
	ix1, iy1 := round(x1-half), round(y1-half)

	src := image.NewUniform(c)
	for _, r := range []image.Rectangle{
		image.Rect(ox0, oy0, ox1, iy0), // top
		image.Rect(ox0, iy1, ox1, oy1), // bottom
		image.Rect(ox0, iy0, ix0, iy1), // left
		image.Rect(ix1, iy0, ox1, iy1), // right
	} {
		xdraw.Draw(s.rgba, r.Intersect(s.rgba.Bounds()), src, image.Point{}, xdraw.Over)
	}
}

// FillText draws one line horizontally centered on x, baseline at y.
// The face size follows the vertical scale of the current transform.
func (s *Surface) FillText(str string, x, y, sizePx float64, c colors.Color) {
	face, err := s.faces.Face(sizePx * s.cur.sy)
	if err != nil {
		core.Logger().Warn("text face unavailable", "size", sizePx, "err", err)
		return
	}
	dx, dy := s.cur.apply(x, y)
	width := text.Measure(face, str)
	d := font.Drawer{
		Dst:  s.rgba,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(round(dx-width/2), round(dy)),
	}
	d.DrawString(str)
}

// DrawImage blits img into the destination rectangle with bilinear
// filtering (no dithering).
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	x0, y0 := s.cur.apply(x, y)
	x1, y1 := s.cur.apply(x+w, y+h)
	dr := image.Rect(round(x0), round(y0), round(x1), round(y1))
	if dr.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(s.rgba, dr, img, img.Bounds(), xdraw.Over, nil)
}

// Save pushes the current transform.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore pops the most recent Save. With nothing saved it is a no-op;
// over-popping is tolerated rather than panicking.
func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.cur = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) Scale(sx, sy float64) {
	s.cur.sx *= sx
	s.cur.sy *= sy
}

func (s *Surface) Translate(dx, dy float64) {
	s.cur.tx += s.cur.sx * dx
	s.cur.ty += s.cur.sy * dy
}

func round(v float64) int { return int(math.Round(v)) }
