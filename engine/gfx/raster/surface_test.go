package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sketch/engine/colors"
	"github.com/hubastard/sketch/engine/text"
)

var red = colors.Color{R: 255, A: 255}

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	faces, err := text.NewFaces()
	require.NoError(t, err)
	return New(w, h, faces)
}

func pixel(s *Surface, x, y int) color.RGBA {
	return s.RGBA().RGBAAt(x, y)
}

func TestClear(t *testing.T) {
	s := newTestSurface(t, 16, 16)
	s.Clear(colors.Color{R: 0x11, G: 0x22, B: 0x33, A: 255})

	want := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}
	assert.Equal(t, want, pixel(s, 0, 0))
	assert.Equal(t, want, pixel(s, 15, 15))
}

func TestStrokeRectOutlineOnly(t *testing.T) {
	s := newTestSurface(t, 64, 64)
	s.StrokeRect(10, 10, 20, 10, 2, red)

	assert.Equal(t, uint8(255), pixel(s, 10, 10).R, "top-left edge stroked")
	assert.Equal(t, uint8(255), pixel(s, 30, 20).R, "bottom-right edge stroked")
	assert.Zero(t, pixel(s, 20, 15).A, "interior untouched")
	assert.Zero(t, pixel(s, 5, 5).A, "outside untouched")
}

func TestStrokeRectClipsToBounds(t *testing.T) {
	s := newTestSurface(t, 16, 16)
	// Mostly off-surface; must not panic and must still mark the
	// visible part.
	s.StrokeRect(-10, -10, 20, 20, 2, red)
	assert.Equal(t, uint8(255), pixel(s, 10, 5).R)
}

func TestTranslate(t *testing.T) {
	s := newTestSurface(t, 64, 64)
	s.Translate(10, 10)
	s.StrokeRect(0, 0, 5, 5, 2, red)

	assert.Equal(t, uint8(255), pixel(s, 10, 10).R)
	assert.Zero(t, pixel(s, 0, 0).A)
}

func TestScale(t *testing.T) {
	s := newTestSurface(t, 64, 64)
	s.Scale(2, 2)
	s.StrokeRect(5, 5, 10, 10, 1, red)

	// Device-space rect is (10,10)-(30,30).
	assert.Equal(t, uint8(255), pixel(s, 10, 10).R)
	assert.Equal(t, uint8(255), pixel(s, 30, 30).R)
	assert.Zero(t, pixel(s, 5, 5).A)
}

func TestTranslateComposesUnderScale(t *testing.T) {
	s := newTestSurface(t, 64, 64)
	s.Scale(2, 2)
	s.Translate(5, 5) // device offset 10,10
	s.StrokeRect(0, 0, 4, 4, 1, red)

	assert.Equal(t, uint8(255), pixel(s, 10, 10).R)
}

func TestSaveRestore(t *testing.T) {
	s := newTestSurface(t, 128, 64)
	s.Translate(50, 30)
	s.Save()
	s.Translate(40, 0)
	s.Restore()
	s.StrokeRect(0, 0, 4, 4, 2, red)

	assert.Equal(t, uint8(255), pixel(s, 50, 30).R, "restored to the outer transform")
	assert.Zero(t, pixel(s, 90, 30).A, "inner translate discarded")
}

func TestRestoreWithoutSaveIsNoop(t *testing.T) {
	s := newTestSurface(t, 32, 32)
	s.Translate(10, 10)
	s.Restore() // nothing saved; must neither panic nor reset
	s.StrokeRect(0, 0, 4, 4, 2, red)

	assert.Equal(t, uint8(255), pixel(s, 10, 10).R)
}

func TestDrawImage(t *testing.T) {
	s := newTestSurface(t, 32, 32)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	s.DrawImage(src, 4, 4, 8, 8)
	center := pixel(s, 8, 8)
	assert.Equal(t, uint8(255), center.R, "scaled blit covers the dest rect center")
	assert.Zero(t, pixel(s, 0, 0).A)
	assert.Zero(t, pixel(s, 20, 20).A)
}

func TestDrawImageEmptyDest(t *testing.T) {
	s := newTestSurface(t, 32, 32)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s.DrawImage(src, 4, 4, 0, 0) // nothing to do
	assert.Zero(t, pixel(s, 4, 4).A)
}

func TestFillTextMarksPixels(t *testing.T) {
	s := newTestSurface(t, 100, 40)
	s.FillText("X", 50, 30, 16, colors.White)

	// Centered on x=50: coverage must appear near it and only there.
	assert.True(t, anyInk(s, 40, 10, 60, 32), "glyph coverage near the anchor")
	assert.False(t, anyInk(s, 0, 0, 30, 40), "nothing far left of center")
	assert.False(t, anyInk(s, 70, 0, 100, 40), "nothing far right of center")
}

func anyInk(s *Surface, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if s.RGBA().RGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func TestPixelsPersistAcrossFrames(t *testing.T) {
	s := newTestSurface(t, 16, 16)
	s.StrokeRect(2, 2, 4, 4, 2, red)
	// No clear between frames: previous pixels stay put.
	assert.Equal(t, uint8(255), pixel(s, 2, 2).R)
}
