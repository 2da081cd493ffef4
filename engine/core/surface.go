package core

import (
	"image"

	"github.com/hubastard/sketch/engine/colors"
)

// Surface is the raster target every drawing primitive resolves to.
// The gfx/raster package provides the software implementation; the
// facade holds a non-owning reference to one Surface only while a
// frame is being drawn.
type Surface interface {
	Size() (w, h int)
	Clear(c colors.Color)
	// StrokeRect outlines the rectangle with the given line weight.
	StrokeRect(x, y, w, h, weight float64, c colors.Color)
	// FillText draws one line of text horizontally centered on x, with
	// the baseline at y.
	FillText(s string, x, y, sizePx float64, c colors.Color)
	// DrawImage blits img into the destination rectangle, scaling as
	// needed with filtered (non-dithered) sampling.
	DrawImage(img image.Image, x, y, w, h float64)
	// Save pushes the current transform state; Restore pops it.
	// Restoring with nothing saved is a no-op.
	Save()
	Restore()
	Scale(sx, sy float64)
	Translate(dx, dy float64)
}
