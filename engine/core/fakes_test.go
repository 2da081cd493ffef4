package core

import (
	"image"

	"github.com/hubastard/sketch/engine/colors"
)

// op records one surface call and its arguments.
type op struct {
	name   string
	args   []float64
	color  colors.Color
	text   string
	img    image.Image
	weight float64
}

// fakeSurface records every call for assertions.
type fakeSurface struct {
	w, h int
	ops  []op
}

func newFakeSurface(w, h int) *fakeSurface { return &fakeSurface{w: w, h: h} }

func (f *fakeSurface) Size() (int, int)     { return f.w, f.h }
func (f *fakeSurface) Clear(c colors.Color) { f.ops = append(f.ops, op{name: "clear", color: c}) }
func (f *fakeSurface) Save()                { f.ops = append(f.ops, op{name: "save"}) }
func (f *fakeSurface) Restore()             { f.ops = append(f.ops, op{name: "restore"}) }

func (f *fakeSurface) Scale(sx, sy float64) {
	f.ops = append(f.ops, op{name: "scale", args: []float64{sx, sy}})
}

func (f *fakeSurface) Translate(dx, dy float64) {
	f.ops = append(f.ops, op{name: "translate", args: []float64{dx, dy}})
}

func (f *fakeSurface) StrokeRect(x, y, w, h, weight float64, c colors.Color) {
	f.ops = append(f.ops, op{name: "rect", args: []float64{x, y, w, h}, weight: weight, color: c})
}

func (f *fakeSurface) FillText(s string, x, y, sizePx float64, c colors.Color) {
	f.ops = append(f.ops, op{name: "text", text: s, args: []float64{x, y, sizePx}, color: c})
}

func (f *fakeSurface) DrawImage(img image.Image, x, y, w, h float64) {
	f.ops = append(f.ops, op{name: "image", img: img, args: []float64{x, y, w, h}})
}

func (f *fakeSurface) named(name string) []op {
	var out []op
	for _, o := range f.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

// fakeWindow tracks repaint requests and serves a live key map.
type fakeWindow struct {
	live     map[Key]bool
	repaints int
	closed   bool
}

func newFakeWindow() *fakeWindow { return &fakeWindow{live: map[Key]bool{}} }

func (f *fakeWindow) PollEvents()                 {}
func (f *fakeWindow) SwapBuffers()                {}
func (f *fakeWindow) ShouldClose() bool           { return f.closed }
func (f *fakeWindow) FramebufferSize() (int, int) { return 320, 240 }
func (f *fakeWindow) SetTitle(string)             {}
func (f *fakeWindow) IsKeyDown(k Key) bool        { return f.live[k] }
func (f *fakeWindow) RequestRepaint()             { f.repaints++ }
