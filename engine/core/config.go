package core

import "io/fs"

// Point is a position in surface pixels.
type Point struct{ X, Y float64 }

// Config describes the window and the client's sketch callbacks.
type Config struct {
	Title string
	// Width/Height of the window in pixels. Setting either makes the
	// window non-resizable.
	Width  int
	Height int
	// Assets is the bundled resource fallback for image loading
	// (typically an embed.FS). May be nil.
	Assets fs.FS

	// Setup runs once, before the first frame.
	Setup func(p *P5) error
	// Draw runs every frame at the fixed tick.
	Draw func(p *P5) error
	// KeyDown runs on every key transition. Note that key releases are
	// delivered here too; inspect p.Input() to distinguish.
	KeyDown func(p *P5, k Key) error

	// Reserved extension points. No event source feeds these yet; they
	// are declared for forward compatibility and never fire.
	MouseDown  func(pt Point)
	MouseUp    func(pt Point)
	MouseMove  func(pt Point) bool
	MouseWheel func(delta float64)
}
