package core

import (
	"fmt"

	"github.com/hubastard/sketch/engine/assets"
	"github.com/hubastard/sketch/engine/colors"
)

// P5 is the sketch facade: one instance per running application. It
// carries the drawing vocabulary (Background, Rect, Text, Image,
// Push/Pop, Scale/Translate, style setters) and threads the active
// surface and style state through every call.
//
// Drawing primitives are valid only while the Draw callback is
// executing; calling one outside that window fails with ErrNotDrawing.
// Style setters and queries are valid at any time.
type P5 struct {
	cfg *Config
	win Window

	inDraw bool
	surf   Surface
	w, h   int

	bg    colors.Color
	hasBG bool

	style  Style
	images *assets.ImageCache
	input  *Input

	setupDone bool
}

// New creates the facade for the given config and host window.
func New(cfg *Config, win Window) *P5 {
	return &P5{
		cfg:    cfg,
		win:    win,
		style:  defaultStyle(),
		images: assets.NewImageCache(cfg.Assets),
		input:  NewInput(),
	}
}

// Input exposes the tracked keyboard state (last transition, held set).
func (p *P5) Input() *Input { return p.input }

// Images exposes the image cache.
func (p *P5) Images() *assets.ImageCache { return p.images }

// RunSetup invokes the client's Setup callback. It runs at most once,
// before the first frame; later calls are no-ops.
func (p *P5) RunSetup() error {
	if p.setupDone {
		return nil
	}
	p.setupDone = true
	if p.cfg.Setup == nil {
		return nil
	}
	return p.cfg.Setup(p)
}

// RenderFrame executes one frame against surf: style state is reset to
// defaults, the persisted background (if any) is applied, and the
// client's Draw callback runs with the facade bound to surf.
//
// A nested call while a frame is already executing is ignored. The
// facade always returns to the idle state when the frame ends, even
// when the Draw callback fails; the error is passed through.
func (p *P5) RenderFrame(surf Surface) error {
	if p.inDraw {
		return nil
	}
	p.inDraw = true
	p.style = defaultStyle()
	p.surf = surf
	p.w, p.h = surf.Size()
	defer func() {
		p.inDraw = false
		p.surf = nil
	}()

	if p.hasBG {
		surf.Clear(p.bg)
	}
	if p.cfg.Draw == nil {
		return nil
	}
	return p.cfg.Draw(p)
}

// Width reports the active surface's pixel width. Outside the Draw
// callback the value is stale; guarding that is the caller's job.
func (p *P5) Width() int { return p.w }

// Height reports the active surface's pixel height; see Width.
func (p *P5) Height() int { return p.h }

// Background sets the backdrop. During Setup (or any time outside a
// frame) the color persists and every future frame starts cleared to
// it. During a frame the surface is cleared immediately, once, leaving
// the persisted color untouched.
func (p *P5) Background(spec string) error {
	c, err := colors.Parse(spec)
	if err != nil {
		return err
	}
	if p.inDraw {
		p.surf.Clear(c)
		return nil
	}
	p.bg = c
	p.hasBG = true
	return nil
}

// Stroke sets the outline color used by Rect and the ink used by Text.
func (p *P5) Stroke(spec string) error {
	c, err := colors.Parse(spec)
	if err != nil {
		return err
	}
	p.style.Stroke = c
	p.style.HasStroke = true
	return nil
}

// NoStroke unsets the stroke color; Rect becomes a no-op.
func (p *P5) NoStroke() { p.style.HasStroke = false }

// StrokeWidth sets the outline line width.
func (p *P5) StrokeWidth(w float64) { p.style.StrokeWeight = w }

// TextSize sets the text pixel size.
func (p *P5) TextSize(s float64) { p.style.TextSize = s }

// Rect outlines the rectangle with the current stroke color and
// weight. Without a stroke color set the call draws nothing. There is
// no fill variant; Rect is an outline primitive.
func (p *P5) Rect(x, y, w, h float64) error {
	if !p.inDraw {
		return phaseErr("Rect")
	}
	if !p.style.HasStroke {
		return nil
	}
	p.surf.StrokeRect(x, y, w, h, p.style.StrokeWeight, p.style.Stroke)
	return nil
}

// Text draws s horizontally centered on x with the baseline at y,
// using the stroke color as ink, or black when none is set.
func (p *P5) Text(s string, x, y float64) error {
	if !p.inDraw {
		return phaseErr("Text")
	}
	ink := colors.Black
	if p.style.HasStroke {
		ink = p.style.Stroke
	}
	p.surf.FillText(s, x, y, p.style.TextSize, ink)
	return nil
}

// Image draws the named image, loading and caching it on first use.
// With no extra arguments the image lands at the origin at its natural
// size; two arguments position it; four give the full destination
// rectangle.
func (p *P5) Image(name string, args ...float64) error {
	if !p.inDraw {
		return phaseErr("Image")
	}
	img, err := p.images.Load(name)
	if err != nil {
		return err
	}
	x, y := 0.0, 0.0
	w, h := float64(img.Width()), float64(img.Height())
	switch len(args) {
	case 0:
	case 2:
		x, y = args[0], args[1]
	case 4:
		x, y, w, h = args[0], args[1], args[2], args[3]
	default:
		return fmt.Errorf("Image %q: want 0, 2 or 4 position arguments, got %d", name, len(args))
	}
	p.surf.DrawImage(img.Source(), x, y, w, h)
	return nil
}

// Push saves the surface's transform state. Every Push must be matched
// by a Pop before the frame ends.
func (p *P5) Push() error {
	if !p.inDraw {
		return phaseErr("Push")
	}
	p.surf.Save()
	return nil
}

// Pop restores the most recently pushed transform state. Popping with
// nothing pushed is left to the surface, which treats it as a no-op.
func (p *P5) Pop() error {
	if !p.inDraw {
		return phaseErr("Pop")
	}
	p.surf.Restore()
	return nil
}

// Scale scales the current transform: one argument scales both axes,
// two scale x and y independently.
func (p *P5) Scale(v ...float64) error {
	if !p.inDraw {
		return phaseErr("Scale")
	}
	sx, sy, err := axisArgs("Scale", v)
	if err != nil {
		return err
	}
	p.surf.Scale(sx, sy)
	return nil
}

// Translate shifts the current transform: one argument shifts both
// axes, two shift x and y independently.
func (p *P5) Translate(v ...float64) error {
	if !p.inDraw {
		return phaseErr("Translate")
	}
	dx, dy, err := axisArgs("Translate", v)
	if err != nil {
		return err
	}
	p.surf.Translate(dx, dy)
	return nil
}

func axisArgs(op string, v []float64) (float64, float64, error) {
	switch len(v) {
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("%s: want 1 or 2 arguments, got %d", op, len(v))
}

// KeyIsDown reports whether the key is held right now, straight from
// the windowing system's live keyboard state. This intentionally skips
// the tracked held set, which exists for the KeyDown callback's view.
func (p *P5) KeyIsDown(k Key) bool {
	return p.win != nil && p.win.IsKeyDown(k)
}

// DoesCollide reports strict overlap of two axis-aligned rectangles.
func (p *P5) DoesCollide(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return DoesCollide(x1, y1, w1, h1, x2, y2, w2, h2)
}

// OnKeyDown feeds a key press into the facade: the tracker records it,
// the client's KeyDown callback runs, and a repaint is requested.
func (p *P5) OnKeyDown(k Key) error {
	p.input.press(k)
	return p.notifyKey(k)
}

// OnKeyUp feeds a key release into the facade. Releases run through
// the same KeyDown callback as presses; the tracked held set is how
// clients tell the two apart.
func (p *P5) OnKeyUp(k Key) error {
	p.input.release(k)
	return p.notifyKey(k)
}

func (p *P5) notifyKey(k Key) error {
	var err error
	if p.cfg.KeyDown != nil {
		err = p.cfg.KeyDown(p, k)
	}
	if p.win != nil {
		p.win.RequestRepaint()
	}
	return err
}
