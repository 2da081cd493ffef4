package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/sketch/engine/core"
	glbackend "github.com/hubastard/sketch/engine/gfx/gl"
	"github.com/hubastard/sketch/engine/platform"
)

// A small sketch: steer a box with the arrow keys, collide with a
// fixed obstacle, flash the background on impact.
type game struct {
	x, y float64
	hit  bool
}

const (
	boxSize   = 48.0
	obstacleX = 400.0
	obstacleY = 200.0
	speed     = 4.0
)

func (g *game) setup(p *core.P5) error {
	return p.Background("DarkSlateGray")
}

func (g *game) draw(p *core.P5) error {
	if p.KeyIsDown(core.KeyLeft) {
		g.x -= speed
	}
	if p.KeyIsDown(core.KeyRight) {
		g.x += speed
	}
	if p.KeyIsDown(core.KeyUp) {
		g.y -= speed
	}
	if p.KeyIsDown(core.KeyDown) {
		g.y += speed
	}

	g.hit = p.DoesCollide(g.x, g.y, boxSize, boxSize,
		obstacleX, obstacleY, boxSize, boxSize)
	if g.hit {
		if err := p.Background("#802020"); err != nil {
			return err
		}
	}

	if err := p.Stroke("white"); err != nil {
		return err
	}
	p.StrokeWidth(2)
	if err := p.Rect(obstacleX, obstacleY, boxSize, boxSize); err != nil {
		return err
	}

	if err := p.Stroke("#00e080"); err != nil {
		return err
	}
	if err := p.Rect(g.x, g.y, boxSize, boxSize); err != nil {
		return err
	}

	p.TextSize(18)
	return p.Text("arrow keys to move", float64(p.Width())/2, 28)
}

func (g *game) keyDown(p *core.P5, k core.Key) error {
	if k == core.KeyR && p.Input().IsHeld(k) {
		g.x, g.y = 0, 0
	}
	return nil
}

func main() {
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	g := &game{x: 100, y: 100}
	cfg := core.Config{
		Title:   "sketch sandbox",
		Width:   800,
		Height:  450,
		Setup:   g.setup,
		Draw:    g.draw,
		KeyDown: g.keyDown,
	}

	newWindow := func(cfg *core.Config) (core.EventWindow, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newBackend := func(win core.Window) (core.Backend, error) {
		return glbackend.NewBackend(win)
	}

	if err := core.Run(cfg, newWindow, newBackend); err != nil {
		log.Fatal(err)
	}
}
