package core

import (
	"runtime"
	"time"
)

// EventWindow is a Window that delivers events through a callback.
type EventWindow interface {
	Window
	SetEventCallback(cb func(Event))
}

// Backend couples the raster surface with whatever presents it on
// screen. The gfx packages provide the software-raster + GL pairing.
type Backend interface {
	// Surface returns the current raster target. Resize may replace it.
	Surface() Surface
	Resize(w, h int) error
	// Present pushes the surface contents to the window.
	Present() error
	Shutdown()
}

// Run wires the platform window and backend together and executes the
// main loop: poll events, then at a fixed 60 Hz cadence render one
// frame and present it. Repaint requests arriving between ticks
// coalesce into the next tick. Run returns when the window closes or
// when a client callback fails.
func Run(cfg Config, newWindow func(*Config) (EventWindow, error), newBackend func(Window) (Backend, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(&cfg)
	if err != nil {
		return err
	}

	backend, err := newBackend(win)
	if err != nil {
		return err
	}
	defer backend.Shutdown()

	fw, fh := win.FramebufferSize()
	if err := backend.Resize(fw, fh); err != nil {
		return err
	}

	p := New(&cfg, win)

	// Client callback errors raised inside event handlers surface on
	// the next loop pass.
	var cbErr error
	win.SetEventCallback(func(ev Event) {
		switch e := ev.(type) {
		case EventKey:
			var err error
			if e.Down {
				err = p.OnKeyDown(e.Key)
			} else {
				err = p.OnKeyUp(e.Key)
			}
			if err != nil && cbErr == nil {
				cbErr = err
			}
		case EventResize:
			if e.W < 1 || e.H < 1 {
				return
			}
			if err := backend.Resize(e.W, e.H); err != nil && cbErr == nil {
				cbErr = err
			}
		}
	})

	if err := p.RunSetup(); err != nil {
		return err
	}
	Logger().Info("sketch running", "title", cfg.Title, "width", fw, "height", fh)

	const tick = time.Second / 60
	var (
		accum time.Duration
		prev  = time.Now()
	)
	for !win.ShouldClose() {
		win.PollEvents()
		if cbErr != nil {
			return cbErr
		}

		now := time.Now()
		accum += now.Sub(prev)
		prev = now
		if accum < tick {
			time.Sleep(tick - accum)
			continue
		}
		// However many ticks elapsed, exactly one repaint.
		accum %= tick

		if err := p.RenderFrame(backend.Surface()); err != nil {
			return err
		}
		if err := backend.Present(); err != nil {
			return err
		}
		win.SwapBuffers()
	}

	Logger().Info("window closed, sketch exiting")
	return nil
}
