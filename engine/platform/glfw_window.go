package platform

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/sketch/engine/core"
)

// GLFWWindow implements core.EventWindow and pushes events to the
// engine via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// NewGLFWWindow creates the host window. Must be called on the main
// thread before any GL calls. A fixed width or height in cfg makes the
// window non-resizable.
func NewGLFWWindow(cfg *core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	width, height := cfg.Width, cfg.Height
	if width > 0 || height > 0 {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, err
	}
	core.Logger().Info("GL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action == glfw.Press})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.EventWindow impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// IsKeyDown asks GLFW for the live key state.
func (g *GLFWWindow) IsKeyDown(k core.Key) bool {
	gk := toGLFWKey(k)
	if gk == glfw.KeyUnknown {
		return false
	}
	return g.w.GetKey(gk) == glfw.Press
}

// RequestRepaint wakes a blocked event wait. The run loop repaints at
// its fixed tick, so requests between ticks coalesce.
func (g *GLFWWindow) RequestRepaint() { glfw.PostEmptyEvent() }

var keyPairs = []struct {
	g glfw.Key
	c core.Key
}{
	{glfw.KeyA, core.KeyA}, {glfw.KeyB, core.KeyB}, {glfw.KeyC, core.KeyC},
	{glfw.KeyD, core.KeyD}, {glfw.KeyE, core.KeyE}, {glfw.KeyF, core.KeyF},
	{glfw.KeyG, core.KeyG}, {glfw.KeyH, core.KeyH}, {glfw.KeyI, core.KeyI},
	{glfw.KeyJ, core.KeyJ}, {glfw.KeyK, core.KeyK}, {glfw.KeyL, core.KeyL},
	{glfw.KeyM, core.KeyM}, {glfw.KeyN, core.KeyN}, {glfw.KeyO, core.KeyO},
	{glfw.KeyP, core.KeyP}, {glfw.KeyQ, core.KeyQ}, {glfw.KeyR, core.KeyR},
	{glfw.KeyS, core.KeyS}, {glfw.KeyT, core.KeyT}, {glfw.KeyU, core.KeyU},
	{glfw.KeyV, core.KeyV}, {glfw.KeyW, core.KeyW}, {glfw.KeyX, core.KeyX},
	{glfw.KeyY, core.KeyY}, {glfw.KeyZ, core.KeyZ},
	{glfw.Key0, core.Key0}, {glfw.Key1, core.Key1}, {glfw.Key2, core.Key2},
	{glfw.Key3, core.Key3}, {glfw.Key4, core.Key4}, {glfw.Key5, core.Key5},
	{glfw.Key6, core.Key6}, {glfw.Key7, core.Key7}, {glfw.Key8, core.Key8},
	{glfw.Key9, core.Key9},
	{glfw.KeySpace, core.KeySpace}, {glfw.KeyEnter, core.KeyEnter},
	{glfw.KeyEscape, core.KeyEscape}, {glfw.KeyTab, core.KeyTab},
	{glfw.KeyBackspace, core.KeyBackspace},
	{glfw.KeyLeft, core.KeyLeft}, {glfw.KeyRight, core.KeyRight},
	{glfw.KeyUp, core.KeyUp}, {glfw.KeyDown, core.KeyDown},
	{glfw.KeyLeftShift, core.KeyLeftShift}, {glfw.KeyRightShift, core.KeyRightShift},
	{glfw.KeyLeftControl, core.KeyLeftControl}, {glfw.KeyRightControl, core.KeyRightControl},
}

var (
	glfwToCore = map[glfw.Key]core.Key{}
	coreToGLFW = map[core.Key]glfw.Key{}
)

func init() {
	for _, p := range keyPairs {
		glfwToCore[p.g] = p.c
		coreToGLFW[p.c] = p.g
	}
}

func translateKey(k glfw.Key) core.Key {
	if c, ok := glfwToCore[k]; ok {
		return c
	}
	return core.KeyUnknown
}

func toGLFWKey(k core.Key) glfw.Key {
	if g, ok := coreToGLFW[k]; ok {
		return g
	}
	return glfw.KeyUnknown
}
