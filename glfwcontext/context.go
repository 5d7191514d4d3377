package glfwcontext

import (
	"log"
	"runtime"
	"sync/atomic"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goplotview/graphics"
	options "github.com/richinsley/goplotview/options"
)

// WheelNotch converts GLFW scroll offsets, one unit per notch, into the
// angle-delta units used by the viewport zoom.
const WheelNotch = 120.0

// Context owns the GLFW window and forwards its events to an input handler.
type Context struct {
	window       *glfw.Window
	handler      graphics.InputHandler
	pointerDown  bool
	redraw       atomic.Bool
	keyCallbacks map[glfw.Key]func()
}

// New creates and initializes a new GLFW window with an OpenGL 2.1 context.
func New(options *options.ViewerOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	if *options.Samples > 0 {
		glfw.WindowHint(glfw.Samples, *options.Samples)
	}

	win, err := glfw.CreateWindow(*options.Width, *options.Height, *options.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	// The plot needs room for both axes.
	win.SetSizeLimits(500, 500, glfw.DontCare, glfw.DontCare)

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)
	win.SetRefreshCallback(func(*glfw.Window) { c.RequestRedraw() })

	return c, nil
}

// SetInputHandler routes size and pointer events to h and sends it the
// current framebuffer size.
func (c *Context) SetInputHandler(h graphics.InputHandler) {
	c.handler = h
	if h != nil {
		h.Resize(c.GetFramebufferSize())
		c.RequestRedraw()
	}
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.handler == nil || width <= 0 || height <= 0 {
		return
	}
	c.handler.Resize(width, height)
	c.RequestRedraw()
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if c.handler == nil || button != glfw.MouseButtonLeft {
		return
	}
	x, y := c.framebufferPos(w.GetCursorPos())
	switch action {
	case glfw.Press:
		c.pointerDown = true
		c.handler.OnPointerDown(x, y)
	case glfw.Release:
		if c.pointerDown {
			c.pointerDown = false
			c.handler.OnPointerUp(x, y)
		}
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if c.handler == nil || !c.pointerDown {
		return
	}
	c.handler.OnPointerMove(c.framebufferPos(xpos, ypos))
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	if c.handler == nil || yoff == 0 {
		return
	}
	c.handler.OnWheel(yoff * WheelNotch)
}

// framebufferPos converts window coordinates to framebuffer pixels so pointer
// deltas and the viewport size share units on HiDPI displays.
func (c *Context) framebufferPos(x, y float64) (int, int) {
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	scaleX, scaleY := 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	return int(x * scaleX), int(y * scaleY)
}

// RequestRedraw marks a frame as pending and wakes the event loop. Requests
// made before the next frame collapse into one. Safe to call from any goroutine.
func (c *Context) RequestRedraw() {
	if !c.redraw.Swap(true) {
		glfw.PostEmptyEvent()
	}
}

// TakeRedraw reports whether a frame was requested and clears the request.
func (c *Context) TakeRedraw() bool {
	return c.redraw.Swap(false)
}

// WaitEvents blocks until an event arrives, or until timeout seconds pass
// when timeout is positive, and dispatches the pending events.
func (c *Context) WaitEvents(timeout float64) {
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout)
		return
	}
	glfw.WaitEvents()
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// SetSwapInterval sets the swap interval of the current context.
func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

var (
	_ graphics.Context  = (*Context)(nil)
	_ graphics.Redrawer = (*Context)(nil)
)
