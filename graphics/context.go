package graphics

// Context defines the interface for the host window owning the GL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}

// InputHandler receives the host window's size and pointer events.
// Coordinates are framebuffer pixels with y growing downward.
type InputHandler interface {
	Resize(width, height int)
	OnWheel(delta float64)
	OnPointerDown(x, y int)
	OnPointerMove(x, y int)
	OnPointerUp(x, y int)
}

// Redrawer accepts redraw requests. Requests must not block and may be
// coalesced, so several requests before a frame produce a single render.
type Redrawer interface {
	RequestRedraw()
}

// RedrawFunc adapts an ordinary function to Redrawer.
type RedrawFunc func()

func (f RedrawFunc) RequestRedraw() { f() }
