// Package viewport draws the sample curve and tracks the pan/zoom state driven
// by pointer and wheel input.
//
// A Viewport is not safe for concurrent use. Initialize must run once before
// the first Render, and every method must be called on the thread that owns
// the GL context.
package viewport

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/richinsley/goplotview/curve"
	"github.com/richinsley/goplotview/graphics"
	"github.com/richinsley/goplotview/shader"
)

// PointSize is the diameter of the sample markers in device-independent units.
const PointSize = 6.0

var (
	ErrNotInitialized     = errors.New("viewport: not initialized")
	ErrAlreadyInitialized = errors.New("viewport: already initialized")
)

// DeviceLostError reports that the device failed during a frame. The device
// has to be re-established by the caller.
type DeviceLostError struct {
	Err error
}

func (e *DeviceLostError) Error() string {
	return fmt.Sprintf("viewport: device lost: %v", e.Err)
}

func (e *DeviceLostError) Unwrap() error { return e.Err }

// Viewport owns the plot program, the device-resident copy of the curve and
// the interactive view state.
type Viewport struct {
	dev    graphics.Device
	redraw graphics.Redrawer

	program     *shader.Program
	vbo         uint32
	vertexCount int

	view     ViewState
	size     Size
	anchorX  int
	anchorY  int
	dragging bool
}

// New returns a viewport drawing on dev. redraw is notified whenever input
// changes the view; it may be nil.
func New(dev graphics.Device, redraw graphics.Redrawer) *Viewport {
	if redraw == nil {
		redraw = graphics.RedrawFunc(func() {})
	}
	return &Viewport{
		dev:    dev,
		redraw: redraw,
		view:   DefaultViewState(),
	}
}

// Initialize sets the clear state, builds the plot program, uploads the
// curve samples and configures point rendering. It fails with a
// *shader.CompileError, *shader.LinkError or *shader.LocationError when the
// program cannot be built; in that case no program is left installed.
func (v *Viewport) Initialize() error {
	if v.program != nil {
		return ErrAlreadyInitialized
	}
	v.dev.SetClearState(0, 0, 0, 1, 1)

	program, err := shader.Compile(v.dev, shader.PlotVertexShader(), shader.PlotFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to build plot program: %w", err)
	}

	samples := curve.Generate(curve.SampleCount)
	vbo, err := v.dev.UploadVertices(curve.Flatten(samples))
	if err != nil {
		program.Delete()
		return fmt.Errorf("failed to upload curve: %w", err)
	}

	v.dev.SetPointStyle(PointSize, true)

	v.program = program
	v.vbo = vbo
	v.vertexCount = len(samples)
	graphics.Logger().Info("viewport initialized", slog.Int("samples", v.vertexCount), slog.Uint64("program", uint64(program.ID)))
	return nil
}

// Initialized reports whether Initialize has completed successfully.
func (v *Viewport) Initialized() bool {
	return v.program != nil
}

// Resize records the drawable size used by the next Render.
func (v *Viewport) Resize(width, height int) {
	v.dev.SetViewport(width, height)
	v.size = Size{Width: width, Height: height}
	graphics.Logger().Debug("viewport resized", slog.Int("width", width), slog.Int("height", height))
}

// Size returns the size recorded by the last Resize.
func (v *Viewport) Size() Size {
	return v.size
}

// Render draws the curve as a line strip with a point at every sample, the
// points after the line so they stay on top. It returns ErrNotInitialized
// before Initialize and a *DeviceLostError if the device fails.
func (v *Viewport) Render() error {
	if v.program == nil {
		return ErrNotInitialized
	}
	p := v.program
	u := v.view.Uniforms(v.size)

	v.dev.Clear()
	v.dev.UseProgram(p.ID)
	v.dev.Uniform1f(p.Scale, u.Scale)
	v.dev.Uniform1f(p.Width, u.W)
	v.dev.Uniform1f(p.Height, u.H)
	v.dev.Uniform1f(p.OffsetX, u.OffsetX)
	v.dev.Uniform1f(p.OffsetY, u.OffsetY)

	v.dev.BindVertices(v.vbo, p.Position)
	v.dev.DrawArrays(graphics.LineStrip, 0, v.vertexCount)
	v.dev.DrawArrays(graphics.Points, 0, v.vertexCount)

	if err := v.dev.Err(); err != nil {
		return &DeviceLostError{Err: err}
	}
	return nil
}

// ViewState returns a snapshot of the current view state.
func (v *Viewport) ViewState() ViewState {
	return v.view
}

// SetViewState replaces the view state, ending any drag in progress, and
// requests a redraw.
func (v *Viewport) SetViewState(vs ViewState) {
	v.view = vs
	v.dragging = false
	v.redraw.RequestRedraw()
}

// OnWheel zooms by exp(-delta/ZoomDivisor) so repeated ticks compound.
func (v *Viewport) OnWheel(delta float64) {
	v.view.Scale = v.view.Zoomed(delta)
	v.redraw.RequestRedraw()
}

// OnPointerDown anchors a drag at (x, y).
func (v *Viewport) OnPointerDown(x, y int) {
	v.anchorX, v.anchorY = x, y
	v.dragging = true
}

// OnPointerMove shows the drag from the anchor to (x, y) without committing it.
func (v *Viewport) OnPointerMove(x, y int) {
	if !v.dragging {
		return
	}
	v.view.TmpOffsetX, v.view.TmpOffsetY = DragOffset(x-v.anchorX, y-v.anchorY, v.size, v.view.Scale)
	v.redraw.RequestRedraw()
}

// OnPointerUp commits the drag from the anchor to (x, y) into the offset.
func (v *Viewport) OnPointerUp(x, y int) {
	if !v.dragging {
		return
	}
	dx, dy := DragOffset(x-v.anchorX, y-v.anchorY, v.size, v.view.Scale)
	v.view.OffsetX += dx
	v.view.OffsetY += dy
	v.view.TmpOffsetX, v.view.TmpOffsetY = 0, 0
	v.dragging = false
	v.redraw.RequestRedraw()
}

// Destroy releases the program and the vertex buffer. The viewport must be
// initialized again before further rendering.
func (v *Viewport) Destroy() {
	if v.program == nil {
		return
	}
	v.dev.DeleteVertices(v.vbo)
	v.program.Delete()
	v.program = nil
	v.vbo = 0
	v.vertexCount = 0
}

var _ graphics.InputHandler = (*Viewport)(nil)
