package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ZoomDivisor sets how fast wheel rotation changes the scale: each unit of
// delta multiplies the scale by exp(-1/ZoomDivisor).
const ZoomDivisor = 400.0

// Size is the drawable area in device pixels.
type Size struct {
	Width, Height int
}

// ViewState is the interactive pan/zoom state. Offset is the committed pan;
// TmpOffset is the drag delta not yet committed and is zero outside a drag.
type ViewState struct {
	OffsetX, OffsetY       float32
	TmpOffsetX, TmpOffsetY float32
	Scale                  float32
}

// DefaultViewState is the state a new viewport starts with.
func DefaultViewState() ViewState {
	return ViewState{Scale: 1}
}

// Zoomed returns the scale after a wheel rotation of delta.
func (vs ViewState) Zoomed(delta float64) float32 {
	return float32(float64(vs.Scale) * math.Exp(-delta/ZoomDivisor))
}

// DragOffset maps a pointer delta in screen pixels to a pan delta in plot
// units. The smaller side of the viewport is the common divisor, matching the
// axis the vertex stage leaves unscaled, and dividing by scale keeps a drag
// visually constant under zoom. Screen y grows downward, so dy is negated.
func DragOffset(dx, dy int, size Size, scale float32) (float32, float32) {
	d := size.Height
	if size.Width < size.Height {
		d = size.Width
	}
	if d <= 0 {
		return 0, 0
	}
	ox := 2.0 * float32(dx) / float32(d) / scale
	oy := -2.0 * float32(dy) / float32(d) / scale
	return ox, oy
}

// Uniforms holds the values uploaded to the plot program for one frame.
type Uniforms struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
	W, H    float32
}

// Uniforms returns the per-frame uniform values. An in-progress drag is
// included in the offsets so it is visible before it is committed.
func (vs ViewState) Uniforms(size Size) Uniforms {
	return Uniforms{
		Scale:   vs.Scale,
		OffsetX: vs.OffsetX + vs.TmpOffsetX,
		OffsetY: vs.OffsetY + vs.TmpOffsetY,
		W:       float32(size.Width),
		H:       float32(size.Height),
	}
}

// WideAspect reports whether the vertex stage takes the branch that scales x
// by h/w.
func (u Uniforms) WideAspect() bool {
	return u.W > u.H
}

// Apply evaluates the vertex stage on the CPU and returns the normalized
// device coordinates of p.
func (u Uniforms) Apply(p mgl32.Vec2) mgl32.Vec2 {
	x := (p.X() + u.OffsetX) * u.Scale
	y := (p.Y() + u.OffsetY) * u.Scale
	if u.WideAspect() {
		x = x * u.H / u.W
	} else {
		y = y * u.W / u.H
	}
	return mgl32.Vec2{x, y}
}
