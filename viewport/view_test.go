package viewport

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDragOffset(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		size   Size
		scale  float32
		wantX  float32
		wantY  float32
	}{
		{"landscape uses height", 50, 30, Size{800, 600}, 2, 50.0 / 600, -30.0 / 600},
		{"portrait uses width", 50, 30, Size{600, 800}, 1, 100.0 / 600, -60.0 / 600},
		{"square", -100, -100, Size{400, 400}, 1, -0.5, 0.5},
		{"zoomed out", 10, 0, Size{200, 100}, 0.5, 0.4, 0},
		{"empty size", 10, 10, Size{0, 0}, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := DragOffset(tt.dx, tt.dy, tt.size, tt.scale)
			assert.InDelta(t, tt.wantX, x, 1e-6)
			assert.InDelta(t, tt.wantY, y, 1e-6)
		})
	}
}

func TestUniformsApplyLandscape(t *testing.T) {
	u := ViewState{Scale: 1}.Uniforms(Size{800, 600})
	assert.True(t, u.WideAspect())

	got := u.Apply(mgl32.Vec2{1, 1})
	assert.InDelta(t, 0.75, got.X(), 1e-6)
	assert.InDelta(t, 1.0, got.Y(), 1e-6)
}

func TestUniformsApplyPortrait(t *testing.T) {
	u := ViewState{Scale: 1}.Uniforms(Size{600, 800})
	assert.False(t, u.WideAspect())

	got := u.Apply(mgl32.Vec2{1, 1})
	assert.InDelta(t, 1.0, got.X(), 1e-6)
	assert.InDelta(t, 0.75, got.Y(), 1e-6)
}

func TestUniformsApplyOffsetScale(t *testing.T) {
	vs := ViewState{OffsetX: 0.5, TmpOffsetX: 0.25, OffsetY: -0.25, Scale: 2}
	got := vs.Uniforms(Size{500, 500}).Apply(mgl32.Vec2{0.25, 0.75})
	assert.InDelta(t, 2.0, got.X(), 1e-6)
	assert.InDelta(t, 1.0, got.Y(), 1e-6)
}

func TestDragThenApplyFollowsPointer(t *testing.T) {
	// Dragging by a quarter of the short side moves a point by half an NDC unit.
	size := Size{800, 600}
	vs := ViewState{Scale: 3}
	before := vs.Uniforms(size).Apply(mgl32.Vec2{0, 0})

	vs.OffsetX, vs.OffsetY = DragOffset(150, 150, size, vs.Scale)
	after := vs.Uniforms(size).Apply(mgl32.Vec2{0, 0})

	assert.InDelta(t, 0.5*600/800, after.X()-before.X(), 1e-6)
	assert.InDelta(t, -0.5, after.Y()-before.Y(), 1e-6)
}
