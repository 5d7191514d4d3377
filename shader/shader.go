package shader

// ──────────────────────────────────── Plot ─────────────────────────────────────

// The vertex stage maps the sample into normalized device coordinates. The
// longer screen axis is shrunk by the aspect ratio so the curve keeps its
// proportions in a non-square viewport.
const plotVertexShaderSource = `#version 120
attribute vec2 position;
uniform float w, h, scale, offset_x, offset_y;
void main()
{
    float x, y;
    if (w > h) {
        x = (position.x + offset_x) * scale * h / w;
        y = (position.y + offset_y) * scale;
    } else {
        x = (position.x + offset_x) * scale;
        y = (position.y + offset_y) * scale * w / h;
    }
    gl_Position = vec4(x, y, 0.0, 1.0);
}
`

const plotFragmentShaderSource = `#version 120
void main()
{
    gl_FragColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// Names bound by the plot program.
const (
	PositionAttrib = "position"
	ScaleUniform   = "scale"
	OffsetXUniform = "offset_x"
	OffsetYUniform = "offset_y"
	WidthUniform   = "w"
	HeightUniform  = "h"
)

// ────────────────────────────────── Public API ─────────────────────────────────

func PlotVertexShader() string {
	return plotVertexShaderSource
}

func PlotFragmentShader() string {
	return plotFragmentShaderSource
}
