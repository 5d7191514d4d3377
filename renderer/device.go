// Package renderer implements graphics.Device on the OpenGL 2.1
// compatibility profile, which keeps point smoothing and GLSL 1.20.
package renderer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/richinsley/goplotview/graphics"
)

// Ensure gl.Init() runs only once per process.
var glInitOnce sync.Once

// Device issues GL calls on the context current on the calling thread.
type Device struct{}

// NewDevice makes ctx current and loads the GL function pointers.
func NewDevice(ctx graphics.Context) (*Device, error) {
	ctx.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	graphics.Logger().Info("OpenGL initialized",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))
	return &Device{}, nil
}

func (d *Device) SetClearState(r, g, b, a float32, depth float64) {
	gl.ClearColor(r, g, b, a)
	gl.ClearDepth(depth)
}

func (d *Device) SetPointStyle(size float32, smooth bool) {
	if smooth {
		gl.Enable(gl.POINT_SMOOTH)
	} else {
		gl.Disable(gl.POINT_SMOOTH)
	}
	gl.PointSize(size)
}

func (d *Device) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) CreateShader(stage graphics.Stage) uint32 {
	switch stage {
	case graphics.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return false, strings.TrimRight(logText, "\x00")
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return false, strings.TrimRight(log, "\x00")
	}
	return true, ""
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Device) UploadVertices(data []float32) (uint32, error) {
	if len(data) == 0 || len(data)%2 != 0 {
		return 0, fmt.Errorf("vertex data must hold whole 2D positions, got %d floats", len(data))
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &vbo)
		return 0, fmt.Errorf("glBufferData failed: %s", errorName(code))
	}
	return vbo, nil
}

func (d *Device) BindVertices(buffer uint32, attrib uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointer(attrib, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
}

func (d *Device) DeleteVertices(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) DrawArrays(mode graphics.Primitive, first, count int) {
	glMode := uint32(gl.POINTS)
	if mode == graphics.LineStrip {
		glMode = gl.LINE_STRIP
	}
	gl.DrawArrays(glMode, int32(first), int32(count))
}

// Err drains the GL error queue. Out-of-memory is reported as device loss;
// other codes are programming errors and are only logged.
func (d *Device) Err() error {
	var lost error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if code == gl.OUT_OF_MEMORY {
			lost = fmt.Errorf("%w: %s", graphics.ErrDeviceLost, errorName(code))
			continue
		}
		graphics.Logger().Warn("GL error", slog.String("code", errorName(code)))
	}
	return lost
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

var _ graphics.Device = (*Device)(nil)
