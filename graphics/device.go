package graphics

import "errors"

// ErrDeviceLost is wrapped by Device.Err when the context is gone or out of memory.
var ErrDeviceLost = errors.New("graphics: device lost")

// Stage identifies a shader stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive selects how DrawArrays assembles vertices.
type Primitive int

const (
	LineStrip Primitive = iota
	Points
)

func (p Primitive) String() string {
	switch p {
	case LineStrip:
		return "line-strip"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// Device is the subset of a GL rendering surface the viewport needs.
// All methods must be called on the thread that owns the current context.
type Device interface {
	SetClearState(r, g, b, a float32, depth float64)
	SetPointStyle(size float32, smooth bool)
	SetViewport(width, height int)
	Clear()

	CreateShader(stage Stage) uint32
	// CompileShader compiles source into shader and reports the compile
	// status with the raw info log.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	// LinkProgram attaches the shaders to program, links it and reports the
	// link status with the raw info log.
	LinkProgram(program uint32, shaders ...uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// AttribLocation and UniformLocation return -1 for unknown names.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)

	// UploadVertices copies interleaved 2D float32 positions into a static
	// device-resident buffer.
	UploadVertices(data []float32) (buffer uint32, err error)
	// BindVertices binds buffer as the source of the 2D attribute at location.
	BindVertices(buffer uint32, attrib uint32)
	DeleteVertices(buffer uint32)
	DrawArrays(mode Primitive, first, count int)

	// Err returns a non-nil error when the device has lost its context or
	// exhausted its memory.
	Err() error
}
