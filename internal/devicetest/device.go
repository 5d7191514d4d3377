// Package devicetest provides an in-memory graphics.Device for tests.
package devicetest

import (
	"fmt"

	"github.com/richinsley/goplotview/graphics"
)

// Draw records one DrawArrays call.
type Draw struct {
	Mode    graphics.Primitive
	First   int
	Count   int
	Program uint32
	Buffer  uint32
}

// Device records every call made on it. Failures are injected through the
// exported fields before the code under test runs.
type Device struct {
	// CompileLogs makes compilation of the given stage fail with the log.
	CompileLogs map[graphics.Stage]string
	// LinkLog, when non-empty, makes linking fail with the log.
	LinkLog string
	// Missing lists attribute or uniform names reported as absent.
	Missing map[string]bool
	// Lost makes Err return a wrapped graphics.ErrDeviceLost.
	Lost bool

	ClearColor  [4]float32
	ClearDepth  float64
	PointSize   float32
	PointSmooth bool
	Viewport    [2]int
	Clears      int
	Program     uint32
	Bound       uint32
	BoundAttrib uint32
	Uniforms    map[int32]float32
	Draws       []Draw
	Vertices    map[uint32][]float32

	LiveShaders  map[uint32]graphics.Stage
	LivePrograms map[uint32]bool

	nextID      uint32
	locations   map[string]int32
	shaderStage map[uint32]graphics.Stage
}

// New returns an empty recording device.
func New() *Device {
	return &Device{
		CompileLogs:  make(map[graphics.Stage]string),
		Missing:      make(map[string]bool),
		Uniforms:     make(map[int32]float32),
		Vertices:     make(map[uint32][]float32),
		LiveShaders:  make(map[uint32]graphics.Stage),
		LivePrograms: make(map[uint32]bool),
		locations:    make(map[string]int32),
		shaderStage:  make(map[uint32]graphics.Stage),
	}
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// Location returns the location handed out for name, or -1.
func (d *Device) Location(name string) int32 {
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	return -1
}

// Uniform returns the last value set for the named uniform.
func (d *Device) Uniform(name string) (float32, bool) {
	loc, ok := d.locations[name]
	if !ok {
		return 0, false
	}
	v, ok := d.Uniforms[loc]
	return v, ok
}

func (d *Device) SetClearState(r, g, b, a float32, depth float64) {
	d.ClearColor = [4]float32{r, g, b, a}
	d.ClearDepth = depth
}

func (d *Device) SetPointStyle(size float32, smooth bool) {
	d.PointSize = size
	d.PointSmooth = smooth
}

func (d *Device) SetViewport(width, height int) { d.Viewport = [2]int{width, height} }

func (d *Device) Clear() { d.Clears++ }

func (d *Device) CreateShader(stage graphics.Stage) uint32 {
	id := d.id()
	d.shaderStage[id] = stage
	d.LiveShaders[id] = stage
	return id
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	if log, ok := d.CompileLogs[d.shaderStage[shader]]; ok {
		return false, log
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) { delete(d.LiveShaders, shader) }

func (d *Device) CreateProgram() uint32 {
	id := d.id()
	d.LivePrograms[id] = true
	return id
}

func (d *Device) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	if d.LinkLog != "" {
		return false, d.LinkLog
	}
	return true, ""
}

func (d *Device) DeleteProgram(program uint32) { delete(d.LivePrograms, program) }

func (d *Device) UseProgram(program uint32) { d.Program = program }

func (d *Device) AttribLocation(program uint32, name string) int32 { return d.locate(name) }

func (d *Device) UniformLocation(program uint32, name string) int32 { return d.locate(name) }

func (d *Device) locate(name string) int32 {
	if d.Missing[name] {
		return -1
	}
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[name] = loc
	return loc
}

func (d *Device) Uniform1f(location int32, v float32) { d.Uniforms[location] = v }

func (d *Device) UploadVertices(data []float32) (uint32, error) {
	if len(data)%2 != 0 {
		return 0, fmt.Errorf("odd vertex component count %d", len(data))
	}
	id := d.id()
	d.Vertices[id] = append([]float32(nil), data...)
	return id, nil
}

func (d *Device) BindVertices(buffer uint32, attrib uint32) {
	d.Bound = buffer
	d.BoundAttrib = attrib
}

func (d *Device) DeleteVertices(buffer uint32) { delete(d.Vertices, buffer) }

func (d *Device) DrawArrays(mode graphics.Primitive, first, count int) {
	d.Draws = append(d.Draws, Draw{Mode: mode, First: first, Count: count, Program: d.Program, Buffer: d.Bound})
}

func (d *Device) Err() error {
	if d.Lost {
		return fmt.Errorf("%w: context lost", graphics.ErrDeviceLost)
	}
	return nil
}
