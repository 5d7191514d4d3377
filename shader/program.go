package shader

import (
	"fmt"

	"github.com/richinsley/goplotview/graphics"
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage graphics.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// LocationError reports an attribute or uniform the linked program does not expose.
type LocationError struct {
	Name string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("program has no active location for %q", e.Name)
}

// Program is a linked plot program with its resolved locations.
type Program struct {
	ID       uint32
	Position uint32
	Scale    int32
	OffsetX  int32
	OffsetY  int32
	Width    int32
	Height   int32

	dev graphics.Device
}

// Compile builds and links the plot program from the given sources and
// resolves the position attribute and the five uniforms. On failure every
// object created along the way is deleted.
func Compile(dev graphics.Device, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := compileShader(dev, graphics.VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(vs)

	fs, err := compileShader(dev, graphics.FragmentStage, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(fs)

	id := dev.CreateProgram()
	if ok, log := dev.LinkProgram(id, vs, fs); !ok {
		dev.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	p := &Program{ID: id, dev: dev}
	if err := p.resolve(); err != nil {
		dev.DeleteProgram(id)
		return nil, err
	}
	return p, nil
}

func (p *Program) resolve() error {
	attrib := p.dev.AttribLocation(p.ID, PositionAttrib)
	if attrib < 0 {
		return &LocationError{Name: PositionAttrib}
	}
	p.Position = uint32(attrib)

	uniforms := []struct {
		name string
		dst  *int32
	}{
		{ScaleUniform, &p.Scale},
		{OffsetXUniform, &p.OffsetX},
		{OffsetYUniform, &p.OffsetY},
		{WidthUniform, &p.Width},
		{HeightUniform, &p.Height},
	}
	for _, u := range uniforms {
		loc := p.dev.UniformLocation(p.ID, u.name)
		if loc < 0 {
			return &LocationError{Name: u.name}
		}
		*u.dst = loc
	}
	return nil
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
}

func compileShader(dev graphics.Device, stage graphics.Stage, source string) (uint32, error) {
	shader := dev.CreateShader(stage)
	if ok, log := dev.CompileShader(shader, source); !ok {
		dev.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
