package shader

import (
	"errors"
	"testing"

	"github.com/richinsley/goplotview/graphics"
	"github.com/richinsley/goplotview/internal/devicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileResolvesLocations(t *testing.T) {
	dev := devicetest.New()
	p, err := Compile(dev, PlotVertexShader(), PlotFragmentShader())
	require.NoError(t, err)

	assert.True(t, dev.LivePrograms[p.ID])
	assert.Equal(t, uint32(dev.Location(PositionAttrib)), p.Position)
	assert.Equal(t, dev.Location(ScaleUniform), p.Scale)
	assert.Equal(t, dev.Location(OffsetXUniform), p.OffsetX)
	assert.Equal(t, dev.Location(OffsetYUniform), p.OffsetY)
	assert.Equal(t, dev.Location(WidthUniform), p.Width)
	assert.Equal(t, dev.Location(HeightUniform), p.Height)

	// Shader objects are released once linked into the program.
	assert.Empty(t, dev.LiveShaders)
}

func TestCompileErrorIdentifiesStage(t *testing.T) {
	tests := []struct {
		name  string
		stage graphics.Stage
		log   string
	}{
		{"vertex", graphics.VertexStage, "0:3(1): error: syntax error"},
		{"fragment", graphics.FragmentStage, "0:2(5): error: undeclared identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := devicetest.New()
			dev.CompileLogs[tt.stage] = tt.log

			p, err := Compile(dev, PlotVertexShader(), PlotFragmentShader())
			require.Error(t, err)
			assert.Nil(t, p)

			var ce *CompileError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.stage, ce.Stage)
			assert.Equal(t, tt.log, ce.Log)
			assert.Contains(t, err.Error(), tt.stage.String())

			assert.Empty(t, dev.LiveShaders)
			assert.Empty(t, dev.LivePrograms)
		})
	}
}

func TestLinkError(t *testing.T) {
	dev := devicetest.New()
	dev.LinkLog = "error: vertex shader lacks main"

	p, err := Compile(dev, PlotVertexShader(), PlotFragmentShader())
	assert.Nil(t, p)

	var le *LinkError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "error: vertex shader lacks main", le.Log)
	assert.Empty(t, dev.LivePrograms)
	assert.Empty(t, dev.LiveShaders)
}

func TestMissingLocation(t *testing.T) {
	for _, name := range []string{PositionAttrib, ScaleUniform, OffsetXUniform, OffsetYUniform, WidthUniform, HeightUniform} {
		t.Run(name, func(t *testing.T) {
			dev := devicetest.New()
			dev.Missing[name] = true

			_, err := Compile(dev, PlotVertexShader(), PlotFragmentShader())
			var le *LocationError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, name, le.Name)
			assert.Empty(t, dev.LivePrograms)
		})
	}
}

func TestDelete(t *testing.T) {
	dev := devicetest.New()
	p, err := Compile(dev, PlotVertexShader(), PlotFragmentShader())
	require.NoError(t, err)

	p.Delete()
	assert.Empty(t, dev.LivePrograms)
	assert.Zero(t, p.ID)

	// A second delete is a no-op.
	p.Delete()
	var nilProgram *Program
	nilProgram.Delete()
}

func TestPlotSourcesDeclareBindings(t *testing.T) {
	vs := PlotVertexShader()
	for _, name := range []string{"attribute vec2 " + PositionAttrib, WidthUniform, HeightUniform, ScaleUniform, OffsetXUniform, OffsetYUniform} {
		assert.Contains(t, vs, name)
	}
	assert.Contains(t, PlotFragmentShader(), "vec4(1.0, 0.0, 0.0, 1.0)")
}
