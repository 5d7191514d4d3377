package renderer

import (
	"testing"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/stretchr/testify/assert"
)

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gl.INVALID_ENUM, "GL_INVALID_ENUM"},
		{gl.INVALID_VALUE, "GL_INVALID_VALUE"},
		{gl.INVALID_OPERATION, "GL_INVALID_OPERATION"},
		{gl.OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
		{0x1234, "0x1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorName(tt.code))
	}
}
