// Package curve produces the static sample data drawn by the viewport.
package curve

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats"
)

const (
	// SampleCount is the number of samples uploaded at viewport initialization.
	SampleCount = 10000

	// MinX and MaxX are the inclusive endpoints of the sampled domain.
	MinX = -0.5
	MaxX = 0.5

	// Frequency multiplies x before the sine is taken. The factor is 180/π,
	// a radians-to-degrees conversion applied to a value that is already the
	// curve parameter.
	Frequency = 180.0 / math.Pi
)

// Generate returns n evenly spaced samples of y = sin(x * Frequency) over
// [MinX, MaxX], endpoints included. n must be at least 2.
func Generate(n int) []mgl32.Vec2 {
	if n < 2 {
		panic("curve: Generate needs at least 2 samples")
	}
	xs := floats.Span(make([]float64, n), MinX, MaxX)
	samples := make([]mgl32.Vec2, n)
	for i, x := range xs {
		x32 := float32(x)
		samples[i] = mgl32.Vec2{x32, float32(math.Sin(float64(x32) * Frequency))}
	}
	return samples
}

// Flatten interleaves samples as x0, y0, x1, y1, ... for a float32 vertex buffer.
func Flatten(samples []mgl32.Vec2) []float32 {
	out := make([]float32, 0, 2*len(samples))
	for _, s := range samples {
		out = append(out, s[0], s[1])
	}
	return out
}
