package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{2, 3, 100, SampleCount} {
		assert.Len(t, Generate(n), n)
	}
}

func TestGenerateEndpoints(t *testing.T) {
	samples := Generate(SampleCount)
	require.Len(t, samples, SampleCount)

	assert.InDelta(t, -0.5, samples[0].X(), 1e-7)
	assert.InDelta(t, 0.5, samples[SampleCount-1].X(), 1e-7)
}

func TestGenerateMonotonicX(t *testing.T) {
	samples := Generate(SampleCount)
	for i := 1; i < len(samples); i++ {
		if samples[i].X() < samples[i-1].X() {
			t.Fatalf("x decreased at %d: %v < %v", i, samples[i].X(), samples[i-1].X())
		}
	}
}

func TestGenerateStep(t *testing.T) {
	samples := Generate(SampleCount)
	assert.InDelta(t, 1.0/9999, samples[1].X()-samples[0].X(), 1e-7)
}

func TestGenerateSine(t *testing.T) {
	samples := Generate(SampleCount)
	for i, s := range samples {
		want := math.Sin(float64(s.X()) * 180 / math.Pi)
		if math.Abs(float64(s.Y())-want) > 1e-6 {
			t.Fatalf("sample %d: y = %v, want %v", i, s.Y(), want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	assert.Equal(t, Generate(500), Generate(500))
}

func TestGenerateTooFewPanics(t *testing.T) {
	assert.Panics(t, func() { Generate(1) })
}

func TestFlatten(t *testing.T) {
	samples := Generate(4)
	flat := Flatten(samples)
	require.Len(t, flat, 8)
	for i, s := range samples {
		assert.Equal(t, s.X(), flat[2*i])
		assert.Equal(t, s.Y(), flat[2*i+1])
	}
}
