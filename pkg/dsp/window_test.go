package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming_ZerosStayZero(t *testing.T) {
	out := Hamming(make([]float64, 1024))
	require.Len(t, out, 1024)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d: expected 0, got %v", i, v)
		}
	}
}

func TestHamming_Shape(t *testing.T) {
	n := 1024
	frame := make([]float64, n)
	for i := range frame {
		frame[i] = 1
	}
	out := Hamming(frame)

	assert.Equal(t, 0.0, out[0], "first sample forced to zero")
	assert.Equal(t, 0.0, out[n-1], "last sample forced to zero")
	assert.InDelta(t, 0.54-0.46*math.Cos(2*math.Pi/float64(n-1)), out[1], 1e-12)

	// Symmetric around the center
	for i := 1; i < n/2; i++ {
		assert.InDelta(t, out[i], out[n-1-i], 1e-12, "index %d", i)
	}
	// Peak near the middle is close to 1.0
	assert.InDelta(t, 1.0, out[n/2], 1e-4)
}

func TestWindow_ApplyInPlace(t *testing.T) {
	w := NewHamming(8)
	frame := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	out := w.Apply(frame, frame)

	assert.Equal(t, []float64(w), out)
	assert.Equal(t, 0.0, frame[0], "dst aliases src")
}

func TestNormalize(t *testing.T) {
	out, peak := Normalize(nil, []float64{0.25, -0.5, 0.1})
	assert.Equal(t, 0.5, peak)
	assert.InDeltaSlice(t, []float64{0.5, -1, 0.2}, out, 1e-12)

	out, peak = Normalize([]float64{9, 9, 9}, []float64{0, 0, 0})
	assert.Equal(t, 0.0, peak)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestEnergy(t *testing.T) {
	assert.Equal(t, 0.0, Energy(nil))
	assert.Equal(t, 0.0, Energy(make([]float64, 16)))
	assert.InDelta(t, 0.25, Energy([]float64{0.5, -0.5, 0.5, -0.5}), 1e-12)
}
