package vowel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergyGate_SilenceNeverVoiced(t *testing.T) {
	g := NewEnergyGate()
	for i := 0; i < 1000; i++ {
		if g.Check(0) {
			t.Fatalf("frame %d: zero energy classified as voiced", i)
		}
	}
}

func TestEnergyGate_Update(t *testing.T) {
	g := NewEnergyGate()

	under, above, threshold := g.Levels()
	assert.Equal(t, 1e-5, under)
	assert.Equal(t, 1e-4, above)
	assert.Equal(t, 1e-6, threshold)

	assert.True(t, g.Check(0.01))
	under, above, threshold = g.Levels()
	assert.Equal(t, 1e-5, under)
	assert.InDelta(t, 0.99*1e-4+0.01*0.01, above, 1e-15)
	assert.InDelta(t, 0.85*under+0.15*above, threshold, 1e-15)

	assert.False(t, g.Check(1e-7))
	under, _, _ = g.Levels()
	assert.InDelta(t, 0.99*1e-5+0.01*1e-7, under, 1e-15)
}

func TestEnergyGate_AdaptsToLoudInput(t *testing.T) {
	g := NewEnergyGate()
	for i := 0; i < 500; i++ {
		assert.True(t, g.Check(0.1))
	}
	// A much quieter frame now falls below the adapted threshold
	assert.False(t, g.Check(1e-4))

	g.Reset()
	_, _, threshold := g.Levels()
	assert.Equal(t, 1e-6, threshold)
}

func TestEnergyGate_NonFiniteVolume(t *testing.T) {
	g := NewEnergyGate()
	under, above, threshold := g.Levels()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.False(t, g.Check(v))
		u, a, th := g.Levels()
		assert.Equal(t, under, u)
		assert.Equal(t, above, a)
		assert.Equal(t, threshold, th)
	}

	assert.True(t, g.Check(0.01), "gate must still open after a bad frame")
}
