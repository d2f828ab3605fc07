package audioio

import "math"

// Tone generates a continuous sine wave, or silence when the frequency
// is zero.
type Tone struct {
	frequency  float64 // Hz, 0 = silence
	amplitude  float64 // 0.0 to 1.0
	sampleRate int
	phase      float64 // in samples
}

// NewTone creates a tone generator.
func NewTone(frequency, amplitude float64, sampleRate int) *Tone {
	return &Tone{
		frequency:  frequency,
		amplitude:  amplitude,
		sampleRate: sampleRate,
	}
}

// Next returns the next n samples, continuing the phase of the previous
// call.
func (t *Tone) Next(n int) []float64 {
	out := make([]float64, n)
	if t.frequency <= 0 || t.sampleRate <= 0 {
		return out
	}
	for i := range out {
		out[i] = t.amplitude * math.Sin(2*math.Pi*t.frequency*t.phase/float64(t.sampleRate))
		t.phase++
		if t.phase >= float64(t.sampleRate) {
			t.phase = 0
		}
	}
	return out
}

// Chunk returns the next n samples as a mono PCM16 chunk.
func (t *Tone) Chunk(n int) AudioChunk {
	samples := make([]int16, n)
	for i, s := range t.Next(n) {
		samples[i] = int16(s * 32767)
	}
	return AudioChunk{Samples: samples, SampleRate: t.sampleRate, Channels: 1}
}

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}
