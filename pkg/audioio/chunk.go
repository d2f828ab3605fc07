package audioio

// AudioChunk is a block of interleaved PCM16 audio as delivered by a
// capture or decode stage.
type AudioChunk struct {
	// Samples contains PCM16 audio samples, interleaved by channel.
	Samples []int16

	// SampleRate is the sample rate of this chunk.
	SampleRate int

	// Channels is the number of interleaved channels.
	Channels int
}

// Bytes returns the raw little-endian bytes of the chunk.
func (c *AudioChunk) Bytes() []byte {
	return SamplesToBytes(c.Samples)
}

// FromBytes populates the chunk from raw PCM16 little-endian bytes.
func (c *AudioChunk) FromBytes(data []byte, sampleRate, channels int) {
	c.SampleRate = sampleRate
	c.Channels = channels
	c.Samples = BytesToSamples(data)
}

// Duration returns the duration of the chunk in seconds.
func (c *AudioChunk) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate*c.Channels)
}

// Mono returns the chunk downmixed to mono float samples in [-1, 1].
func (c *AudioChunk) Mono() []float64 {
	return Downmix(Int16ToFloat64(c.Samples), c.Channels)
}
