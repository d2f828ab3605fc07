// Package audioio adapts incoming audio to the estimator's frame contract.
//
// Audio arrives as PCM16 chunks, float buffers or WAV files of arbitrary
// length and sample rate. This package converts, downmixes and resamples
// it, then cuts it into fixed power-of-two frames with sample-accurate
// timestamps. A tone generator provides synthetic input for tests and
// demos.
package audioio

import (
	"fmt"

	"github.com/teslashibe/go-lipsync/pkg/dsp"
)

// Config holds framing parameters.
type Config struct {
	// SampleRate is the rate frames are delivered at. Input at another
	// rate is resampled. 0 keeps the source rate.
	SampleRate int `yaml:"sample_rate" json:"sample_rate"`

	// FrameSize is the number of samples per frame (power of two).
	// Default: 1024
	FrameSize int `yaml:"frame_size" json:"frame_size"`

	// HopSize is the number of samples between frame starts.
	// Default: FrameSize (no overlap)
	HopSize int `yaml:"hop_size" json:"hop_size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: 0,
		FrameSize:  1024,
		HopSize:    1024,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate < 0 {
		return fmt.Errorf("sample_rate must not be negative, got %d", c.SampleRate)
	}
	if !dsp.IsPowerOfTwo(c.FrameSize) {
		return fmt.Errorf("frame_size must be a power of two, got %d", c.FrameSize)
	}
	if c.HopSize <= 0 || c.HopSize > c.FrameSize {
		return fmt.Errorf("hop_size must be in [1, frame_size], got %d", c.HopSize)
	}
	return nil
}
