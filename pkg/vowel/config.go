package vowel

import (
	"errors"
	"fmt"
	"time"

	"github.com/teslashibe/go-lipsync/pkg/dsp"
)

// Config holds the per-session estimator parameters. It is fixed once an
// Estimator is constructed.
type Config struct {
	// LPCOrder is the number of Levinson-Durbin stages.
	// Default: 64
	LPCOrder int `yaml:"lpc_order" json:"lpc_order"`

	// SampleRate of incoming frames in Hz.
	// Default: 44100
	SampleRate int `yaml:"sample_rate" json:"sample_rate"`

	// FrameSize is the number of samples per frame. Must be a power of two.
	// Default: 1024
	FrameSize int `yaml:"frame_size" json:"frame_size"`

	// VowelWindow is the number of recent frames kept for the voiced ratio.
	// Default: 20
	VowelWindow int `yaml:"vowel_window" json:"vowel_window"`

	// SpeakingThreshold is the voiced ratio above which the speaker is
	// considered to be talking.
	// Default: 0.15
	SpeakingThreshold float64 `yaml:"speaking_threshold" json:"speaking_threshold"`

	// SpeakStopTimeout is how long the voiced ratio must stay low before
	// a speak stop is emitted.
	// Default: 1500ms
	SpeakStopTimeout time.Duration `yaml:"speak_stop_timeout" json:"speak_stop_timeout"`

	// VowelLock is the minimum time between two vowel changes.
	// Default: 200ms
	VowelLock time.Duration `yaml:"vowel_lock" json:"vowel_lock"`
}

// DefaultConfig returns a Config with the tuned defaults.
func DefaultConfig() Config {
	return Config{
		LPCOrder:          64,
		SampleRate:        44100,
		FrameSize:         1024,
		VowelWindow:       20,
		SpeakingThreshold: 0.15,
		SpeakStopTimeout:  1500 * time.Millisecond,
		VowelLock:         200 * time.Millisecond,
	}
}

// FrameDuration returns the wall-clock length of one frame.
func (c *Config) FrameDuration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.FrameSize) * time.Second / time.Duration(c.SampleRate)
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.FrameSize < 2 || !dsp.IsPowerOfTwo(c.FrameSize) {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrFrameSize, c.FrameSize))
	}
	if c.LPCOrder < 1 || (c.FrameSize > 1 && c.LPCOrder >= c.FrameSize) {
		errs = append(errs, fmt.Errorf("lpc_order must be in [1, frame_size), got %d", c.LPCOrder))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate))
	}
	if c.VowelWindow <= 0 {
		errs = append(errs, fmt.Errorf("vowel_window must be positive, got %d", c.VowelWindow))
	}
	if c.SpeakingThreshold < 0 || c.SpeakingThreshold > 1 {
		errs = append(errs, fmt.Errorf("speaking_threshold must be between 0 and 1, got %v", c.SpeakingThreshold))
	}
	if c.SpeakStopTimeout < 0 {
		errs = append(errs, fmt.Errorf("speak_stop_timeout must not be negative, got %v", c.SpeakStopTimeout))
	}
	if c.VowelLock < 0 {
		errs = append(errs, fmt.Errorf("vowel_lock must not be negative, got %v", c.VowelLock))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
}
